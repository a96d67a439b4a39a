package errs

import "errors"

var (
	ErrInvalidArgument = errors.New("memlist: invalid argument")
	ErrNoSpace         = errors.New("memlist: no space")
	ErrClosed          = errors.New("memlist: closed")
)
