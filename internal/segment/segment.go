package segment

import (
	"memlist/internal/block"
	"memlist/internal/errs"
	"memlist/internal/mmap"

	"github.com/pkg/errors"
)

// Segment 一段匿名 mmap 内存，作为模拟内存空间的底层字节。
type Segment struct {
	data []byte
}

// Open 映射 size 字节。
func Open(size int) (*Segment, error) {
	if size <= 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "segment size %d", size)
	}
	data, err := mmap.MapAnon(size)
	if err != nil {
		return nil, errors.Wrap(err, "map segment")
	}
	return &Segment{data: data}, nil
}

// View 返回 b 对应的字节切片，Close 后勿用。
func (s *Segment) View(b block.MemoryBlock) ([]byte, error) {
	if s.data == nil {
		return nil, errs.ErrClosed
	}
	if b.BaseAddress < 0 || b.Length < 0 || b.End() > len(s.data) {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "block %v outside segment of %d bytes", b, len(s.data))
	}
	return s.data[b.BaseAddress:b.End():b.End()], nil
}

// Zero 清零 b 覆盖的区域。
func (s *Segment) Zero(b block.MemoryBlock) error {
	v, err := s.View(b)
	if err != nil {
		return err
	}
	clear(v)
	return nil
}

// Close 解除映射；重复调用无副作用。
func (s *Segment) Close() error {
	if s.data == nil {
		return nil
	}
	if err := mmap.Unmap(s.data); err != nil {
		return err
	}
	s.data = nil
	return nil
}
