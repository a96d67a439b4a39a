package memlist

import "memlist/internal/fixed"

// PutFixed 将无指针类型 T 的实例写入 s 的 arena，返回地址。
func PutFixed[T any](s *Space, v *T) (int, error) {
	if s == nil {
		return 0, ErrInvalidArgument
	}
	return fixed.PutFixed(s, v)
}

// GetFixed 从 s 的 arena 读出 *T。
func GetFixed[T any](s *Space, address int) (*T, error) {
	if s == nil {
		return nil, ErrInvalidArgument
	}
	return fixed.GetFixed[T](s, address)
}
