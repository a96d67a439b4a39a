//go:build windows

package mmap

// MapAnon windows 下退化为堆内存。
func MapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func Unmap(data []byte) error {
	return nil
}
