//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// MapAnon 映射 size 字节的匿名私有内存，初始全 0。
func MapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Unmap 解除映射。
func Unmap(data []byte) error {
	return unix.Munmap(data)
}
