package fixed

import (
	"reflect"
	"unsafe"

	"memlist/internal/errs"

	"github.com/pkg/errors"
)

// Allocator 供 PutFixed/GetFixed 使用的分配接口。
type Allocator interface {
	Malloc(length int) (int, error)
	Free(address int) error
	Bytes(address int) ([]byte, error)
}

var plainKinds = map[reflect.Kind]bool{
	reflect.Bool: true,
	reflect.Int:  true, reflect.Int8: true, reflect.Int16: true, reflect.Int32: true, reflect.Int64: true,
	reflect.Uint: true, reflect.Uint8: true, reflect.Uint16: true, reflect.Uint32: true, reflect.Uint64: true,
	reflect.Uintptr: true,
	reflect.Float32: true, reflect.Float64: true,
	reflect.Complex64: true, reflect.Complex128: true,
}

// checkPlain 递归检查 t 只由定长标量、数组和结构体组成。
func checkPlain(t reflect.Type, path string) error {
	switch {
	case t == nil:
		return errors.Wrapf(errs.ErrInvalidArgument, "%s: interface type", path)
	case plainKinds[t.Kind()]:
		return nil
	case t.Kind() == reflect.Array:
		return checkPlain(t.Elem(), path+"[]")
	case t.Kind() == reflect.Struct:
		for i := range t.NumField() {
			f := t.Field(i)
			if err := checkPlain(f.Type, path+"."+f.Name); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(errs.ErrInvalidArgument, "%s: %s holds pointer-like data", path, t)
}

func plainType[T any]() (int, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return 0, errors.Wrap(errs.ErrInvalidArgument, "interface type")
	}
	if err := checkPlain(t, t.Name()); err != nil {
		return 0, err
	}
	return int(t.Size()), nil
}

func rawBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// PutFixed 为无指针类型 T 分配 sizeof(T) 字节并拷贝进去，返回地址。
// 拿不到字节视图时会释放刚分配的块。
func PutFixed[T any](a Allocator, v *T) (int, error) {
	if _, err := plainType[T](); err != nil {
		return 0, err
	}
	src := rawBytes(v)
	addr, err := a.Malloc(len(src))
	if err != nil {
		return 0, err
	}
	dst, err := a.Bytes(addr)
	if err != nil {
		if ferr := a.Free(addr); ferr != nil {
			return 0, errors.Wrapf(err, "release %d: %v", addr, ferr)
		}
		return 0, err
	}
	copy(dst, src)
	return addr, nil
}

// GetFixed 从 address 读出 *T；块长度不足 sizeof(T) 时报错。
func GetFixed[T any](a Allocator, address int) (*T, error) {
	want, err := plainType[T]()
	if err != nil {
		return nil, err
	}
	b, err := a.Bytes(address)
	if err != nil {
		return nil, err
	}
	if len(b) < want {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "size mismatch: got=%d want=%d", len(b), want)
	}
	out := new(T)
	copy(rawBytes(out), b)
	return out, nil
}
