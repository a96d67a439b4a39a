package segment

import "math"

// SizeClass 把 n 向上取整到 align 的整数倍；n <= 0、align <= 0 或取整溢出时返回 0。
func SizeClass(n, align int) int {
	if n <= 0 || align <= 0 || n > math.MaxInt-(align-1) {
		return 0
	}
	return (n + align - 1) / align * align
}
