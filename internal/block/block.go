package block

import "fmt"

// MemoryBlock 模拟内存中的一段区域：起始地址 + 长度。按值比较。
type MemoryBlock struct {
	BaseAddress int `json:"base"`
	Length      int `json:"length"`
}

// New 创建 block。
func New(base, length int) MemoryBlock {
	return MemoryBlock{BaseAddress: base, Length: length}
}

// End 返回末尾之后的第一个地址。
func (b MemoryBlock) End() int { return b.BaseAddress + b.Length }

// Adjacent 判断 next 是否紧跟在 b 之后。
func (b MemoryBlock) Adjacent(next MemoryBlock) bool {
	return b.End() == next.BaseAddress
}

func (b MemoryBlock) String() string {
	return fmt.Sprintf("(%d , %d)", b.BaseAddress, b.Length)
}
