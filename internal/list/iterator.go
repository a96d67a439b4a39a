package list

import (
	"iter"

	"memlist/internal/block"
)

// ListIterator 单向、一次性的迭代器，从创建时的头节点开始。
// WARN: 迭代期间通过链表做任何增删，结果未定义。
type ListIterator struct {
	current *Node
}

// Iterator 返回从头开始的新迭代器。
func (l *LinkedList) Iterator() *ListIterator {
	return &ListIterator{current: l.first}
}

// HasNext 还有未返回的 block 时为 true。
func (it *ListIterator) HasNext() bool { return it.current != nil }

// Next 返回下一个 block，耗尽后返回 false。
func (it *ListIterator) Next() (block.MemoryBlock, bool) {
	if it.current == nil {
		return block.MemoryBlock{}, false
	}
	b := it.current.block
	it.current = it.current.next
	return b, true
}

// All 供 range 使用；与 Iterator 相同的失效规则。
func (l *LinkedList) All() iter.Seq[block.MemoryBlock] {
	return func(yield func(block.MemoryBlock) bool) {
		for cur := l.first; cur != nil; cur = cur.next {
			if !yield(cur.block) {
				return
			}
		}
	}
}
