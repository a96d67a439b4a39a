// Package list 实现持有 MemoryBlock 的单链表，供 freelist / 已分配表记账使用。
//
// 链表不是并发安全的，需要并发访问时由调用方在外层加锁。
package list

import (
	"strings"

	"memlist/internal/block"
	"memlist/internal/errs"

	"github.com/pkg/errors"
)

// LinkedList 单链表：first 持有整条链，last 指向尾节点，size 为节点数。
type LinkedList struct {
	first *Node
	last  *Node
	size  int
}

// New 创建空链表。
func New() *LinkedList {
	return &LinkedList{}
}

// First 返回头节点，空表返回 nil。
func (l *LinkedList) First() *Node { return l.first }

// Last 返回尾节点，空表返回 nil。
func (l *LinkedList) Last() *Node { return l.last }

// Size 返回节点数。
func (l *LinkedList) Size() int { return l.size }

func checkIndex(index, limit int) error {
	if index < 0 || index >= limit {
		return errors.Wrapf(errs.ErrInvalidArgument, "index %d out of range [0, %d)", index, limit)
	}
	return nil
}

// nodeAt 从头遍历到 index，调用方保证 0 <= index < size。
func (l *LinkedList) nodeAt(index int) *Node {
	cur := l.first
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur
}

// GetNode 返回 index 处的节点，合法范围 [0, size)。
func (l *LinkedList) GetNode(index int) (*Node, error) {
	if err := checkIndex(index, l.size); err != nil {
		return nil, err
	}
	return l.nodeAt(index), nil
}

// Add 在 index 处插入 b，合法范围 [0, size]。头尾插入 O(1)。
func (l *LinkedList) Add(index int, b block.MemoryBlock) error {
	if err := checkIndex(index, l.size+1); err != nil {
		return err
	}
	switch index {
	case 0:
		l.AddFirst(b)
	case l.size:
		l.AddLast(b)
	default:
		prev := l.nodeAt(index - 1)
		n := newNode(b)
		n.next = prev.next
		prev.next = n
		l.size++
	}
	return nil
}

// AddFirst 头插。
func (l *LinkedList) AddFirst(b block.MemoryBlock) {
	n := newNode(b)
	n.next = l.first
	l.first = n
	if l.last == nil {
		l.last = n
	}
	l.size++
}

// AddLast 尾插。
func (l *LinkedList) AddLast(b block.MemoryBlock) {
	n := newNode(b)
	if l.last == nil {
		l.first = n
	} else {
		l.last.next = n
	}
	l.last = n
	l.size++
}

// GetBlock 返回 index 处的 block，合法范围 [0, size)；取尾部为 O(1)。
func (l *LinkedList) GetBlock(index int) (block.MemoryBlock, error) {
	if err := checkIndex(index, l.size); err != nil {
		return block.MemoryBlock{}, err
	}
	if index == l.size-1 {
		return l.last.block, nil
	}
	return l.nodeAt(index).block, nil
}

// IndexOf 返回第一个与 b 相等的 block 的下标，不存在返回 -1。
func (l *LinkedList) IndexOf(b block.MemoryBlock) int {
	i := 0
	for cur := l.first; cur != nil; cur = cur.next {
		if cur.block == b {
			return i
		}
		i++
	}
	return -1
}

// unlinkAfter 摘除 prev 的后继，prev 为 nil 时摘除头节点。
// last 按链本身重算：被摘的是尾节点时新尾就是 prev（表空时为 nil）。
func (l *LinkedList) unlinkAfter(prev *Node) *Node {
	var target *Node
	if prev == nil {
		target = l.first
		l.first = target.next
	} else {
		target = prev.next
		prev.next = target.next
	}
	if target == l.last {
		l.last = prev
	}
	target.next = nil
	l.size--
	return target
}

// Remove 摘除给定节点；节点不在链上时返回 ErrInvalidArgument。
func (l *LinkedList) Remove(node *Node) error {
	if node == nil {
		return errors.Wrap(errs.ErrInvalidArgument, "remove nil node")
	}
	var prev *Node
	for cur := l.first; cur != nil; prev, cur = cur, cur.next {
		if cur == node {
			l.unlinkAfter(prev)
			return nil
		}
	}
	return errors.Wrapf(errs.ErrInvalidArgument, "node %v not in list", node.block)
}

// RemoveAt 摘除 index 处的节点，合法范围 [0, size)。
func (l *LinkedList) RemoveAt(index int) error {
	if err := checkIndex(index, l.size); err != nil {
		return err
	}
	var prev *Node
	if index > 0 {
		prev = l.nodeAt(index - 1)
	}
	l.unlinkAfter(prev)
	return nil
}

// RemoveBlock 摘除第一个与 b 相等的节点。
func (l *LinkedList) RemoveBlock(b block.MemoryBlock) error {
	if l.size == 0 {
		return errors.Wrapf(errs.ErrInvalidArgument, "remove %v from empty list", b)
	}
	var prev *Node
	for cur := l.first; cur != nil; prev, cur = cur, cur.next {
		if cur.block == b {
			l.unlinkAfter(prev)
			return nil
		}
	}
	return errors.Wrapf(errs.ErrInvalidArgument, "block %v not in list", b)
}

// String 以空格分隔输出各 block，空表为空串。
func (l *LinkedList) String() string {
	var sb strings.Builder
	for cur := l.first; cur != nil; cur = cur.next {
		if cur != l.first {
			sb.WriteByte(' ')
		}
		sb.WriteString(cur.block.String())
	}
	return sb.String()
}
