package list

import "memlist/internal/block"

// Node 单链表节点：持有一个 block 与后继。节点不知道自己的下标，也不知道所属链表。
// block 只在创建时赋值。
type Node struct {
	block block.MemoryBlock
	next  *Node
}

func newNode(b block.MemoryBlock) *Node {
	return &Node{block: b}
}

// Block 返回节点持有的 block。
func (n *Node) Block() block.MemoryBlock { return n.block }

// Next 返回后继节点，尾节点返回 nil。
func (n *Node) Next() *Node { return n.next }
