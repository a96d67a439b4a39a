// Package memlist 提供持有 MemoryBlock 的单链表，以及基于它记账的模拟内存空间。
package memlist

import (
	"memlist/internal/block"
	"memlist/internal/config"
	"memlist/internal/errs"
	"memlist/internal/list"
	"memlist/internal/space"
)

// 对外暴露的 sentinel errors，便于调用方 errors.Is。
var (
	ErrInvalidArgument = errs.ErrInvalidArgument
	ErrNoSpace         = errs.ErrNoSpace
	ErrClosed          = errs.ErrClosed
)

type (
	MemoryBlock  = block.MemoryBlock
	Node         = list.Node
	LinkedList   = list.LinkedList
	ListIterator = list.ListIterator
	Space        = space.Space
	Snapshot     = space.Snapshot
	SpaceConfig  = config.SpaceConfig
)

// NewBlock 创建 block。
func NewBlock(base, length int) MemoryBlock {
	return block.New(base, length)
}

// NewList 创建空链表。
func NewList() *LinkedList {
	return list.New()
}

// NewSpace 创建 size 个地址的模拟空间，align 为 1、不带 arena。
func NewSpace(size int) (*Space, error) {
	return space.New(SpaceConfig{Size: size, Align: 1})
}

// OpenSpace 按完整配置创建空间。
func OpenSpace(cfg SpaceConfig) (*Space, error) {
	return space.New(cfg)
}
