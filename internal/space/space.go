// Package space 模拟一段可分配的内存：free list 与已分配表都由 list.LinkedList 记账，
// 分配策略为 first-fit，Defrag 合并相邻空闲块。
//
// Space 不是并发安全的。
package space

import (
	"strings"

	"memlist/consts"
	"memlist/internal/block"
	"memlist/internal/config"
	"memlist/internal/errs"
	"memlist/internal/jsonx"
	"memlist/internal/list"
	"memlist/internal/logx"
	"memlist/internal/segment"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

type Space struct {
	size   int
	align  int
	free   *list.LinkedList
	alloc  *list.LinkedList
	seg    *segment.Segment // nil 表示不带 arena
	closed bool
}

// New 创建空间，free list 初始为一整块 (0, size)。
func New(cfg config.SpaceConfig) (*Space, error) {
	if cfg.Size <= 0 || cfg.Align <= 0 {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "space size=%d align=%d", cfg.Size, cfg.Align)
	}
	s := &Space{
		size:  cfg.Size,
		align: cfg.Align,
		free:  list.New(),
		alloc: list.New(),
	}
	if cfg.Arena {
		seg, err := segment.Open(cfg.Size)
		if err != nil {
			return nil, err
		}
		s.seg = seg
	}
	s.free.AddLast(block.New(0, cfg.Size))
	logx.Debug("SPACE", "new space size=", cfg.Size, " align=", cfg.Align, " arena=", cfg.Arena)
	return s, nil
}

func (s *Space) Size() int { return s.size }

// FreeBlocks 返回 free list，调用方只读。
func (s *Space) FreeBlocks() *list.LinkedList { return s.free }

// AllocatedBlocks 返回已分配表，调用方只读。
func (s *Space) AllocatedBlocks() *list.LinkedList { return s.alloc }

func findByAddress(l *list.LinkedList, address int) *list.Node {
	for n := l.First(); n != nil; n = n.Next() {
		if n.Block().BaseAddress == address {
			return n
		}
	}
	return nil
}

// Malloc 分配 length（按 align 取整）个地址，返回基地址。
// 恰好相等的空闲块整体移入已分配表；更大的块切出前半部分。
func (s *Space) Malloc(length int) (int, error) {
	if s.closed {
		return 0, errs.ErrClosed
	}
	if length <= 0 {
		return 0, errors.Wrapf(errs.ErrInvalidArgument, "malloc length %d", length)
	}
	n := segment.SizeClass(length, s.align)
	if n == 0 || n > s.size {
		logx.Warn("SPACE", "malloc ", length, ": larger than space of ", s.size)
		return 0, errors.Wrapf(errs.ErrNoSpace, "malloc %d exceeds space size %d", length, s.size)
	}
	i := 0
	for node := s.free.First(); node != nil; node = node.Next() {
		fb := node.Block()
		switch {
		case fb.Length == n:
			if err := s.free.RemoveAt(i); err != nil {
				return 0, err
			}
			s.alloc.AddLast(fb)
			return fb.BaseAddress, nil
		case fb.Length > n:
			if err := s.free.RemoveAt(i); err != nil {
				return 0, err
			}
			if err := s.free.Add(i, block.New(fb.BaseAddress+n, fb.Length-n)); err != nil {
				return 0, err
			}
			s.alloc.AddLast(block.New(fb.BaseAddress, n))
			return fb.BaseAddress, nil
		}
		i++
	}
	logx.Warn("SPACE", "malloc ", length, " (class ", n, "): no free block large enough")
	return 0, errors.Wrapf(errs.ErrNoSpace, "malloc %d", length)
}

// Free 把 address 处的已分配块移到 free list 末尾并清零其字节。
// 已分配表为空时报错；未知地址忽略（与 double-free 同样处理）。
func (s *Space) Free(address int) error {
	if s.closed {
		return errs.ErrClosed
	}
	if s.alloc.Size() == 0 {
		return errors.Wrapf(errs.ErrInvalidArgument, "free %d: nothing allocated", address)
	}
	node := findByAddress(s.alloc, address)
	if node == nil {
		logx.Warn("SPACE", "free of unknown address ", address)
		return nil
	}
	b := node.Block()
	if err := s.alloc.Remove(node); err != nil {
		return err
	}
	s.free.AddLast(b)
	if s.seg != nil {
		if err := s.seg.Zero(b); err != nil {
			return err
		}
	}
	logx.Debug("SPACE", "free ", b)
	return nil
}

// Defrag 按地址排序 free list 并合并相邻块，返回合并次数。
func (s *Space) Defrag() int {
	if s.closed || s.free.Size() < 2 {
		return 0
	}
	tr := btree.NewG[block.MemoryBlock](consts.BTreeDegree, func(a, b block.MemoryBlock) bool {
		return a.BaseAddress < b.BaseAddress
	})
	for b := range s.free.All() {
		tr.ReplaceOrInsert(b)
	}
	merged := list.New()
	var (
		cur    block.MemoryBlock
		have   bool
		merges int
	)
	tr.Ascend(func(b block.MemoryBlock) bool {
		if have && cur.Adjacent(b) {
			cur.Length += b.Length
			merges++
			return true
		}
		if have {
			merged.AddLast(cur)
		}
		cur, have = b, true
		return true
	})
	if have {
		merged.AddLast(cur)
	}
	s.free = merged
	logx.Debug("SPACE", "defrag merged ", merges, " blocks, free list size ", merged.Size())
	return merges
}

// Bytes 返回 address 处已分配块在 arena 中的字节。
func (s *Space) Bytes(address int) ([]byte, error) {
	if s.closed {
		return nil, errs.ErrClosed
	}
	if s.seg == nil {
		return nil, errors.Wrap(errs.ErrInvalidArgument, "space has no arena")
	}
	node := findByAddress(s.alloc, address)
	if node == nil {
		return nil, errors.Wrapf(errs.ErrInvalidArgument, "address %d not allocated", address)
	}
	return s.seg.View(node.Block())
}

// Snapshot 空间状态的可序列化视图。
type Snapshot struct {
	Size      int                 `json:"size"`
	Free      []block.MemoryBlock `json:"free"`
	Allocated []block.MemoryBlock `json:"allocated"`
}

func collect(l *list.LinkedList) []block.MemoryBlock {
	out := make([]block.MemoryBlock, 0, l.Size())
	for b := range l.All() {
		out = append(out, b)
	}
	return out
}

func (s *Space) Snapshot() Snapshot {
	return Snapshot{Size: s.size, Free: collect(s.free), Allocated: collect(s.alloc)}
}

func (s *Space) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(s.Snapshot())
}

// String 第一行 free list，第二行已分配表。
func (s *Space) String() string {
	var sb strings.Builder
	sb.WriteString(s.free.String())
	sb.WriteByte('\n')
	sb.WriteString(s.alloc.String())
	return sb.String()
}

// Close 释放 arena；之后的操作返回 ErrClosed。
func (s *Space) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.seg != nil {
		return s.seg.Close()
	}
	return nil
}
