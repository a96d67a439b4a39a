package list

import (
	"fmt"
	"testing"

	"memlist/internal/block"
	"memlist/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariants 校验 size / first / last 与链本身一致。
func checkInvariants(t *testing.T, l *LinkedList) {
	t.Helper()
	n := 0
	var tail *Node
	for cur := l.first; cur != nil; cur = cur.next {
		tail = cur
		n++
	}
	require.Equal(t, n, l.size, "size must match reachable nodes")
	require.Equal(t, l.first == nil, l.size == 0)
	require.Equal(t, l.last == nil, l.size == 0)
	require.Same(t, tail, l.last, "last must be the chain tail")
	if l.last != nil {
		require.Nil(t, l.last.next)
	}
}

func blocks(l *LinkedList) []block.MemoryBlock {
	var out []block.MemoryBlock
	for b := range l.All() {
		out = append(out, b)
	}
	return out
}

func seq(n int) *LinkedList {
	l := New()
	for i := 0; i < n; i++ {
		l.AddLast(block.New(i*10, 10))
	}
	return l
}

func TestNewListEmpty(t *testing.T) {
	l := New()
	assert.Nil(t, l.First())
	assert.Nil(t, l.Last())
	assert.Equal(t, 0, l.Size())
	assert.Equal(t, "", l.String())
	checkInvariants(t, l)
}

func TestAddScenario(t *testing.T) {
	l := New()
	l.AddLast(block.New(0, 100))
	l.AddFirst(block.New(200, 50))
	require.NoError(t, l.Add(1, block.New(300, 10)))

	assert.Equal(t, []block.MemoryBlock{
		block.New(200, 50), block.New(300, 10), block.New(0, 100),
	}, blocks(l))
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, "(200 , 50) (300 , 10) (0 , 100)", l.String())
	checkInvariants(t, l)
}

func TestAddAtEveryIndex(t *testing.T) {
	for size := 0; size <= 4; size++ {
		for idx := 0; idx <= size; idx++ {
			t.Run(fmt.Sprintf("size%d_idx%d", size, idx), func(t *testing.T) {
				l := seq(size)
				b := block.New(999, 1)
				require.NoError(t, l.Add(idx, b))
				n, err := l.GetNode(idx)
				require.NoError(t, err)
				assert.Equal(t, b, n.Block())
				assert.Equal(t, size+1, l.Size())
				checkInvariants(t, l)
			})
		}
	}
}

func TestAddFirstAddLast(t *testing.T) {
	l := seq(3)
	l.AddFirst(block.New(500, 1))
	got, err := l.GetBlock(0)
	require.NoError(t, err)
	assert.Equal(t, block.New(500, 1), got)

	l.AddLast(block.New(600, 2))
	got, err = l.GetBlock(l.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, block.New(600, 2), got)
	assert.Equal(t, block.New(600, 2), l.Last().Block())
	checkInvariants(t, l)
}

func TestAddFirstOnEmptySetsLast(t *testing.T) {
	l := New()
	l.AddFirst(block.New(1, 1))
	assert.Same(t, l.First(), l.Last())
	checkInvariants(t, l)
}

func TestOutOfRange(t *testing.T) {
	l := seq(3)
	before := l.String()

	_, err := l.GetNode(-1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = l.GetNode(3)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	assert.ErrorIs(t, l.Add(-1, block.New(1, 1)), errs.ErrInvalidArgument)
	assert.ErrorIs(t, l.Add(4, block.New(1, 1)), errs.ErrInvalidArgument)

	_, err = l.GetBlock(-1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = l.GetBlock(3)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	assert.ErrorIs(t, l.RemoveAt(-1), errs.ErrInvalidArgument)
	assert.ErrorIs(t, l.RemoveAt(3), errs.ErrInvalidArgument)

	assert.Equal(t, before, l.String())
	assert.Equal(t, 3, l.Size())
	checkInvariants(t, l)
}

func TestOutOfRangeOnEmpty(t *testing.T) {
	l := New()
	_, err := l.GetNode(0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = l.GetBlock(0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.ErrorIs(t, l.RemoveAt(0), errs.ErrInvalidArgument)
}

func TestIndexOf(t *testing.T) {
	l := seq(4)
	assert.Equal(t, 2, l.IndexOf(block.New(20, 10)))
	assert.Equal(t, -1, l.IndexOf(block.New(20, 11)))
	assert.Equal(t, -1, New().IndexOf(block.New(0, 0)))

	l.AddLast(block.New(10, 10))
	assert.Equal(t, 1, l.IndexOf(block.New(10, 10)), "earliest duplicate wins")
}

func TestRemoveAtShifts(t *testing.T) {
	for i := 0; i < 5; i++ {
		t.Run(fmt.Sprintf("idx%d", i), func(t *testing.T) {
			l := seq(5)
			prior := blocks(l)
			require.NoError(t, l.RemoveAt(i))
			assert.Equal(t, 4, l.Size())
			for j := 0; j < l.Size(); j++ {
				got, err := l.GetBlock(j)
				require.NoError(t, err)
				if j < i {
					assert.Equal(t, prior[j], got)
				} else {
					assert.Equal(t, prior[j+1], got)
				}
			}
			checkInvariants(t, l)
		})
	}
}

func TestRemoveAtHead(t *testing.T) {
	l := seq(3)
	second := l.First().Next().Block()
	require.NoError(t, l.RemoveAt(0))
	assert.Equal(t, second, l.First().Block())
	assert.Equal(t, 2, l.Size())
	checkInvariants(t, l)
}

func TestRemoveTailThenAppend(t *testing.T) {
	l := seq(3)
	require.NoError(t, l.RemoveAt(2))
	assert.Equal(t, block.New(10, 10), l.Last().Block())
	l.AddLast(block.New(99, 1))
	assert.Equal(t, []block.MemoryBlock{block.New(0, 10), block.New(10, 10), block.New(99, 1)}, blocks(l))
	checkInvariants(t, l)
}

func TestRemoveSoleElement(t *testing.T) {
	removers := map[string]func(l *LinkedList) error{
		"index": func(l *LinkedList) error { return l.RemoveAt(0) },
		"node":  func(l *LinkedList) error { return l.Remove(l.First()) },
		"block": func(l *LinkedList) error { return l.RemoveBlock(block.New(0, 10)) },
	}
	for name, remove := range removers {
		t.Run(name, func(t *testing.T) {
			l := seq(1)
			require.NoError(t, remove(l))
			assert.Nil(t, l.First())
			assert.Nil(t, l.Last())
			assert.Equal(t, 0, l.Size())
			checkInvariants(t, l)

			l.AddLast(block.New(7, 7))
			assert.Same(t, l.First(), l.Last())
		})
	}
}

func TestRemoveNode(t *testing.T) {
	l := seq(4)
	mid, err := l.GetNode(2)
	require.NoError(t, err)
	require.NoError(t, l.Remove(mid))
	assert.Equal(t, -1, l.IndexOf(block.New(20, 10)))
	assert.Equal(t, 3, l.Size())
	checkInvariants(t, l)

	require.NoError(t, l.Remove(l.Last()))
	assert.Equal(t, block.New(10, 10), l.Last().Block())
	checkInvariants(t, l)
}

func TestRemoveNodeAbsent(t *testing.T) {
	l := seq(3)
	other := seq(3)
	assert.ErrorIs(t, l.Remove(other.First()), errs.ErrInvalidArgument)
	assert.ErrorIs(t, l.Remove(nil), errs.ErrInvalidArgument)
	assert.ErrorIs(t, New().Remove(other.Last()), errs.ErrInvalidArgument)
	assert.Equal(t, 3, l.Size())
	checkInvariants(t, l)
}

func TestRemoveBlock(t *testing.T) {
	l := seq(4)
	l.AddLast(block.New(10, 10))
	require.NoError(t, l.RemoveBlock(block.New(10, 10)))
	assert.Equal(t, []block.MemoryBlock{
		block.New(0, 10), block.New(20, 10), block.New(30, 10), block.New(10, 10),
	}, blocks(l))

	require.NoError(t, l.RemoveBlock(block.New(10, 10)))
	assert.Equal(t, block.New(30, 10), l.Last().Block())
	checkInvariants(t, l)

	assert.ErrorIs(t, l.RemoveBlock(block.New(1, 2)), errs.ErrInvalidArgument)
	assert.Equal(t, 3, l.Size())
}

func TestRemoveBlockEmpty(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.RemoveBlock(block.New(0, 1)), errs.ErrInvalidArgument)
	checkInvariants(t, l)
}

func TestIteratorRoundTrip(t *testing.T) {
	l := New()
	var want []block.MemoryBlock
	for i := 0; i < 10; i++ {
		b := block.New(i, i+1)
		want = append(want, b)
		l.AddLast(b)
	}
	it := l.Iterator()
	var got []block.MemoryBlock
	for it.HasNext() {
		b, ok := it.Next()
		require.True(t, ok)
		got = append(got, b)
	}
	assert.Equal(t, want, got)

	_, ok := it.Next()
	assert.False(t, ok, "iterator is single-pass")

	fresh := l.Iterator()
	b, ok := fresh.Next()
	require.True(t, ok)
	assert.Equal(t, want[0], b)
}

func TestAllStopsEarly(t *testing.T) {
	l := seq(5)
	n := 0
	for range l.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}
