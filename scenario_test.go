package deque

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestQueueScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()

	d := New[int]()
	for i := 1; i <= 10000; i++ {
		d.PushBack(i)
	}
	for i := 1; i <= 5000; i++ {
		v, err := d.PopFront()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, 5000, d.Len())
	front, err := d.Front()
	require.NoError(t, err)
	require.Equal(t, 5001, front)
	back, err := d.Back()
	require.NoError(t, err)
	require.Equal(t, 10000, back)
	require.NoError(t, d.Check())
}

func TestAlternatingInsertScenario(t *testing.T) {
	d := newTestDeque(t, 4)
	var model []int
	for i := 0; i < 1000; i++ {
		pos := i % 2
		if pos > d.Len() {
			pos = d.Len()
		}
		at, err := d.Begin().Add(pos)
		require.NoError(t, err)
		_, err = d.Insert(at, i)
		require.NoError(t, err)
		model = slices.Insert(model, pos, i)
	}
	require.Equal(t, model, d.Values())
	require.NoError(t, d.Check())
}

func TestForeignIteratorLeavesDequesUnchanged(t *testing.T) {
	a, b := newTestDeque(t, 2), newTestDeque(t, 2)
	fill(a, 9)
	fill(b, 4)
	_, err := a.Insert(b.Begin(), 99)
	require.ErrorIs(t, err, ErrInvalidIterator)
	_, err = b.Erase(a.Begin())
	require.ErrorIs(t, err, ErrInvalidIterator)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, a.Values())
	require.Equal(t, []int{0, 1, 2, 3}, b.Values())
}

// Random operations are applied to a deque and to a slice model alike.
func TestRandomOperationsAgainstModel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "deque")
	defer teardown()

	for _, capacity := range []int{2, 3, 5, 16} {
		rnd := rand.New(rand.NewSource(int64(4711 + capacity)))
		d := newTestDeque(t, capacity)
		var model []int
		for step := 0; step < 3000; step++ {
			switch op := rnd.Intn(8); op {
			case 0:
				d.PushBack(step)
				model = append(model, step)
			case 1:
				d.PushFront(step)
				model = slices.Insert(model, 0, step)
			case 2:
				v, err := d.PopBack()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, model[len(model)-1], v)
				model = model[:len(model)-1]
			case 3:
				v, err := d.PopFront()
				if len(model) == 0 {
					require.ErrorIs(t, err, ErrEmptyContainer)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, model[0], v)
				model = model[1:]
			case 4, 5:
				pos := rnd.Intn(len(model) + 1)
				at, err := d.Begin().Add(pos)
				require.NoError(t, err)
				ins, err := d.Insert(at, step)
				require.NoError(t, err)
				idx, err := ins.Index()
				require.NoError(t, err)
				require.Equal(t, pos, idx)
				model = slices.Insert(model, pos, step)
			case 6:
				if len(model) == 0 {
					continue
				}
				pos := rnd.Intn(len(model))
				at, err := d.End().Sub(len(model) - pos)
				require.NoError(t, err)
				next, err := d.Erase(at)
				require.NoError(t, err)
				idx, err := next.Index()
				require.NoError(t, err)
				require.Equal(t, pos, idx)
				model = slices.Delete(model, pos, pos+1)
			case 7:
				if len(model) == 0 {
					continue
				}
				pos := rnd.Intn(len(model))
				v, err := d.At(pos)
				require.NoError(t, err)
				require.Equal(t, model[pos], v)
				require.NoError(t, d.Set(pos, -step))
				model[pos] = -step
			}
			require.Equal(t, len(model), d.Len())
			if step%100 == 0 {
				require.NoError(t, d.Check(), "capacity %d, step %d", capacity, step)
			}
		}
		require.Equal(t, model, d.Values())
		require.NoError(t, d.Check())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := newTestDeque(t, 3)
	fill(d, 40)
	c := d.Clone()
	require.Equal(t, d.BlockSizes(), c.BlockSizes())
	for i := 0; i < 20; i++ {
		_, err := c.PopFront()
		require.NoError(t, err)
	}
	c.PushBack(1000)
	require.Equal(t, 40, d.Len())
	require.Equal(t, 21, c.Len())
	v, err := d.At(0)
	require.NoError(t, err)
	require.Equal(t, 0, v)
	require.NoError(t, d.Check())
	require.NoError(t, c.Check())
}
