package timeseries

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/Robogera/tseries/pkg/lazy"
	"github.com/Robogera/tseries/pkg/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomValues(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = rand.Float64()
	}
	return values
}

func coolSeries(t *testing.T, n int) (*TimeSeries[int], []int, []float64) {
	times := seq.SeqN(n)
	values := randomValues(n)
	ts, err := New(times, values)
	require.NoError(t, err)
	return ts, times, values
}

func TestNewShapeMismatch(t *testing.T) {
	for _, tc := range []struct{ times, values int }{
		{10, 9}, {9, 10}, {0, 1}, {1, 0},
	} {
		_, err := New(seq.SeqN(tc.times), make([]float64, tc.values))
		assert.ErrorIs(t, err, ERR_SHAPE_MISMATCH, "%d times, %d values", tc.times, tc.values)
	}
}

func TestNewDefaultsToZero(t *testing.T) {
	ts, err := New([]float64{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, ts.Values())

	empty, err := New[int](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}

func TestSize(t *testing.T) {
	for _, n := range []int{0, 1, 10} {
		ts, _, _ := coolSeries(t, n)
		assert.Equal(t, n, ts.Size())
	}
}

func TestGetSet(t *testing.T) {
	ts, times, values := coolSeries(t, 10)
	for i, tm := range times {
		v, err := ts.Get(tm)
		require.NoError(t, err)
		assert.Equal(t, values[i], v)
	}

	require.NoError(t, ts.Set(times[4], 10))
	v, err := ts.Get(times[4])
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = ts.Get(-3)
	assert.ErrorIs(t, err, ERR_KEY_NOT_FOUND)
	assert.ErrorIs(t, ts.Set(-3, 1), ERR_KEY_NOT_FOUND)
}

func TestDuplicateTimes(t *testing.T) {
	ts, err := New([]int{1, 2, 1}, []float64{10, 20, 30})
	require.NoError(t, err)

	v, err := ts.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "first match is read")

	require.NoError(t, ts.Set(1, 5))
	assert.Equal(t, []float64{5, 20, 5}, ts.Values(), "every match is written")
}

func TestContains(t *testing.T) {
	ts, times, _ := coolSeries(t, 10)
	assert.True(t, ts.Contains(times[1]))
	assert.False(t, ts.Contains(-3))
}

func TestEqual(t *testing.T) {
	times := seq.SeqN(10)
	values := randomValues(10)
	ts1, err := New(times, values)
	require.NoError(t, err)
	ts2, err := New(times, values)
	require.NoError(t, err)
	assert.True(t, ts1.Equal(ts2))

	require.NoError(t, ts2.Set(times[3], values[3]+1))
	assert.False(t, ts1.Equal(ts2))

	shorter, err := New(times[:9], values[:9])
	require.NoError(t, err)
	assert.False(t, ts1.Equal(shorter))

	reordered, err := New([]int{1, 0}, []float64{values[1], values[0]})
	require.NoError(t, err)
	prefix, err := New(times[:2], values[:2])
	require.NoError(t, err)
	assert.False(t, prefix.Equal(reordered))
}

func TestLazy(t *testing.T) {
	ts, _, _ := coolSeries(t, 10)
	evaluated, err := lazy.Eval[*TimeSeries[int]](ts.Lazy())
	require.NoError(t, err)
	assert.Same(t, ts, evaluated)
	assert.True(t, ts.Equal(evaluated))
}

func TestIterators(t *testing.T) {
	ts, times, values := coolSeries(t, 10)

	// restartable: two passes give the same sequence
	for range 2 {
		assert.Equal(t, times, slices.Collect(ts.IterTimes()))
		assert.Equal(t, values, slices.Collect(ts.IterValues()))
		assert.Equal(t, values, slices.Collect(ts.All()))

		items := make([]Item[int], 0, len(times))
		for tm, v := range ts.IterItems() {
			items = append(items, Item[int]{tm, v})
		}
		assert.Equal(t, ts.Items(), items)
	}

	// stopping early leaves later iterations intact
	for range ts.IterValues() {
		break
	}
	assert.Len(t, slices.Collect(ts.IterValues()), 10)
}

func TestAccessorsAreSnapshots(t *testing.T) {
	times := []int{0, 1, 2}
	values := []float64{1, 2, 3}
	ts, err := New(times, values)
	require.NoError(t, err)

	// input slices are copied
	values[0] = 100
	v, _ := ts.Get(0)
	assert.Equal(t, 1.0, v)

	snapshot := ts.Values()
	require.NoError(t, ts.Set(0, 42))
	assert.Equal(t, 1.0, snapshot[0])

	ts.Times()[0] = 7
	assert.True(t, ts.Contains(0))
}

func TestIsSorted(t *testing.T) {
	sorted, _ := New([]int{0, 1, 1, 2}, nil)
	assert.True(t, sorted.IsSorted())
	unsorted, _ := New([]int{2, 1}, nil)
	assert.False(t, unsorted.IsSorted())
}
