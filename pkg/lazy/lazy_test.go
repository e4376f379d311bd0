package lazy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(args []any, kwargs map[string]any) (any, error) {
	total := 0
	for _, a := range args {
		total += a.(int)
	}
	for _, v := range kwargs {
		total += v.(int)
	}
	return total, nil
}

func TestIdentity(t *testing.T) {
	payload := []int{1, 2, 3}
	n := NewNode(Identity, Val(payload))
	v, err := Eval[[]int](n)
	require.NoError(t, err)
	assert.Equal(t, payload, v)
}

func TestNested(t *testing.T) {
	inner := NewNode(sum, Val(1), Val(2))
	outer := NewNode(sum, Lazy(inner), Val(10)).With("extra", Lazy(NewNode(sum, Val(100))))
	v, err := Eval[int](outer)
	require.NoError(t, err)
	assert.Equal(t, 113, v)
}

func TestDeferredUntilEval(t *testing.T) {
	calls := 0
	counting := func(args []any, kwargs map[string]any) (any, error) {
		calls++
		return calls, nil
	}
	inner := NewNode(counting)
	outer := NewNode(Identity, Lazy(inner))
	assert.Equal(t, 0, calls)

	v, err := Eval[int](outer)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// not memoized
	v, err = Eval[int](outer)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestOrder(t *testing.T) {
	var order []string
	mark := func(name string) *Node {
		return NewNode(func([]any, map[string]any) (any, error) {
			order = append(order, name)
			return name, nil
		})
	}
	n := NewNode(func(args []any, kwargs map[string]any) (any, error) { return nil, nil },
		Lazy(mark("a0")), Lazy(mark("a1"))).
		With("k0", Lazy(mark("k0"))).
		With("k1", Lazy(mark("k1")))
	_, err := n.Eval()
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "a1", "k0", "k1"}, order)
}

func TestNamedReplace(t *testing.T) {
	var got map[string]any
	n := NewNode(func(_ []any, kwargs map[string]any) (any, error) {
		got = kwargs
		return nil, nil
	}).With("x", Val(1)).With("x", Val(2))
	_, err := n.Eval()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 2}, got)
}

func TestErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	failing := NewNode(func([]any, map[string]any) (any, error) { return nil, boom })
	n := NewNode(Identity, Val(0)).With("bad", Lazy(failing))
	_, err := n.Eval()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestCycle(t *testing.T) {
	n := NewNode(Identity)
	n.With("self", Lazy(n))
	_, err := n.Eval()
	assert.ErrorIs(t, err, ERR_CYCLIC_DEPENDENCY)

	// shared, non-cyclic nodes are fine
	shared := NewNode(sum, Val(2))
	diamond := NewNode(sum, Lazy(shared), Lazy(shared))
	v, err := Eval[int](diamond)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestEvalType(t *testing.T) {
	_, err := Eval[string](NewNode(Identity, Val(1)))
	assert.ErrorIs(t, err, ERR_TYPE)
}

func TestNilNode(t *testing.T) {
	_, err := NewNode(Identity, Lazy(nil)).Eval()
	assert.ErrorIs(t, err, ERR_TYPE)
	assert.Contains(t, err.Error(), "Argument 0")

	_, err = NewNode(Identity).With("missing", Deferred{}).Eval()
	assert.ErrorIs(t, err, ERR_TYPE)
}
