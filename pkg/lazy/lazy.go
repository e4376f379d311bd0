// Package lazy holds deferred function applications. A Node is a function
// plus its arguments, where any argument may itself be a Node; nothing runs
// until Eval is called.
package lazy

import (
	"errors"
	"fmt"
)

var (
	ERR_CYCLIC_DEPENDENCY = errors.New("Cyclic dependency")
	ERR_TYPE              = errors.New("Unexpected result type")
)

// Func receives fully resolved arguments.
type Func func(args []any, kwargs map[string]any) (any, error)

// Arg is one argument slot: either a Value or a Deferred node.
type Arg interface {
	isArg()
}

type Value struct {
	V any
}

type Deferred struct {
	N *Node
}

func (Value) isArg()    {}
func (Deferred) isArg() {}

func Val(v any) Value       { return Value{V: v} }
func Lazy(n *Node) Deferred { return Deferred{N: n} }

type named struct {
	name string
	arg  Arg
}

type Node struct {
	f      Func
	args   []Arg
	kwargs []named
	// set while the node is on the evaluation path
	active bool
}

func NewNode(f Func, args ...Arg) *Node {
	return &Node{
		f:      f,
		args:   args,
		kwargs: make([]named, 0),
	}
}

// With attaches a named argument. Re-using a name replaces the earlier
// argument but keeps its position.
func (n *Node) With(name string, arg Arg) *Node {
	for i := range n.kwargs {
		if n.kwargs[i].name == name {
			n.kwargs[i].arg = arg
			return n
		}
	}
	n.kwargs = append(n.kwargs, named{name: name, arg: arg})
	return n
}

// Eval resolves positional arguments left to right, then named arguments in
// insertion order, depth first, and applies the function. Results are not
// cached: every call walks the whole graph again.
func (n *Node) Eval() (any, error) {
	if n.active {
		return nil, ERR_CYCLIC_DEPENDENCY
	}
	n.active = true
	defer func() { n.active = false }()

	resolved_args := make([]any, len(n.args))
	for i, arg := range n.args {
		v, err := resolve(arg)
		if err != nil {
			return nil, fmt.Errorf("Argument %d: %w", i, err)
		}
		resolved_args[i] = v
	}

	resolved_kwargs := make(map[string]any, len(n.kwargs))
	for _, kw := range n.kwargs {
		v, err := resolve(kw.arg)
		if err != nil {
			return nil, fmt.Errorf("Argument %q: %w", kw.name, err)
		}
		resolved_kwargs[kw.name] = v
	}

	return n.f(resolved_args, resolved_kwargs)
}

func resolve(arg Arg) (any, error) {
	switch a := arg.(type) {
	case Value:
		return a.V, nil
	case Deferred:
		if a.N == nil {
			return nil, fmt.Errorf("nil node: %w", ERR_TYPE)
		}
		return a.N.Eval()
	default:
		return nil, fmt.Errorf("Unknown argument kind %T", arg)
	}
}

// Eval evaluates n and asserts the result to T.
func Eval[T any](n *Node) (T, error) {
	var zero T
	v, err := n.Eval()
	if err != nil {
		return zero, err
	}
	ret, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("Got %T, want %T: %w", v, zero, ERR_TYPE)
	}
	return ret, nil
}

// Identity returns its first positional argument.
func Identity(args []any, _ map[string]any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}
