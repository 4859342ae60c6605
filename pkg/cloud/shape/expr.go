package shape

import (
	"fmt"
	"math"

	"github.com/dop251/goja"
)

// Expr is a profile defined by a JavaScript expression over the variable
// theta, for example "1 - Math.sin(theta)". The expression is compiled once
// into a goja function.
//
// An Expr owns a goja runtime and must not be shared across goroutines.
type Expr struct {
	src string
	vm  *goja.Runtime
	fn  goja.Callable
}

// NewExpr compiles src. It fails if src does not compile or does not
// evaluate to a positive finite number at theta = 0.
func NewExpr(src string) (*Expr, error) {
	vm := goja.New()
	v, err := vm.RunString("(function(theta) { return (" + src + "); })")
	if err != nil {
		return nil, fmt.Errorf("compile shape expression: %w", err)
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("shape expression %q is not callable", src)
	}
	e := &Expr{src: src, vm: vm, fn: fn}
	if f := e.Factor(0); f <= 0 || math.IsInf(f, 0) {
		return nil, fmt.Errorf("shape expression %q yields %v at theta=0", src, f)
	}
	return e, nil
}

// Factor evaluates the expression at theta wrapped into [0, 2π).
// Runtime errors and non-numeric results fall back to 1.
func (e *Expr) Factor(theta float64) float64 {
	res, err := e.fn(goja.Undefined(), e.vm.ToValue(Wrap(theta)))
	if err != nil {
		return 1
	}
	f := res.ToFloat()
	if math.IsNaN(f) {
		return 1
	}
	return f
}

// String returns the source expression.
func (e *Expr) String() string { return e.src }
