// SPDX-License-Identifier: MIT

package qm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/qspin/dirac"
	"github.com/katalvlaran/qspin/matrix"
)

// Registry maps operator and state names to their values, preserving
// registration order for listings. Operators must be Hermitian.
type Registry struct {
	mu sync.RWMutex

	name    string
	opts    []matrix.Option
	ops     map[string]matrix.Matrix
	opOrder []string
	states  map[string]dirac.Ket
	stOrder []string
}

// Result is the evaluation of one experiment expression.
type Result struct {
	// Expr is the expression as given, trimmed.
	Expr string
	// Operator and Prepared are the registry entries the expression named.
	Operator string
	Prepared dirac.Ket
	// Outcome is the classified experiment result.
	Outcome Outcome
	// Name is the label of the registered state equal to Outcome.State,
	// or "" when the outcome matches no registered state.
	Name string
}

// String renders "expr = name" for a recognised outcome and
// "expr = (|ψ> = (...), eigenvalue)" otherwise.
func (r Result) String() string {
	if r.Name != "" {
		return r.Expr + " = " + r.Name
	}

	return r.Expr + " = " + r.Outcome.String()
}

// NewRegistry returns an empty registry. opts are forwarded to every
// Experiment the registry runs.
func NewRegistry(name string, opts ...Option) *Registry {
	return &Registry{
		name:   name,
		opts:   opts,
		ops:    make(map[string]matrix.Matrix),
		states: make(map[string]dirac.Ket),
	}
}

// Option aliases matrix.Option so models can pass an epsilon through.
type Option = matrix.Option

// Name returns the registry name (e.g. "Electron Spin").
func (r *Registry) Name() string { return r.name }

// AddOperator registers a clone of op under name.
// Errors: ErrEmptyName, ErrDuplicateName, ErrNotObservable.
func (r *Registry) AddOperator(name string, op matrix.Matrix) error {
	if name == "" {
		return fmt.Errorf("AddOperator: %w", ErrEmptyName)
	}
	if matrix.ValidateSquare(op) != nil || !matrix.IsHermitian(op, r.opts...) {
		return fmt.Errorf("AddOperator %q: %w", name, ErrNotObservable)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ops[name]; ok {
		return fmt.Errorf("AddOperator %q: %w", name, ErrDuplicateName)
	}
	r.ops[name] = op.Clone()
	r.opOrder = append(r.opOrder, name)

	return nil
}

// AddState registers k under its label.
// Errors: ErrEmptyName, ErrDuplicateName.
func (r *Registry) AddState(k dirac.Ket) error {
	if k.Label == "" {
		return fmt.Errorf("AddState: %w", ErrEmptyName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[k.Label]; ok {
		return fmt.Errorf("AddState %q: %w", k.Label, ErrDuplicateName)
	}
	r.states[k.Label] = k
	r.stOrder = append(r.stOrder, k.Label)

	return nil
}

// Operator returns a clone of the named operator. Errors: ErrUnknownOperator.
func (r *Registry) Operator(name string) (matrix.Matrix, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("Operator %q: %w", name, ErrUnknownOperator)
	}

	return op.Clone(), nil
}

// State returns the named state. Errors: ErrUnknownState.
func (r *Registry) State(name string) (dirac.Ket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.states[name]
	if !ok {
		return dirac.Ket{}, fmt.Errorf("State %q: %w", name, ErrUnknownState)
	}

	return k, nil
}

// Operators returns operator names in registration order.
func (r *Registry) Operators() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.opOrder...)
}

// States returns state names in registration order.
func (r *Registry) States() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.stOrder...)
}

// ParseExpression splits "<op>|<state>>" into its operator and state names.
// Surrounding whitespace is ignored. Errors: ErrBadExpression.
func ParseExpression(expr string) (op, state string, err error) {
	s := strings.TrimSpace(expr)
	bar := strings.IndexByte(s, '|')
	if bar <= 0 || !strings.HasSuffix(s, ">") {
		return "", "", fmt.Errorf("%q: %w", expr, ErrBadExpression)
	}
	op = strings.TrimSpace(s[:bar])
	state = strings.TrimSpace(s[bar+1 : len(s)-1])
	if op == "" || state == "" {
		return "", "", fmt.Errorf("%q: %w", expr, ErrBadExpression)
	}

	return op, state, nil
}

// Run evaluates an experiment expression such as "σ(z)|u>".
//
// Implementation:
//   - Stage 1: ParseExpression; look up the operator and the state.
//   - Stage 2: Experiment(op, state).
//   - Stage 3: name the outcome after the first registered state (in
//     registration order) whose amplitudes match Outcome.State.
//
// Errors: ErrBadExpression, ErrUnknownOperator, ErrUnknownState and the
// errors of Experiment.
func (r *Registry) Run(expr string) (Result, error) {
	opName, stName, err := ParseExpression(expr)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	op, err := r.Operator(opName)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	state, err := r.State(stName)
	if err != nil {
		return Result{}, fmt.Errorf("Run: %w", err)
	}
	out, err := Experiment(op, state, r.opts...)
	if err != nil {
		return Result{}, fmt.Errorf("Run %q: %w", expr, err)
	}

	return Result{
		Expr:     strings.TrimSpace(expr),
		Operator: opName,
		Prepared: state,
		Outcome:  out,
		Name:     r.nameOf(out.State),
	}, nil
}

// nameOf returns the label of the first registered state equal to k.
func (r *Registry) nameOf(k dirac.Ket) string {
	eps := matrix.NewOptions(r.opts...).Epsilon()

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, name := range r.stOrder {
		if r.states[name].ApproxEqual(k, eps) {
			return name
		}
	}

	return ""
}
