// SPDX-License-Identifier: MIT

package qm

import "errors"

// Sentinel errors for registries and experiments.
var (
	// ErrBadExpression indicates an experiment expression that is not "<op>|<state>>".
	ErrBadExpression = errors.New("qm: malformed experiment expression")

	// ErrUnknownOperator indicates an operator name missing from the registry.
	ErrUnknownOperator = errors.New("qm: unknown operator")

	// ErrUnknownState indicates a state name missing from the registry.
	ErrUnknownState = errors.New("qm: unknown state")

	// ErrDuplicateName indicates a second registration under the same name.
	ErrDuplicateName = errors.New("qm: name already registered")

	// ErrNotObservable indicates an operator that is not a square Hermitian matrix.
	ErrNotObservable = errors.New("qm: operator is not Hermitian")

	// ErrEmptyName indicates a registration without a name.
	ErrEmptyName = errors.New("qm: empty name")
)
