// SPDX-License-Identifier: MIT

package dirac

import "errors"

// ErrZeroNorm is returned when a vector without a finite, non-zero norm is normalised.
var ErrZeroNorm = errors.New("dirac: vector has zero or undefined norm")
