// SPDX-License-Identifier: MIT

package cplx

import "errors"

// ErrParse is returned by Parse when the input is not a complex literal.
var ErrParse = errors.New("cplx: invalid complex literal")
