// Package cplx_test provides runnable examples for the cplx package.
package cplx_test

import (
	"fmt"

	"github.com/katalvlaran/qspin/cplx"
)

// ExampleParse parses a literal, rotates it by i and formats the result.
func ExampleParse() {
	z, err := cplx.Parse("4+3i")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(z)
	fmt.Println(z.Mul(cplx.I))
	fmt.Println(z.Conj(), z.Mod())
	// Output:
	// 4+3i
	// -3+4i
	// 4-3i 5
}

// ExampleComplex_Div shows the limit identities of the extended plane.
func ExampleComplex_Div() {
	fmt.Println(cplx.ONE.Div(cplx.ZERO))
	fmt.Println(cplx.ONE.Div(cplx.INF))
	fmt.Println(cplx.ZERO.Div(cplx.ZERO))
	// Output:
	// ∞
	// 0
	// NaN
}
