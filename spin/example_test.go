package spin_test

import (
	"fmt"

	"github.com/katalvlaran/qspin/spin"
)

// ExamplePsi builds the eigenvector of σn for n = -y.
func ExamplePsi() {
	psi, err := spin.Psi(0, -1, 0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(psi.ApproxEqual(spin.Out, 1e-12))

	_, err = spin.Psi(1, 1, 0)
	fmt.Println(err)
	// Output:
	// true
	// Psi: (1, 1, 0) has length 1.4142135623730951: spin: direction is not a unit vector
}
