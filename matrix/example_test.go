package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/riemann/matrix"
)

// ExampleCholesky factors a 2×2 SPD matrix and rebuilds it from L·Lᵀ.
func ExampleCholesky() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 2, 2, 5})

	l, err := matrix.Cholesky(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	lt, _ := matrix.Transpose(l)
	back, _ := matrix.Mul(l, lt)

	fmt.Print(l)
	fmt.Print(back)
	// Output:
	// [2, 0]
	// [1, 2]
	// [4, 2]
	// [2, 5]
}
