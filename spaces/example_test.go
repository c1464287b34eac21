package spaces_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/riemann/manifold"
	"github.com/katalvlaran/riemann/spaces"
)

// ExampleSphere walks a quarter of a great circle and measures it.
func ExampleSphere() {
	s := spaces.NewSphere(2)
	p := []float64{1, 0, 0}
	v := manifold.NewTangentVector([]float64{0, math.Pi / 2, 0})

	q, err := s.Exp(p, v)
	if err != nil {
		fmt.Println(err)
		return
	}
	d, err := manifold.Distance(s, p, q)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("q = (%.3f, %.3f, %.3f), distance = %.4f\n", q[0], q[1], q[2], d)
	// Output: q = (0.000, 1.000, 0.000), distance = 1.5708
}
