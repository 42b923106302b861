package matrix_test

import (
	"fmt"

	"github.com/hadjar2027/ssj/matrix"
)

// ExampleCholesky factors a 2×2 covariance matrix and prints L.
func ExampleCholesky() {
	sigma, _ := matrix.NewDenseFromRows([][]float64{
		{4, 2},
		{2, 5},
	}, 2, 2)

	l, err := matrix.Cholesky(sigma)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(l)

	// Output:
	// [2, 0]
	// [1, 2]
}

// ExampleCholesky_semiDefinite shows a zero-variance coordinate yielding a zero column.
func ExampleCholesky_semiDefinite() {
	sigma, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0},
		{0, 9},
	}, 2, 2)

	l, _ := matrix.Cholesky(sigma)
	fmt.Print(l)

	// Output:
	// [0, 0]
	// [0, 3]
}
