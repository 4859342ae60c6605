package shape_test

import (
	"fmt"
	"math"

	"github.com/matzehuels/wordcloud/pkg/cloud/shape"
)

func ExampleLookup() {
	p, ok := shape.Lookup("star")
	fmt.Println(ok, shape.IsCircle(p))

	_, ok = shape.Lookup("blob")
	fmt.Println(ok)
	// Output:
	// true false
	// false
}

func ExampleNewExpr() {
	e, err := shape.NewExpr("1 - Math.sin(theta) / 2")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f\n", e.Factor(0), e.Factor(math.Pi/2))
	// Output: 1.00 0.50
}
