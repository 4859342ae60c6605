package grid_test

import (
	"fmt"

	"github.com/matzehuels/wordcloud/pkg/cloud/grid"
)

func Example() {
	ngx, ngy := grid.Dims(85, 47, grid.CellSize(8))
	g := grid.New(ngx, ngy)
	g.Occupy(2, 3)

	fmt.Println(ngx, ngy, g.Free())
	fmt.Println(g.IsFree(2, 3), g.IsFree(-1, 0))
	// Output:
	// 10 5 49
	// false false
}
