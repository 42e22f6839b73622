package hitset_test

import (
	"fmt"

	"github.com/katalvlaran/patterntree/hitset"
)

// ExampleSet_IsSimilarTo reproduces the documented reference scenario:
// tryset has an extra hit in a plane this already covers, and
// similarity still holds.
func ExampleSet_IsSimilarTo() {
	this := hitset.NewSet([]hitset.Hit{
		{Plane: 0, Key: 30},
		{Plane: 1, Key: 32},
		{Plane: 2, Key: 40},
	})
	try := hitset.NewSet([]hitset.Hit{
		{Plane: 1, Key: 31},
		{Plane: 1, Key: 32},
		{Plane: 2, Key: 40},
	})

	fmt.Println(this.IsSimilarTo(try))
	// Output:
	// true
}
