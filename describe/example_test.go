package describe_test

import (
	"fmt"

	"github.com/reugn/go-cronmask/describe"
	"github.com/reugn/go-cronmask/expr"
)

func ExampleEnglish() {
	e, err := expr.Parse("0 0 LW */2 FRIL")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.Describe(describe.English{}))
	fmt.Println(e.Describe(describe.English{Hour: describe.Hour24}))
	// Output:
	// At 12:00 AM on the last weekday and on the last Friday of every 2nd month from January to December
	// At 00:00 on the last weekday and on the last Friday of every 2nd month from January to December
}
