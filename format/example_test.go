package format_test

import (
	"fmt"

	"github.com/mfreiberg/taglog/format"
)

func ExampleToUpperCase() {
	fmt.Println(format.ToUpperCase("GoEs to UppEr Case"))
	// Output:
	// GOES TO UPPER CASE
}

func ExampleToLowerCase() {
	fmt.Println(format.ToLowerCase("GoEs to LoWER Case"))
	// Output:
	// goes to lower case
}
