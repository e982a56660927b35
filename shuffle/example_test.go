package shuffle_test

import (
	"fmt"

	"github.com/katalvlaran/loopkit/shuffle"
)

func ExampleInterleave() {
	for k := 1; k <= 3; k++ {
		s, _ := shuffle.Interleave("012345", k)
		fmt.Println(k, s)
	}

	// Output:
	// 1 024135
	// 2 043215
	// 3 031425
}

func ExamplePeriod() {
	fmt.Println(shuffle.Period("qwerty"))

	// Output:
	// 4
}
