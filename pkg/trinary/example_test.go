package trinary_test

import (
	"fmt"

	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

func ExampleToTrinary() {
	digits, _ := trinary.ToTrinary(1110)
	fmt.Println(digits)
	// Output: 001112010
}

func ExampleAutomaton_Run() {
	auto, err := trinary.NewWithRule(9841)
	if err != nil {
		panic(err)
	}
	initial, err := trinary.ParseConfiguration("01202")
	if err != nil {
		panic(err)
	}
	field, err := auto.Run(initial, 2)
	if err != nil {
		panic(err)
	}
	for _, row := range field {
		fmt.Println(row)
	}
	// Output:
	// 01202
	// 11111
	// 11111
}

func ExampleLookupTable_Output() {
	digits, _ := trinary.ToTrinary(4374)
	table, _ := trinary.BuildLookupTable(digits)
	fmt.Println(table.Output(trinary.Neighborhood{Left: 2, Self: 1}))
	fmt.Println(table.Output(trinary.Neighborhood{Left: 0, Self: 0}))
	// Output:
	// 2
	// 0
}
