package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrickRWells/cellular-automata/pkg/trinary"
)

var (
	tableRule int

	tableCmd = &cobra.Command{
		Use:   "table",
		Short: "Print a rule's trinary digits and neighborhood lookup table",
		RunE:  runTable,
	}
)

func init() {
	tableCmd.Flags().IntVar(&tableRule, "rule", 0, "rule number in [0, 19682]")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	auto, err := trinary.NewWithRule(tableRule)
	if err != nil {
		return err
	}
	fmt.Printf("rule %d = %s (base 3)\n\n", auto.Rule(), auto.Digits())
	fmt.Println("left self -> next")
	table := auto.Table()
	for _, nb := range trinary.Neighborhoods() {
		fmt.Printf("   %d    %d ->    %d\n", nb.Left, nb.Self, table.Output(nb))
	}
	return nil
}
