// Command tca simulates one-dimensional trinary cellular automata driven
// by Wolfram-style rule numbers and renders their space-time diagrams.
//
// Usage:
//
//	tca render --rule 1110 --width 301 --steps 300 --out rule1110.png
//	tca render --config run.yaml
//	tca sweep --rules 0,1110,9841,4000..4010 --out-dir gallery
//	tca table --rule 4374
//	tca init run.yaml
package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "tca",
	Short:         "Trinary cellular automaton simulator and renderer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("tca: %v", err)
	}
}
