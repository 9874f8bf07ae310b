package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PatrickRWells/cellular-automata/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a default run preset to the given path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.WriteDefault(args[0]); err != nil {
			return err
		}
		fmt.Printf("wrote default preset to %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
