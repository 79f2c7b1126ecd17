package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A Pokédex search application",
	Long:  `Pokédex lets you look up any Pokémon by name or number, either from the command line or through a small web interface.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
