package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mwhite/pokedex/internal/model"
	"github.com/mwhite/pokedex/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name-or-id>",
	Short: "Fetch a single Pokémon and print its record",
	Long: `Lookup fetches one Pokémon record from the PokeAPI proxy and prints
its name, identifier, types, size, and base stats.

Examples:
  # Look up by name (case-insensitive)
  ./pokedex lookup Pikachu

  # Look up by number
  ./pokedex lookup 25`,
	Args: cobra.ExactArgs(1),
	Run:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) {
	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	client := service.NewPokeClient(service.DefaultBaseURL, zapLogger.Sugar())

	pokemon, err := client.FetchPokemon(ctx, args[0])
	if err != nil {
		if ctx.Err() != nil {
			log.Println("Lookup cancelled")
			os.Exit(1)
		}
		log.Fatalf("Lookup failed: %v", err)
	}

	log.Println("=== Pokémon ===")
	log.Printf("Name:    %s", strings.ToUpper(pokemon.Name))
	log.Printf("ID:      #%d", pokemon.ID)
	log.Printf("Types:   %s", strings.Join(pokemon.Types, ", "))
	log.Printf("Weight:  %d", pokemon.Weight)
	log.Printf("Height:  %d", pokemon.Height)
	for i, label := range model.StatNames {
		log.Printf("%-12s %d", label+":", pokemon.Stats[i])
	}
}
