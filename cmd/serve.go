package cmd

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/mwhite/pokedex/internal/handlers"
	"github.com/mwhite/pokedex/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Pokédex search web server",
	Long:  `Start the web server that serves the Pokémon search page.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Use PORT env var if set, otherwise use flag value
		if envPort := os.Getenv("PORT"); envPort != "" && port == "8080" {
			port = envPort
		}

		zapLogger, err := zap.NewProduction()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer zapLogger.Sync()

		client := service.NewPokeClient(service.DefaultBaseURL, zapLogger.Sugar())

		app := fiber.New(fiber.Config{
			AppName: "Pokédex Search",
		})

		app.Use(logger.New())

		// Routes
		app.Get("/", handlers.HomeHandler())
		app.Get("/search", handlers.SearchHandler(client))

		// JSON lookup route
		app.Get("/api/pokemon/:query", handlers.PokemonAPIHandler(client))

		log.Printf("Starting server on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
