package handlers

import (
	"context"
	"errors"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/mwhite/pokedex/internal/service"
	"github.com/mwhite/pokedex/internal/templates"
)

// NotFoundMessage is the fixed error text shown when the proxy reports no match.
const NotFoundMessage = "Pokémon not found"

// HomeHandler renders the search page in its initial state: empty input,
// hidden detail panel, no error.
func HomeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := templates.Search(templates.SearchView{})
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}

// SearchHandler performs one lookup per submission and renders the outcome.
// An empty query is ignored without contacting the proxy; any failure clears
// the record and shows an error line instead.
func SearchHandler(client *service.PokeClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		query := c.Query("q")
		view := templates.SearchView{Query: query}

		if query != "" {
			pokemon, err := client.FetchPokemon(ctx, query)
			switch {
			case err == nil:
				view.Result = pokemon
			case errors.Is(err, service.ErrNotFound):
				view.Error = NotFoundMessage
			default:
				view.Error = err.Error()
			}
		}

		// Check if this is an HTMX request for just the result fragment
		if c.Get("HX-Request") == "true" {
			fragment := templates.SearchResult(view)
			handler := adaptor.HTTPHandler(templ.Handler(fragment))
			return handler(c)
		}

		page := templates.Search(view)
		handler := adaptor.HTTPHandler(templ.Handler(page))

		return handler(c)
	}
}

// PokemonAPIHandler exposes the same lookup as JSON.
func PokemonAPIHandler(client *service.PokeClient) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := context.Background()

		pokemon, err := client.FetchPokemon(ctx, c.Params("query"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": NotFoundMessage})
			}
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(pokemon)
	}
}
