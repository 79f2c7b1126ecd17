package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mwhite/pokedex/internal/model"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the freeCodeCamp PokeAPI proxy.
	DefaultBaseURL = "https://pokeapi-proxy.freecodecamp.rocks/api"

	defaultTimeout = 15 * time.Second
)

// ErrNotFound is returned when the proxy answers with a non-success status.
// Any non-2xx response is treated uniformly as "not found".
var ErrNotFound = errors.New("pokemon not found")

// PokeClient handles communication with the PokeAPI proxy
type PokeClient struct {
	baseURL string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewPokeClient creates a new PokeAPI proxy client
func NewPokeClient(baseURL string, sugar *zap.SugaredLogger) *PokeClient {
	return &PokeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		sugar: sugar,
	}
}

// pokemonResponse represents the API response for /pokemon/{name-or-id}
type pokemonResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Weight  int    `json:"weight"`
	Height  int    `json:"height"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
	} `json:"stats"`
}

// FetchPokemon retrieves a single Pokémon by name or numeric id. The query
// is lower-cased before the request, matching what the proxy expects.
func (c *PokeClient) FetchPokemon(ctx context.Context, query string) (*model.Pokemon, error) {
	name := strings.ToLower(query)
	reqURL := fmt.Sprintf("%s/pokemon/%s", c.baseURL, url.PathEscape(name))

	c.sugar.Infof("Fetching Pokémon %s", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pokemon %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ErrNotFound
	}

	var pr pokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("failed to parse pokemon response: %w", err)
	}

	return convertPokemonResponse(pr)
}

// convertPokemonResponse maps the API shape onto the domain model. The proxy
// guarantees at least six stat entries in canonical order; anything shorter
// is treated as a malformed body.
func convertPokemonResponse(pr pokemonResponse) (*model.Pokemon, error) {
	if len(pr.Stats) < model.NumStats {
		return nil, fmt.Errorf("malformed pokemon response: got %d stats, want %d", len(pr.Stats), model.NumStats)
	}

	p := &model.Pokemon{
		ID:     pr.ID,
		Name:   pr.Name,
		Weight: pr.Weight,
		Height: pr.Height,
		Sprite: pr.Sprites.FrontDefault,
		Types:  make([]string, len(pr.Types)),
	}
	for i, t := range pr.Types {
		p.Types[i] = t.Type.Name
	}
	for i := 0; i < model.NumStats; i++ {
		p.Stats[i] = pr.Stats[i].BaseStat
	}

	return p, nil
}
