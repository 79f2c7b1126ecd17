package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mwhite/pokedex/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"weight": 60,
	"height": 4,
	"sprites": {"front_default": "https://example.test/sprites/25.png"},
	"types": [{"slot": 1, "type": {"name": "electric"}}],
	"stats": [
		{"base_stat": 35}, {"base_stat": 55}, {"base_stat": 40},
		{"base_stat": 50}, {"base_stat": 50}, {"base_stat": 90}
	]
}`

// newTestApp wires the search routes against a fake upstream and counts the
// requests that reach it.
func newTestApp(upstream http.HandlerFunc) (*fiber.App, *httptest.Server, *atomic.Int64) {
	var requests atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		upstream(w, r)
	}))

	client := service.NewPokeClient(srv.URL, zap.NewNop().Sugar())

	app := fiber.New()
	app.Get("/", HomeHandler())
	app.Get("/search", SearchHandler(client))
	app.Get("/api/pokemon/:query", PokemonAPIHandler(client))

	return app, srv, &requests
}

func serveUpstream(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func fetchBody(t *testing.T, app *fiber.App, req *http.Request) string {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

// TestHomeRendersBlankState serves the page with a hidden, empty detail
// panel and no error line.
func TestHomeRendersBlankState(t *testing.T) {
	app, srv, requests := newTestApp(serveUpstream(http.StatusOK, pikachuJSON))
	defer srv.Close()

	body := fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, body, `id="search-input"`)
	assert.Contains(t, body, `id="search-button"`)
	assert.Contains(t, body, `class="pokemon-detail hidden"`)
	assert.NotContains(t, body, `id="error-message"`)
	assert.Equal(t, int64(0), requests.Load(), "rendering the page must not contact the proxy")
}

// TestSearchRendersRecord checks the success path end to end: one upstream
// request with the query lower-cased, upper-cased name, #-prefixed id, type
// tags, raw size values, and the stat table filled positionally.
func TestSearchRendersRecord(t *testing.T) {
	app, srv, requests := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/pikachu", r.URL.Path)
		w.Write([]byte(pikachuJSON))
	})
	defer srv.Close()

	body := fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/search?q=Pikachu", nil))

	assert.Equal(t, int64(1), requests.Load())
	assert.Contains(t, body, "PIKACHU")
	assert.Contains(t, body, "#25")
	assert.Contains(t, body, `src="https://example.test/sprites/25.png"`)
	assert.Contains(t, body, `<span class="type-tag">electric</span>`)
	assert.Contains(t, body, "Weight: 60")
	assert.Contains(t, body, "Height: 4")
	assert.Contains(t, body, `class="pokemon-detail"`)
	assert.NotContains(t, body, `class="pokemon-detail hidden"`)
	assert.NotContains(t, body, `id="error-message"`)

	// Stat cells in fixed label order.
	re := regexp.MustCompile(`<td class="stat-value">(\d+)</td>`)
	var values []string
	for _, m := range re.FindAllStringSubmatch(body, -1) {
		values = append(values, m[1])
	}
	assert.Equal(t, []string{"35", "55", "40", "50", "50", "90"}, values)
	labelOrder := []string{"HP:", "Attack:", "Defense:", "Sp. Attack:", "Sp. Defense:", "Speed:"}
	last := -1
	for _, label := range labelOrder {
		idx := strings.Index(body, "<td>"+label)
		assert.Greater(t, idx, last, "label %q out of order", label)
		last = idx
	}
}

// TestSearchEmptyQuery performs no upstream request and leaves the blank
// state untouched.
func TestSearchEmptyQuery(t *testing.T) {
	app, srv, requests := newTestApp(serveUpstream(http.StatusOK, pikachuJSON))
	defer srv.Close()

	body := fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/search?q=", nil))

	assert.Equal(t, int64(0), requests.Load())
	assert.Contains(t, body, `class="pokemon-detail hidden"`)
	assert.NotContains(t, body, `id="error-message"`)
}

// TestSearchNotFound hides the panel and shows the fixed error text.
func TestSearchNotFound(t *testing.T) {
	app, srv, _ := newTestApp(serveUpstream(http.StatusNotFound, `{"error":"no such pokemon"}`))
	defer srv.Close()

	body := fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/search?q=missingno", nil))

	assert.Contains(t, body, "Pokémon not found")
	assert.Contains(t, body, `class="pokemon-detail hidden"`)
	assert.NotContains(t, body, "#0")
}

// TestSearchSuccessThenFailure verifies the unconditional reset: after a
// success, a failing submission renders no record, only the error.
func TestSearchSuccessThenFailure(t *testing.T) {
	var fail atomic.Bool
	app, srv, _ := newTestApp(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(pikachuJSON))
	})
	defer srv.Close()

	body := fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/search?q=pikachu", nil))
	assert.Contains(t, body, "PIKACHU")

	fail.Store(true)
	body = fetchBody(t, app, httptest.NewRequest(http.MethodGet, "/search?q=pikachu", nil))
	assert.NotContains(t, body, "PIKACHU")
	assert.Contains(t, body, "Pokémon not found")
	assert.Contains(t, body, `class="pokemon-detail hidden"`)
}

// TestSearchHTMXFragment returns only the result fragment for HTMX swaps.
func TestSearchHTMXFragment(t *testing.T) {
	app, srv, _ := newTestApp(serveUpstream(http.StatusOK, pikachuJSON))
	defer srv.Close()

	req := httptest.NewRequest(http.MethodGet, "/search?q=pikachu", nil)
	req.Header.Set("HX-Request", "true")
	body := fetchBody(t, app, req)

	assert.Contains(t, body, `id="search-result"`)
	assert.Contains(t, body, "PIKACHU")
	assert.NotContains(t, body, "<html")
	assert.NotContains(t, body, `id="search-form"`)
}

// TestPokemonAPI covers the JSON route's success and not-found answers.
func TestPokemonAPI(t *testing.T) {
	app, srv, _ := newTestApp(serveUpstream(http.StatusOK, pikachuJSON))
	defer srv.Close()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/Pikachu", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id":25`)
	assert.Contains(t, string(body), `"name":"pikachu"`)
	assert.Contains(t, string(body), `"stats":[35,55,40,50,50,90]`)

	appNF, srvNF, _ := newTestApp(serveUpstream(http.StatusNotFound, ""))
	defer srvNF.Close()

	respNF, err := appNF.Test(httptest.NewRequest(http.MethodGet, "/api/pokemon/missingno", nil))
	require.NoError(t, err)
	defer respNF.Body.Close()
	assert.Equal(t, http.StatusNotFound, respNF.StatusCode)
	bodyNF, err := io.ReadAll(respNF.Body)
	require.NoError(t, err)
	assert.Contains(t, string(bodyNF), "Pokémon not found")
}
