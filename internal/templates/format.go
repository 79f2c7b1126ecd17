package templates

import (
	"fmt"
	"strings"

	"github.com/mwhite/pokedex/internal/model"
)

// SearchView is the complete state the search page renders: the text still
// in the input, at most one fetched record, and at most one error line.
type SearchView struct {
	Query  string
	Result *model.Pokemon
	Error  string
}

// DisplayName returns the record's name as rendered, upper-cased.
func DisplayName(p *model.Pokemon) string {
	return strings.ToUpper(p.Name)
}

// DisplayID returns the record's identifier as rendered, prefixed with "#".
func DisplayID(p *model.Pokemon) string {
	return fmt.Sprintf("#%d", p.ID)
}

// detailClass hides the detail panel while no record is present. The panel
// stays in the tree with blank fields either way.
func detailClass(view SearchView) string {
	if view.Result == nil {
		return "pokemon-detail hidden"
	}
	return "pokemon-detail"
}

// spriteSrc is the image source for the sprite element. An absent record or
// missing sprite renders an empty src rather than omitting the element.
func spriteSrc(view SearchView) string {
	if view.Result == nil {
		return ""
	}
	return view.Result.Sprite
}
