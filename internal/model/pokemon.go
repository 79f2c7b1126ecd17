package model

// NumStats is the number of base stats every Pokémon carries.
const NumStats = 6

// StatNames holds the display labels for base stats, in the canonical
// order the API returns them.
var StatNames = [NumStats]string{"HP", "Attack", "Defense", "Sp. Attack", "Sp. Defense", "Speed"}

// Pokemon represents a single fetched Pokémon record
type Pokemon struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Weight int           `json:"weight"`
	Height int           `json:"height"`
	Sprite string        `json:"sprite"`
	Types  []string      `json:"types"`
	Stats  [NumStats]int `json:"stats"`
}
