package pokeapi

// NamedResource is the {name, url} reference the API uses for links between
// resources.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonList mirrors the payload returned by /pokemon?limit=&offset=.
type PokemonList struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Pokemon mirrors the subset of /pokemon/{idOrName} the viewer renders.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Sprites        Sprites       `json:"sprites"`
	Types          []TypeSlot    `json:"types"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []Stat        `json:"stats"`
	Species        NamedResource `json:"species"`
}

// Sprites holds the image URLs. Any of them may be null upstream.
type Sprites struct {
	FrontDefault *string       `json:"front_default"`
	Other        *OtherSprites `json:"other"`
}

// OtherSprites groups the alternate artwork sets.
type OtherSprites struct {
	OfficialArtwork *Artwork `json:"official-artwork"`
}

// Artwork is a single artwork set.
type Artwork struct {
	FrontDefault *string `json:"front_default"`
}

// TypeSlot is one entry of a pokemon's ordered type list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of a pokemon's ability list.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Stat is a base stat value (0-255) with its name.
type Stat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// ArtworkURL returns the official artwork URL or "" when absent.
func (s Sprites) ArtworkURL() string {
	if s.Other == nil || s.Other.OfficialArtwork == nil || s.Other.OfficialArtwork.FrontDefault == nil {
		return ""
	}
	return *s.Other.OfficialArtwork.FrontDefault
}

// DefaultURL returns the default front sprite URL or "" when absent.
func (s Sprites) DefaultURL() string {
	if s.FrontDefault == nil {
		return ""
	}
	return *s.FrontDefault
}
