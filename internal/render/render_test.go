package render

import (
	"strings"
	"testing"

	"github.com/five82/pokeview/internal/pokeapi"
)

func strPtr(s string) *string { return &s }

func charizard() pokeapi.Pokemon {
	return pokeapi.Pokemon{
		ID:             6,
		Name:           "charizard",
		Height:         17,
		Weight:         905,
		BaseExperience: 267,
		Sprites: pokeapi.Sprites{
			FrontDefault: strPtr("https://img.example/sprite/6.png"),
			Other:        &pokeapi.OtherSprites{OfficialArtwork: &pokeapi.Artwork{FrontDefault: strPtr("https://img.example/art/6.png")}},
		},
		Types: []pokeapi.TypeSlot{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "fire"}},
			{Slot: 2, Type: pokeapi.NamedResource{Name: "flying"}},
		},
		Abilities: []pokeapi.AbilitySlot{
			{Ability: pokeapi.NamedResource{Name: "blaze"}, Slot: 1},
			{Ability: pokeapi.NamedResource{Name: "solar-power"}, IsHidden: true, Slot: 3},
		},
		Stats: []pokeapi.Stat{
			{BaseStat: 78, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 109, Stat: pokeapi.NamedResource{Name: "special-attack"}},
		},
		Species: pokeapi.NamedResource{Name: "charizard"},
	}
}

func TestMarkdown_RendersAllSections(t *testing.T) {
	md := Markdown(charizard(), false)

	for _, want := range []string{
		"# Charizard #006",
		"https://img.example/art/6.png",
		"`Fire` `Flying`",
		"| 1.7 m | 90.5 kg | 267 | Charizard |",
		"- Blaze",
		"- Solar-power (Hidden)",
		"| Special attack | 109 |",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Favorite") {
		t.Fatalf("markdown marks a non-favorite:\n%s", md)
	}
}

func TestMarkdown_FavoriteAndSparseRecord(t *testing.T) {
	md := Markdown(pokeapi.Pokemon{ID: 132, Name: "ditto"}, true)

	if !strings.Contains(md, "★ **Favorite**") {
		t.Fatalf("markdown missing favorite marker:\n%s", md)
	}
	if !strings.Contains(md, "Artwork: /placeholder.svg") {
		t.Fatalf("markdown missing placeholder image:\n%s", md)
	}
	if strings.Contains(md, "## Abilities") || strings.Contains(md, "## Base Stats") {
		t.Fatalf("empty sections should be omitted:\n%s", md)
	}
	if !strings.Contains(md, "| 0.0 m | 0.0 kg | 0 | - |") {
		t.Fatalf("basic info row wrong:\n%s", md)
	}
}

func TestStatBar(t *testing.T) {
	cases := []struct {
		base, width int
		filled      int
	}{
		{255, 10, 10},
		{0, 10, 0},
		{300, 10, 10},
		{-5, 10, 0},
		{128, 10, 5},
	}
	for _, tc := range cases {
		bar := StatBar(tc.base, tc.width)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Fatalf("StatBar(%d, %d) filled = %d, want %d (%q)", tc.base, tc.width, got, tc.filled, bar)
		}
		if got := len([]rune(bar)); got != tc.width {
			t.Fatalf("StatBar(%d, %d) width = %d", tc.base, tc.width, got)
		}
	}
	if StatBar(100, 0) != "" {
		t.Fatalf("StatBar with zero width should be empty")
	}
}

func TestTerminal_RendersHeading(t *testing.T) {
	out, err := Terminal(Markdown(charizard(), false), 60, StyleASCII)
	if err != nil {
		t.Fatalf("Terminal returned error: %v", err)
	}
	if !strings.Contains(out, "Charizard") {
		t.Fatalf("rendered output missing name:\n%s", out)
	}
}
