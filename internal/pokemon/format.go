// Package pokemon holds the pure data-shaping helpers shared by the list and
// detail views.
package pokemon

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/five82/pokeview/internal/pokeapi"
)

// PlaceholderImage is returned by SelectImage when no sprite is available.
const PlaceholderImage = "/placeholder.svg"

// MutedToken is the display token for unknown types.
const MutedToken = "muted"

// MaxBaseStat is the upper bound of a base stat value.
const MaxBaseStat = 255

var trailingID = regexp.MustCompile(`/(\d+)/$`)

// typeTokens is closed: the 17 known types and nothing else.
var typeTokens = map[string]string{
	"fire":     "type-fire",
	"water":    "type-water",
	"grass":    "type-grass",
	"electric": "type-electric",
	"psychic":  "type-psychic",
	"ice":      "type-ice",
	"dragon":   "type-dragon",
	"dark":     "type-dark",
	"fighting": "type-fighting",
	"poison":   "type-poison",
	"ground":   "type-ground",
	"flying":   "type-flying",
	"bug":      "type-bug",
	"rock":     "type-rock",
	"ghost":    "type-ghost",
	"steel":    "type-steel",
	"normal":   "type-normal",
}

// IDFromResourceURL extracts the numeric id from a resource URL such as
// ".../pokemon/25/". It returns 0 when the URL does not end in /<digits>/;
// 0 is never a valid id.
func IDFromResourceURL(url string) int {
	m := trailingID.FindStringSubmatch(url)
	if m == nil {
		return 0
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return id
}

// TitleCase uppercases the first character and leaves the rest untouched.
func TitleCase(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// SelectImage picks official artwork, then the default sprite, then the
// placeholder path.
func SelectImage(p pokeapi.Pokemon) string {
	if art := p.Sprites.ArtworkURL(); art != "" {
		return art
	}
	if sprite := p.Sprites.DefaultURL(); sprite != "" {
		return sprite
	}
	return PlaceholderImage
}

// TypeColorToken maps a type name to its display token.
func TypeColorToken(typeName string) string {
	if token, ok := typeTokens[typeName]; ok {
		return token
	}
	return MutedToken
}

// KnownTypes returns the type names TypeColorToken recognizes.
func KnownTypes() []string {
	names := make([]string, 0, len(typeTokens))
	for name := range typeTokens {
		names = append(names, name)
	}
	return names
}

// FormatHeight converts decimetres to metres with one decimal place.
func FormatHeight(decimetres int) string {
	return fmt.Sprintf("%.1f m", float64(decimetres)/10)
}

// FormatWeight converts hectograms to kilograms with one decimal place.
func FormatWeight(hectograms int) string {
	return fmt.Sprintf("%.1f kg", float64(hectograms)/10)
}

// FormatStatName turns "special-attack" into "Special attack". Only the
// first hyphen is replaced.
func FormatStatName(name string) string {
	return TitleCase(strings.Replace(name, "-", " ", 1))
}

// FormatDexNumber renders an id as "#025".
func FormatDexNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// StatPercent scales a base stat to 0-100 against MaxBaseStat.
func StatPercent(base int) float64 {
	switch {
	case base <= 0:
		return 0
	case base >= MaxBaseStat:
		return 100
	}
	return float64(base) / MaxBaseStat * 100
}

// AbilityLabel renders an ability name, marking hidden abilities.
func AbilityLabel(a pokeapi.AbilitySlot) string {
	label := TitleCase(a.Ability.Name)
	if a.IsHidden {
		label += " (Hidden)"
	}
	return label
}

// TypeNames returns the type names in display order.
func TypeNames(p pokeapi.Pokemon) []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// SearchTarget normalizes free-text search input into a detail parameter.
// Empty input yields ok == false and must not navigate.
func SearchTarget(text string) (string, bool) {
	target := strings.ToLower(strings.TrimSpace(text))
	return target, target != ""
}
