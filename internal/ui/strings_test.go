package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"pikachu", 10, "pikachu"},
		{"crabominable", 8, "crabomi…"},
		{"  bulbasaur ", 0, "bulbasaur"},
		{"mew", 1, "…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("https://pokeapi.co/api/v2", 40); got != "https://pokeapi.co/api/v2" {
		t.Fatalf("short value changed: %q", got)
	}
	got := truncateMiddle("https://pokeapi.example.internal/api/v2", 21)
	if got != "https://po…nal/api/v2" {
		t.Fatalf("truncateMiddle = %q", got)
	}
	if n := len([]rune(got)); n != 21 {
		t.Fatalf("truncateMiddle length = %d, want 21", n)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("#025", 6); got != "#025  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("Charizard", 4); got != "Charizard" {
		t.Fatalf("padRight shortened input: %q", got)
	}
}
