package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "base_experience": 112,
  "sprites": {
    "front_default": "https://img.example/sprite/25.png",
    "other": {"official-artwork": {"front_default": "https://img.example/art/25.png"}}
  },
  "types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
  "abilities": [
    {"ability": {"name": "static"}, "is_hidden": false, "slot": 1},
    {"ability": {"name": "lightning-rod"}, "is_hidden": true, "slot": 3}
  ],
  "stats": [{"base_stat": 35, "effort": 0, "stat": {"name": "hp"}}],
  "species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"}
}`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	got, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if got != DefaultBaseURL {
		t.Fatalf("parseBaseURL(\"\") = %q, want %q", got, DefaultBaseURL)
	}

	got, err = parseBaseURL("  https://example.com/api/v2/?x=1#frag ")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if got != "https://example.com/api/v2" {
		t.Fatalf("parseBaseURL = %q, want https://example.com/api/v2", got)
	}
}

func TestParseBaseURL_RejectsRelative(t *testing.T) {
	for _, raw := range []string{"not a url", "/api/v2", "example.com"} {
		if _, err := parseBaseURL(raw); err == nil {
			t.Fatalf("parseBaseURL(%q) returned nil error, want error", raw)
		}
	}
}

func TestClient_FetchPageEncodesQueryAndDecodes(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotPath, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 1302, "next": "https://pokeapi.co/api/v2/pokemon?offset=40&limit=20", "previous": null,
			"results": [{"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon/25/"}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.FetchPage(ctx, 20, 20)
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if gotPath != "/api/v2/pokemon" {
		t.Fatalf("path = %q, want /api/v2/pokemon", gotPath)
	}
	if gotQuery.Get("limit") != "20" || gotQuery.Get("offset") != "20" {
		t.Fatalf("query = %v, want limit=20 offset=20", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "pokeview/") {
		t.Fatalf("User-Agent = %q, want pokeview/*", gotUserAgent)
	}
	if page.Count != 1302 || len(page.Results) != 1 || page.Results[0].Name != "pikachu" {
		t.Fatalf("page = %#v, want count=1302 with pikachu", page)
	}
	if page.Next == nil || page.Previous != nil {
		t.Fatalf("next/previous = %v/%v, want set/nil", page.Next, page.Previous)
	}
}

func TestClient_FetchPageDefaultsLimitAndOffset(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"count": 0, "next": null, "previous": null, "results": []}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchPage(context.Background(), 0, -5); err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if gotQuery.Get("limit") != "20" || gotQuery.Get("offset") != "0" {
		t.Fatalf("query = %v, want limit=20 offset=0", gotQuery)
	}
}

func TestClient_FetchDetailDecodesPokemon(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pikachuJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	p, err := c.FetchDetail(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("FetchDetail returned error: %v", err)
	}
	if gotPath != "/pokemon/pikachu" {
		t.Fatalf("path = %q, want /pokemon/pikachu", gotPath)
	}
	if p.ID != 25 || p.Height != 4 || p.Weight != 60 || p.BaseExperience != 112 {
		t.Fatalf("pokemon = %#v, want pikachu basics", p)
	}
	if p.Sprites.ArtworkURL() != "https://img.example/art/25.png" {
		t.Fatalf("ArtworkURL = %q", p.Sprites.ArtworkURL())
	}
	if len(p.Abilities) != 2 || !p.Abilities[1].IsHidden || p.Abilities[1].Ability.Name != "lightning-rod" {
		t.Fatalf("abilities = %#v", p.Abilities)
	}
	if p.Species.Name != "pikachu" {
		t.Fatalf("species = %q, want pikachu", p.Species.Name)
	}

	if _, err := c.FetchDetailByID(context.Background(), 25); err != nil {
		t.Fatalf("FetchDetailByID returned error: %v", err)
	}
	if gotPath != "/pokemon/25" {
		t.Fatalf("path = %q, want /pokemon/25", gotPath)
	}
}

func TestClient_FetchDetailRequiresKey(t *testing.T) {
	c, err := NewClient("", Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchDetail(context.Background(), "  "); err == nil {
		t.Fatalf("FetchDetail returned nil error, want error")
	}
	if _, err := c.FetchDetailByID(context.Background(), 0); err == nil {
		t.Fatalf("FetchDetailByID(0) returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/missingno":
			http.Error(w, "Not Found", http.StatusNotFound)
		case "/pokemon/garbled":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchDetail(context.Background(), "missingno")
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindHTTP || fe.Status != http.StatusNotFound {
		t.Fatalf("FetchDetail error = %v, want http 404 FetchError", err)
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound(%v) = false, want true", err)
	}
	if !strings.Contains(err.Error(), "missingno") {
		t.Fatalf("error %q does not mention the identifier", err.Error())
	}

	_, err = c.FetchDetail(context.Background(), "garbled")
	if KindOf(err) != KindDecode || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchDetail error = %v, want decode error", err)
	}

	_, err = c.FetchPage(context.Background(), 20, 0)
	if KindOf(err) != KindHTTP || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("FetchPage error = %v, want status 500", err)
	}
	if IsNotFound(err) {
		t.Fatalf("IsNotFound(500) = true, want false")
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	c, err := NewClient(base, Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPage(context.Background(), 20, 0)
	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != KindTransport {
		t.Fatalf("FetchPage error = %v, want transport FetchError", err)
	}
	if fe.Unwrap() == nil {
		t.Fatalf("transport FetchError should wrap the cause")
	}
}

func TestClient_DecodesJSONWhateverTheContentType(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if r.URL.Path == "/pokemon/truncated" {
			_, _ = w.Write([]byte(pikachuJSON[:40]))
			return
		}
		_, _ = w.Write([]byte(pikachuJSON))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Options{})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	p, err := c.FetchDetail(context.Background(), "pikachu")
	if err != nil {
		t.Fatalf("FetchDetail returned error: %v", err)
	}
	if p.ID != 25 || len(p.Types) != 1 || p.Types[0].Type.Name != "electric" {
		t.Fatalf("pokemon = %#v, want decoded pikachu", p)
	}

	_, err = c.FetchDetail(context.Background(), "truncated")
	if KindOf(err) != KindDecode {
		t.Fatalf("truncated body error = %v, want decode error", err)
	}
}
