package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokeview.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	path := writeLog(t, all...)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (5)", 5, all[5:]},
		{"read exact (10)", 10, all},
		{"read more than available (20)", 20, all},
		{"read one", 1, all[9:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Fatalf("Read mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	e := Parse(`{"level":"warn","ts":"2026-01-02T03:04:05.000Z","logger":"list","caller":"app/list.go:80","msg":"detail fetch failed","page":2,"id":25}`)
	if !e.Structured() {
		t.Fatalf("entry not structured: %#v", e)
	}
	if e.Level != "warn" || e.Logger != "list" || e.Message != "detail fetch failed" || e.Time != "2026-01-02T03:04:05.000Z" {
		t.Fatalf("entry = %#v", e)
	}
	if diff := cmp.Diff([]string{"id=25", "page=2"}, e.FieldPairs()); diff != "" {
		t.Fatalf("FieldPairs mismatch (-want +got):\n%s", diff)
	}

	raw := Parse("panic: something broke")
	if raw.Structured() || raw.Raw != "panic: something broke" {
		t.Fatalf("raw entry = %#v", raw)
	}
	if Parse("{broken").Structured() {
		t.Fatalf("malformed JSON parsed as structured")
	}
}

func TestReadEntries_FiltersByLevel(t *testing.T) {
	path := writeLog(t,
		`{"level":"debug","msg":"page superseded"}`,
		`{"level":"info","msg":"pokeview starting"}`,
		"",
		"not json",
		`{"level":"error","msg":"save favorites"}`,
	)

	entries, err := ReadEntries(path, 0, "warn")
	if err != nil {
		t.Fatalf("ReadEntries returned error: %v", err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, Format(e, false))
	}
	want := []string{"not json", "ERROR save favorites"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ReadEntries mismatch (-want +got):\n%s", diff)
	}

	entries, err = ReadEntries(path, 0, "")
	if err != nil {
		t.Fatalf("ReadEntries returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("default threshold kept %d entries, want 3", len(entries))
	}
}

func TestFormat(t *testing.T) {
	e := Entry{Time: "t", Level: "info", Logger: "detail", Message: "loaded", Fields: map[string]any{"param": "25"}}
	if got := Format(e, false); got != "t INFO  detail loaded param=25" {
		t.Fatalf("Format = %q", got)
	}
	if got := Format(e, true); !strings.Contains(got, "loaded") {
		t.Fatalf("colored Format lost the message: %q", got)
	}
}
