// Package logtail reads the tail of the pokeview log file and turns zap's
// JSON lines into something readable.
//
// Read keeps a ring buffer of the last N lines so large files are scanned
// once in constant memory. Parse decodes one zap record (ts, level, logger,
// msg plus arbitrary fields); lines that are not JSON are kept verbatim.
// Format prints an entry on a single line, optionally colored by level with
// lipgloss.
//
//	entries, err := logtail.ReadEntries(path, 50, "warn")
//	for _, e := range entries {
//		fmt.Println(logtail.Format(e, false))
//	}
package logtail
