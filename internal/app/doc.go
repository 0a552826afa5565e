// Package app is pokeview's composition root and holds the two loaders
// that drive the views.
//
// # Components
//
//   - app.go: New wires config, logging, the catalog client, storage and
//     favorites; Run starts the TUI on top of them
//   - list.go: ListLoader fetches one page, then every entry's detail in
//     parallel, and settles all of them before publishing
//   - detail.go: DetailLoader fetches one record for a route parameter;
//     ResolveParam maps route parameters to fetch keys
//
// # Failure Handling
//
// An index failure marks the page Failed with "Failed to load Pokemon
// data" and issues no detail requests. A detail failure during a page load
// is logged at debug and dropped; the entry renders without data. Any
// failure on the detail view becomes "Pokemon not found".
//
// # Concurrency
//
// Loaders are safe to call from Bubble Tea commands. Each load takes a
// generation from its state store; results from a superseded generation
// are discarded so a slow response never overwrites a newer one.
package app
