// Package ui is pokeview's Bubble Tea terminal interface.
//
// # Routes
//
// Two screens exist, modelled as a Route:
//
//   - "/" lists one catalog page: dex number, name, type badges, height,
//     weight and a star for favorites, with a pager underneath
//   - "/pokemon/<id|name>" shows one record rendered by the render package
//     inside a scrollable viewport
//
// # Data Flow
//
// The model never calls the API directly. Page and detail loads run as
// tea.Cmds against the PageLoader and DetailLoader interfaces (implemented
// by internal/app) and come back as pageMsg and detailMsg. Snapshots for a
// page or parameter the user has already left, or older than the one on
// screen, are dropped.
//
// Favorites are loaded once at startup and toggled synchronously with f.
// The outcome is echoed in the footer.
//
// # Files
//
//   - app.go: Model, Update, key dispatch, commands and Run
//   - list.go: list rows, pager and the titled box
//   - detail.go: detail viewport and glamour rendering
//   - header.go: status bar, command bar and footer
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - route.go: Route, Path and ParseRoute
//   - theme.go: color themes and the type badge palette
//   - style_helpers.go, strings.go: rendering helpers
package ui
