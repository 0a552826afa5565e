// Package state holds the mutex-guarded view state shared between the
// loaders in internal/app and the UI.
//
// # Overview
//
// Two stores exist, one per view:
//
//   - PageStore: the list view for one page index (PageSnapshot)
//   - DetailStore: the detail view for one route parameter (DetailSnapshot)
//
// Both move through the same phases: Idle -> Loading -> Ready | Failed.
//
// # Generations
//
// Begin starts a new load, resets the snapshot and returns a generation
// number. Every later write (SetList, Complete, Fail) must present that
// generation; a write carrying an older one is discarded and reports false.
// A slow response for page 1 arriving after the user moved on to page 2
// therefore cannot overwrite page 2's state. In-flight requests are not
// cancelled, only ignored.
//
// # Snapshots
//
// Snapshot returns a copy. Maps and the result slice are cloned so callers
// may hold on to a snapshot while loaders keep writing.
//
// # Pagination
//
// TotalPages(count, perPage) is ceil(count/perPage) and 0 for an empty
// catalog. PageSnapshot.Indicator still renders in that case ("Page 1 of 0").
package state
