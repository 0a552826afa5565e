// Package pokeapi provides an HTTP client for the public PokeAPI catalog.
//
// # Overview
//
// The viewer needs exactly two read operations:
//
//   - GET {base}/pokemon?limit=N&offset=M: one page of {name, url} references
//   - GET {base}/pokemon/{idOrName}: the full record for one pokemon
//
// Both are exposed through the Fetcher interface, implemented by *Client.
// Responses are decoded into the structs in types.go, which mirror only the
// fields the viewer renders.
//
// # Request Handling
//
// Every call issues a single request with Accept: application/json and
// User-Agent: pokeview/0.1. There is no retry, no cache and no
// de-duplication of identical in-flight requests. A timeout is applied only
// when Options.Timeout is set.
//
// # Error Handling
//
// All failures are returned as *FetchError:
//
//   - KindTransport: the request never produced a response
//   - KindHTTP: the API answered with a non-2xx status (Status is set)
//   - KindDecode: the body was not the expected JSON document
//
// Target carries the requested identifier (or "pokemon list") so messages
// read like "fetch pikachu: api returned status 404". Use IsNotFound and
// KindOf instead of matching on strings.
//
// # Testing
//
// The mock subpackage holds a gomock implementation of Fetcher. Client tests
// run against httptest servers.
package pokeapi
