// Package config loads pokeview's settings.
//
// # Resolution Order
//
// Load layers three sources with viper, later ones winning:
//
//  1. Built-in defaults
//  2. The TOML file at the given path, or ~/.config/pokeview/config.toml
//  3. POKEVIEW_* environment variables (POKEVIEW_CATALOG_PAGE_SIZE and so on)
//
// The API base URL may also be set with POKEVIEW_BASE_API_URL. A missing
// config file is not an error.
//
// # TOML Format
//
//	[api]
//	base_url = "https://pokeapi.co/api/v2"
//	timeout = "10s"
//
//	[catalog]
//	page_size = 20
//
//	[storage]
//	backend = "file"   # file, redis, sqlite or memory
//	path = "~/.local/share/pokeview/storage.toml"
//	redis_addr = "127.0.0.1:6379"
//	redis_db = 0
//
//	[log]
//	level = "info"
//	file = "~/.local/share/pokeview/pokeview.log"
//
// # Fallbacks
//
// An unusable base URL or a non-positive page size is replaced by its
// default and a message is appended to Config.Warnings. Callers log those
// once logging is up.
package config
