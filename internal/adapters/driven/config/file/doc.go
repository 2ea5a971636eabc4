// Package file provides file-based implementations of driven port interfaces.
//
// ConfigStore keeps settings in a TOML file inside the ghtrend config
// directory. Nested tables are exposed as dot-notation keys, so
//
//	[feed]
//	page_size = 50
//
// is read back as "feed.page_size".
package file
