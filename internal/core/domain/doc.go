// Package domain holds the types every other package shares: the
// Repository record, the page query sent to the search API, the feed
// snapshot and fetch outcome handed to the views, and user settings.
//
// It imports nothing outside the standard library, and nothing in
// internal/ is imported by it.
package domain
