package driven

// ConfigStore keeps raw setting values under dot-separated keys such as
// "feed.page_size". Interpreting and validating values is left to the
// settings service.
type ConfigStore interface {
	// Lookup returns the stored value for key.
	Lookup(key string) (any, bool)

	// Put stores every entry of values and persists them together.
	// Either all entries are persisted or an error is returned.
	Put(values map[string]any) error

	// Location describes where values are kept, e.g. a file path.
	Location() string
}
