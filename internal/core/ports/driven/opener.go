package driven

// URLOpener opens a web URL in the user's browser.
type URLOpener interface {
	OpenURL(url string) error
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
