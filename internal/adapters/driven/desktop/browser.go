package desktop

import (
	"io"

	"github.com/pkg/browser"

	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
)

// Ensure Browser implements the interface.
var _ driven.URLOpener = (*Browser)(nil)

// Browser opens URLs with the platform's default browser.
type Browser struct {
	open func(url string) error
}

// NewBrowser creates a browser opener. The launched process's output is
// discarded so it cannot draw over a running TUI.
func NewBrowser() *Browser {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{open: browser.OpenURL}
}

// OpenURL opens url in the default browser.
func (b *Browser) OpenURL(url string) error {
	return b.open(url)
}
