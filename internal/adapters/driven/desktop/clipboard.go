package desktop

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/custodia-labs/ghtrend/internal/core/ports/driven"
)

// Ensure Clipboard implements the interface.
var _ driven.Clipboard = (*Clipboard)(nil)

// ErrClipboardUnsupported is returned when no clipboard utility is available
// (on Linux, xclip, xsel or wl-copy must be installed).
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// Clipboard writes to the system clipboard.
type Clipboard struct {
	unsupported bool
	write       func(text string) error
}

// NewClipboard creates a clipboard adapter.
func NewClipboard() *Clipboard {
	return &Clipboard{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// WriteAll replaces the clipboard contents with text.
func (c *Clipboard) WriteAll(text string) error {
	if c.unsupported {
		return ErrClipboardUnsupported
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
