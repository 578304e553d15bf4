package share

import (
	"errors"
	"io"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnsupported is returned when no clipboard utility is
// available on this system.
var ErrClipboardUnsupported = errors.New("share: clipboard is not supported on this system")

// Target receives share text. A failed write leaves game state untouched.
type Target interface {
	Write(text string) error
}

// TargetFunc adapts a function to Target.
type TargetFunc func(text string) error

func (f TargetFunc) Write(text string) error { return f(text) }

type clipboardTarget struct{}

// Clipboard returns a Target that copies text to the system clipboard.
func Clipboard() Target { return clipboardTarget{} }

func (clipboardTarget) Write(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}

type writerTarget struct {
	w io.Writer
}

// Writer returns a Target that writes text, newline terminated, to w.
func Writer(w io.Writer) Target { return writerTarget{w: w} }

func (t writerTarget) Write(text string) error {
	_, err := io.WriteString(t.w, text+"\n")
	return err
}
