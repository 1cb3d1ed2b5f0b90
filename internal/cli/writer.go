package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/alexander-akhmetov/signdeck/internal/event"
)

// ANSI color codes shared with the TUI styles.
const (
	colorGreen   = 42  // success
	colorRed     = 196 // error
	colorDim     = 241 // info, labels
	colorMagenta = 205 // words
)

// Writer prints notifications and rendered markdown. In non-TTY mode it
// prints plain text without ANSI escapes.
type Writer struct {
	out      io.Writer
	isTTY    bool
	width    int
	mu       sync.Mutex
	renderer *glamour.TermRenderer
}

// NewWriter creates a Writer. If width is <= 0, defaults to 80.
func NewWriter(out io.Writer, isTTY bool, width int) *Writer {
	if width <= 0 {
		width = 80
	}

	w := &Writer{
		out:   out,
		isTTY: isTTY,
		width: width,
	}

	if isTTY {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(max(width-6, 40)),
		)
		if err == nil {
			w.renderer = r
		}
	}

	return w
}

// WriteEvent prints a single event on its own line.
func (w *Writer) WriteEvent(ev event.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var line string
	switch ev.Kind {
	case event.KindSuccess:
		line = w.styleBold(colorGreen, "✓ ") + ev.Text
	case event.KindError:
		line = w.styleBold(colorRed, "✗ ") + ev.Text
	case event.KindWord:
		line = w.styleBold(colorMagenta, strings.ToUpper(ev.Text))
	default:
		line = w.style(colorDim, ev.Text)
	}

	fmt.Fprintln(w.out, line)
}

// Markdown renders md with glamour in TTY mode and returns it unchanged
// otherwise.
func (w *Writer) Markdown(md string) string {
	if w.renderer != nil {
		if rendered, err := w.renderer.Render(md); err == nil {
			return rendered
		}
	}
	return md
}

// style wraps text with 256-color foreground in TTY mode, plain in non-TTY.
func (w *Writer) style(color int, text string) string {
	if w.isTTY {
		return fg(color, text)
	}
	return text
}

// styleBold wraps text with 256-color foreground and bold in TTY mode.
func (w *Writer) styleBold(color int, text string) string {
	if w.isTTY {
		return fgBold(color, text)
	}
	return text
}
