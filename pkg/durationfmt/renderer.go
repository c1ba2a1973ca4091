package durationfmt

import (
	"fmt"
	"strings"

	"github.com/sgaunet/durfmt/pkg/buckets"
)

// TextRenderer joins the visible buckets of a chain using the number formats,
// symbols and separators of a Config. It holds no mutable state.
type TextRenderer struct {
	cfg Config
}

// NewTextRenderer creates a renderer for cfg.
func NewTextRenderer(cfg Config) *TextRenderer {
	return &TextRenderer{cfg: cfg.clone()}
}

// Render implements Renderer.
func (r *TextRenderer) Render(c *buckets.Chain) string {
	var sb strings.Builder
	first := true
	for b := range c.All() {
		if !b.Visible() {
			continue
		}
		if !first {
			sb.WriteString(r.cfg.Separator)
		}
		first = false
		r.writeBucket(&sb, b)
	}
	return sb.String()
}

func (r *TextRenderer) writeBucket(sb *strings.Builder, b *buckets.Bucket) {
	fmt.Fprintf(sb, r.cfg.FormatFor(b.Unit()), b.Value())
	symbol, ok := r.cfg.Symbols[b.Unit()]
	if !ok {
		return
	}
	if text := symbol.For(b.Value()); text != "" {
		sb.WriteString(r.cfg.ValueSymbolSeparator)
		sb.WriteString(text)
	}
}
