package deque

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DumpConfig controls the console output of Dump.
type DumpConfig struct {
	LineWidth int  // maximum width of a line in characters
	NoColor   bool // suppress escape sequences
}

// DumpConfigFromTerminal is a simple helper for creating a DumpConfig.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the LineWidth parameter accordingly.
func DumpConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{LineWidth: 80}
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil && w > 20 {
			config.LineWidth = w
		}
	} else {
		config.NoColor = true
	}
	tracer().Infof("deque dump: setting line width to %d", config.LineWidth)
	return config
}

// Dump writes an overview of the block structure to w: one bar per block,
// with its length proportional to the block's size relative to 2B. Blocks
// close to a split are colored red, blocks close to a merge yellow.
//
// If config is nil, DumpConfigFromTerminal is used.
func (d *Deque[T]) Dump(w io.Writer, config *DumpConfig) {
	if config == nil {
		config = DumpConfigFromTerminal()
	}
	d.lazy()
	limit := d.cfg.splitAt()
	barWidth := config.LineWidth - 24
	if barWidth < 10 {
		barWidth = 10
	}
	palette := map[string]*color.Color{
		"low":  color.New(color.FgYellow),
		"ok":   color.New(color.FgGreen),
		"high": color.New(color.FgRed),
		"end":  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range palette {
		if config.NoColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	sizes := d.BlockSizes()
	fmt.Fprintf(w, "deque: %d elements in %d blocks, B=%d\n", d.Len(), len(sizes), d.cfg.BlockCapacity)
	for i, size := range sizes {
		n := size * barWidth / limit
		if n == 0 && size > 0 {
			n = 1
		}
		bar := strings.Repeat("█", n)
		var c *color.Color
		switch {
		case size > 3*limit/4:
			c = palette["high"]
		case size <= d.cfg.BlockCapacity:
			c = palette["low"]
		default:
			c = palette["ok"]
		}
		fmt.Fprintf(w, "%5d %6d ", i, size)
		c.Fprint(w, bar)
		if i == len(sizes)-1 {
			palette["end"].Fprint(w, " ⊣")
		}
		fmt.Fprintln(w)
	}
}
