package formatter

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/baum"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // clip lines to this many display cells; 0 means no clipping
	Colors    bool           // use colors
	Context   *uax11.Context // context for measuring display widths; nil means Latin
}

// Palette holds the colors for the parts of a rendered line. Nil entries are
// printed without color.
type Palette struct {
	Connector *color.Color
	Index     *color.Color
	Root      *color.Color
	Inner     *color.Color
	Leaf      *color.Color
	Content   *color.Color
}

// DefaultPalette returns the palette used if clients do not provide one.
func DefaultPalette() *Palette {
	return &Palette{
		Connector: color.New(color.FgHiBlack),
		Index:     color.New(color.FgYellow),
		Root:      color.New(color.FgRed, color.Bold),
		Inner:     color.New(color.FgBlue),
		Leaf:      color.New(color.FgGreen),
		Content:   nil,
	}
}

// Console is a formatter for consoles with a fixed width font.
type Console struct {
	palette *Palette
}

// NewConsole creates a new console formatter. If palette is nil, DefaultPalette
// is used.
func NewConsole(palette *Palette) *Console {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Console{palette: palette}
}

// clipMark is appended to clipped lines.
const clipMark = "…"

var setupGraphemes sync.Once

// Print outputs a tree to stdout, using the default console formatter.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties.
func Print[T comparable](tree *baum.ArrayTree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(tree, os.Stdout, config, NewConsole(nil))
}

// Output renders tree to out, one line per node.
//
// Neither of the arguments may be nil. However, it is safe to have
// config.Context set to nil. In this case, uax11.LatinContext is used.
func Output[T comparable](tree *baum.ArrayTree[T], out io.Writer, config *Config, console *Console) error {
	if tree == nil || out == nil || config == nil || console == nil {
		return errors.New("illegal argument: nil")
	}
	ctx := config.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return tree.Layout(func(l baum.Line) error {
		return console.line(l, out, config, ctx)
	})
}

type part struct {
	text string
	c    *color.Color
}

func (console *Console) line(l baum.Line, w io.Writer, config *Config, ctx *uax11.Context) error {
	parts := make([]part, 0, 5)
	parts = append(parts, part{l.Prefix, console.palette.Connector})
	if l.Index >= 0 {
		parts = append(parts, part{fmt.Sprintf("[%d] ", l.Index), console.palette.Index})
	}
	parts = append(parts, part{l.Kind.String(), console.kindColor(l.Kind)})
	parts = append(parts, part{" " + l.ContentText(), console.palette.Content})
	if config.LineWidth > 0 {
		parts = clip(parts, config.LineWidth, ctx)
	}
	for _, p := range parts {
		var err error
		if config.Colors && p.c != nil {
			_, err = p.c.Fprint(w, p.text)
		} else {
			_, err = io.WriteString(w, p.text)
		}
		if err != nil {
			T().Errorf("console output: %s", err.Error())
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (console *Console) kindColor(k baum.NodeKind) *color.Color {
	switch k {
	case baum.RootNode:
		return console.palette.Root
	case baum.InnerNode:
		return console.palette.Inner
	}
	return console.palette.Leaf
}

// width returns the number of display cells s occupies.
func width(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

// clip shortens a sequence of parts to at most linewidth display cells,
// marking a clipped line with clipMark. Grapheme clusters are never split.
func clip(parts []part, linewidth int, ctx *uax11.Context) []part {
	total := 0
	for _, p := range parts {
		total += width(p.text, ctx)
	}
	if total <= linewidth {
		return parts
	}
	budget := linewidth - width(clipMark, ctx)
	clipped := make([]part, 0, len(parts))
	for _, p := range parts {
		if p.text == "" {
			continue
		}
		gstr := grapheme.StringFromString(p.text)
		var b strings.Builder
		full := true
		for i := 0; i < gstr.Len(); i++ {
			g := gstr.Nth(i)
			gw := width(g, ctx)
			if gw > budget {
				full = false
				break
			}
			b.WriteString(g)
			budget -= gw
		}
		if !full {
			clipped = append(clipped, part{b.String() + clipMark, p.c})
			return clipped
		}
		clipped = append(clipped, part{b.String(), p.c})
	}
	return clipped
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = 80
		} else if w > 10 {
			config.LineWidth = w - 1
		} else {
			config.LineWidth = 10
		}
	}
	T().P("format", "console").Infof("setting line length to %d", config.LineWidth)
	return config
}
