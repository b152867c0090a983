package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/henderiw/sortviz/pkg/sequence"
)

const (
	barCell   = "█"
	emptyCell = " "
	clearHome = "\x1b[H\x1b[2J"
)

// Bars draws a sequence as vertical bars on a terminal grid of
// width x height cells surrounded by border blank cells. The first touched
// index is drawn red, the second cyan, every other bar white.
type Bars struct {
	out    io.Writer
	width  int
	height int
	border int
	clear  bool

	first  *color.Color
	second *color.Color
	plain  *color.Color
}

type Option func(*Bars)

// WithClear homes the cursor and clears the screen before every frame.
func WithClear(clear bool) Option {
	return func(r *Bars) { r.clear = clear }
}

// WithColor forces colors on or off, regardless of the terminal.
func WithColor(enabled bool) Option {
	return func(r *Bars) {
		for _, c := range []*color.Color{r.first, r.second, r.plain} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

func New(out io.Writer, width, height, border int, opts ...Option) *Bars {
	r := &Bars{
		out:    out,
		width:  width,
		height: height,
		border: border,
		first:  color.New(color.FgRed),
		second: color.New(color.FgCyan),
		plain:  color.New(color.FgWhite),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// column maps a grid column to the sequence index it shows, like the bar
// width delta of a pixel renderer: every element gets width/len columns.
func (r *Bars) column(c, n int) int {
	return c * n / r.width
}

// barHeight scales v against max into [0, height] cells, rounding up.
func (r *Bars) barHeight(v, max int) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	return (v*r.height + max - 1) / max
}

func (r *Bars) colorFor(i, a, b int) *color.Color {
	switch i {
	case a:
		return r.first
	case b:
		return r.second
	}
	return r.plain
}

// Render writes one frame for seq with a and b highlighted.
func (r *Bars) Render(seq sequence.Sequence, a, b int) error {
	n := len(seq)
	max := 0
	for _, v := range seq {
		if v > max {
			max = v
		}
	}

	heights := make([]int, r.width)
	owners := make([]int, r.width)
	for c := 0; c < r.width && n > 0; c++ {
		i := r.column(c, n)
		owners[c] = i
		heights[c] = r.barHeight(seq[i], max)
	}

	w := bufio.NewWriter(r.out)
	if r.clear {
		w.WriteString(clearHome)
	}
	pad := strings.Repeat(emptyCell, r.border)
	for i := 0; i < r.border; i++ {
		w.WriteString("\n")
	}
	for row := r.height; row >= 1; row-- {
		w.WriteString(pad)
		for c := 0; c < r.width; c++ {
			if heights[c] >= row {
				w.WriteString(r.colorFor(owners[c], a, b).Sprint(barCell))
				continue
			}
			w.WriteString(emptyCell)
		}
		w.WriteString(pad)
		w.WriteString("\n")
	}
	for i := 0; i < r.border; i++ {
		w.WriteString("\n")
	}
	return w.Flush()
}

// Status writes a one line summary below a frame.
func (r *Bars) Status(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.out, strings.Repeat(emptyCell, r.border)+format+"\n", args...)
	return err
}
