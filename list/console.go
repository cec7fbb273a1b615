package list

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors used by Fprint.
type Palette struct {
	Head     *color.Color // head element
	Occupied *color.Color // other elements
	Stale    *color.Color // unused array slots
}

// DefaultPalette is used by Fprint.
var DefaultPalette = Palette{
	Head:     color.New(color.FgRed, color.Bold),
	Occupied: color.New(color.FgBlue),
	Stale:    color.New(color.FgHiBlack),
}

// Fprint writes a one-line picture of a list to w (for debugging purposes).
//
// Array lists show every slot, including unused ones, so the position of the
// window inside the ring is visible. Colors are used only if w is a terminal.
func Fprint[T any](l List[T], w io.Writer) {
	p := paletteFor(w)
	switch list := l.(type) {
	case *Array[T]:
		fmt.Fprintf(w, "array size=%d cap=%d first=%d last=%d [", list.size, len(list.elements), list.first, list.last)
		for slot := range list.elements {
			if slot > 0 {
				io.WriteString(w, " ")
			}
			i := (slot - list.first + len(list.elements)) % len(list.elements)
			switch {
			case i >= list.size:
				p.Stale.Fprint(w, "·")
			case i == 0:
				p.Head.Fprintf(w, "%v", list.elements[slot])
			default:
				p.Occupied.Fprintf(w, "%v", list.elements[slot])
			}
		}
		io.WriteString(w, "]\n")
	case *Linked[T]:
		fmt.Fprintf(w, "linked size=%d ", list.size)
		for n := list.first; n != nil; n = n.next {
			if n == list.first {
				p.Head.Fprintf(w, "%v", n.data)
			} else {
				p.Occupied.Fprintf(w, "%v", n.data)
			}
			io.WriteString(w, " -> ")
		}
		io.WriteString(w, "nil\n")
	default:
		tracer().Errorf("list print: unknown list type %T", l)
	}
}

// paletteFor returns DefaultPalette, or a colorless copy of it if w is not
// a terminal.
func paletteFor(w io.Writer) Palette {
	if IsTerminal(w) {
		return DefaultPalette
	}
	return Palette{
		Head:     plain(DefaultPalette.Head),
		Occupied: plain(DefaultPalette.Occupied),
		Stale:    plain(DefaultPalette.Stale),
	}
}

func plain(c *color.Color) *color.Color {
	cc := *c
	cc.DisableColor()
	return &cc
}

// IsTerminal reports whether w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
