package table

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/dslib/list"
)

var keyColor = color.New(color.FgCyan, color.Bold)

// Fprint writes the entries of t to w, one per line, in insertion order
// (for debugging purposes). Keys are colored if w is a terminal.
func (t *Table[V]) Fprint(w io.Writer) {
	kc := keyColor
	if !list.IsTerminal(w) {
		plain := *keyColor
		plain.DisableColor()
		kc = &plain
	}
	fmt.Fprintf(w, "table size=%d\n", t.Size())
	i := 0
	for k, v := range t.All() {
		fmt.Fprintf(w, "%3d ", i)
		kc.Fprintf(w, "%s", k)
		fmt.Fprintf(w, ": %v\n", v)
		i++
	}
}
