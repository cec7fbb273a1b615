package list

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the internal structure of a list in Graphviz DOT format
// (for debugging purposes).
//
// Array lists are drawn as a row of slots with markers for the head and the
// next free slot; linked lists as a chain of nodes.
func ToDot[T any](l List[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	switch list := l.(type) {
	case *Array[T]:
		arrayDot(list, w)
	case *Linked[T]:
		linkedDot(list, w)
	default:
		tracer().Errorf("list DOT: unknown list type %T", l)
	}
	io.WriteString(w, "}\n")
}

func arrayDot[T any](l *Array[T], w io.Writer) {
	if len(l.elements) == 0 {
		fmt.Fprintf(w, "\"slots\" %s;\n", emptyNode())
		return
	}
	fields := make([]string, len(l.elements))
	for i := range l.elements {
		fields[i] = fmt.Sprintf("<s%d> ·", i)
	}
	for i := 0; i < l.size; i++ {
		p := l.physical(i)
		fields[p] = fmt.Sprintf("<s%d> %s", p, dotLabel(l.elements[p]))
	}
	fmt.Fprintf(w, "\"slots\" [shape=record,style=filled,fillcolor=\"#a3d7e4\",label=\"%s\"];\n",
		strings.Join(fields, "|"))
	fmt.Fprintf(w, "\"first\" [shape=plaintext,label=\"first=%d\"];\n", l.first)
	fmt.Fprintf(w, "\"last\" [shape=plaintext,label=\"last=%d\"];\n", l.last)
	fmt.Fprintf(w, "\"first\" -> \"slots\":s%d;\n", l.first)
	fmt.Fprintf(w, "\"last\" -> \"slots\":s%d;\n", l.last)
}

func linkedDot[T any](l *Linked[T], w io.Writer) {
	nodelist, edgelist := "", ""
	id := 1
	for n := l.first; n != nil; n = n.next {
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,shape=box];\n", id, dotLabel(n.data))
		if n.next != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, id+1)
		} else {
			nodelist += fmt.Sprintf("\"nil\" %s;\n", emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"nil\";\n", id)
		}
		id++
	}
	if l.first == nil {
		nodelist += fmt.Sprintf("\"nil\" %s;\n", emptyNode())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`)

func dotLabel(e any) string {
	return dotEscaper.Replace(fmt.Sprintf("%v", e))
}
