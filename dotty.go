package deque

import (
	"fmt"
	"io"

	"github.com/npillmayer/deque/arena"
)

// Deque2Dot outputs the internal structure of a deque in Graphviz DOT format
// (for debugging purposes).
//
// Every block is drawn as a box labeled with its size; up to maxItems elements
// per block are listed, formatted with %v. Blocks are filled with a color
// reflecting their occupancy relative to the split threshold 2B.
func Deque2Dot[T any](d *Deque[T], w io.Writer, maxItems int) error {
	if d == nil {
		return ErrIllegalArguments
	}
	d.lazy()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	c := &d.ch
	prev := arena.Nil
	for b := c.head; !b.IsNil(); b = c.block(b).succ {
		blk := c.block(b)
		label := fmt.Sprintf("#%d  size=%d\\n%s", b, blk.size, d.blockLabel(b, maxItems))
		nodelist += fmt.Sprintf("\t\"b%d\" [label=\"%s\" %s];\n", b, label,
			blockDotStyles(blk.size, d.cfg.splitAt(), b == c.tail))
		if !prev.IsNil() {
			edgelist += fmt.Sprintf("\t\"b%d\" -> \"b%d\" [dir=both];\n", prev, b)
		}
		prev = b
	}
	if _, err := io.WriteString(w, nodelist); err != nil {
		tracer().Errorf("deque DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

// blockLabel lists the first maxItems elements of block b, marking the
// sentinel by ⊣.
func (d *Deque[T]) blockLabel(b arena.Handle, maxItems int) string {
	s := ""
	cnt := 0
	for n := d.ch.block(b).head; !n.IsNil(); n = d.ch.node(n).succ {
		nd := d.ch.node(n)
		if !nd.filled {
			s += " ⊣"
			break
		}
		if cnt == maxItems {
			s += " …"
			break
		}
		s += fmt.Sprintf(" %v", nd.value)
		cnt++
	}
	return s
}

func blockDotStyles(size, limit int, isTail bool) string {
	s := ",style=filled,shape=box"
	i := size * (len(hexcolors) - 1) / limit
	if i >= len(hexcolors) {
		i = len(hexcolors) - 1
	}
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[i])
	if isTail {
		s += ",penwidth=2"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
