// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dancezdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
)

// Summary formats the standard one-line run report of spec §6:
// "num nodes <U64>, num solutions <U64>, num updates <U64>, time: <U64> msecs".
func (z *ZDD) Summary(elapsed time.Duration) string {
	return fmt.Sprintf("num nodes %d, num solutions %d, num updates %d, time: %d msecs",
		z.Stats.NumSearchTreeNodes, z.Stats.NumSolutions, z.Stats.NumUpdates, elapsed.Milliseconds())
}

// PrintTable writes a tabwriter-aligned dump of every currently active node,
// one line per node, to stdout. Adapted from the teacher's print_string.
func (z *ZDD) PrintTable() {
	z.printTable(os.Stdout)
}

func (z *ZDD) printTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for i := range z.table {
		n := &z.table[i]
		if !n.active {
			continue
		}
		fmt.Fprintf(tw, "%d\tvar %d\t? %d\t: %d\tcHi %d\tcLo %d\tcUp %d\n",
			i, n.v, n.hi, n.lo, n.countHi, n.countLo, n.countUpper)
	}
	tw.Flush()
}

// PrintDot writes a GraphViz DOT description of every currently active node
// to stdout, with solid edges for HI and dotted edges for LO. Adapted from
// the teacher's print_dot/dotlabel.
func (z *ZDD) PrintDot() {
	z.printDot(bufio.NewWriter(os.Stdout))
}

func (z *ZDD) printDot(w *bufio.Writer) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, `T [shape=box, label="T", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(w, `B [shape=box, label="B", height=0.3, width=0.3];`)
	for i := range z.table {
		n := &z.table[i]
		if !n.active {
			continue
		}
		fmt.Fprintf(w, "%d %s\n", i, dotlabel(i, n.v))
		fmt.Fprintf(w, "%d -> %s [style=dotted];\n", i, dotnode(n.lo))
		fmt.Fprintf(w, "%d -> %s [style=solid];\n", i, dotnode(n.hi))
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}

func dotnode(n int32) string {
	switch n {
	case top:
		return "T"
	case bot:
		return "B"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func dotlabel(id int, v int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, id, v)
}
