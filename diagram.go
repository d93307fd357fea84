package qcircuit

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const wireLead = "───"

// cells measures glyphs in terminal cells. Every glyph the diagram draws is
// one cell wide, whatever the locale says about ambiguous-width runes.
var cells = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cond
}()

/*
Render draws the circuit as a text diagram, one horizontal wire per qubit
that any operation touches, in qubit order. Operations are packed into
columns (moments): each operation goes into the first column after every
column already used on the wires it spans. A two-qubit operation spans the
wires between its endpoints too, so its connector never runs through
another gate.

Render only reads the circuit. An empty circuit renders as "".
*/
func Render(c *Circuit) string {
	if c == nil {
		return ""
	}

	ops := c.Operations()
	if len(ops) == 0 {
		return ""
	}

	qubits := touchedQubits(ops)
	rows := make(map[GridQubit]int, len(qubits))
	for i, q := range qubits {
		rows[q] = i
	}

	columns := [][]string{labelColumn(qubits)}
	for _, moment := range layoutMoments(ops, rows) {
		columns = append(columns, momentColumn(moment, rows, len(qubits)))
	}
	columns = append(columns, tailColumn(len(qubits)))

	lines := make([]string, lineCount(len(qubits)))
	for i := range lines {
		var b strings.Builder
		for _, column := range columns {
			b.WriteString(column[i])
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}

	return strings.Join(lines, "\n")
}

// span returns the lowest and highest wire an operation covers.
func span(op Operation, rows map[GridQubit]int) (lo, hi int) {
	qs := op.Qubits()
	lo, hi = rows[qs[0]], rows[qs[0]]
	for _, q := range qs[1:] {
		lo = min(lo, rows[q])
		hi = max(hi, rows[q])
	}
	return lo, hi
}

func layoutMoments(ops []Operation, rows map[GridQubit]int) [][]Operation {
	last := make([]int, len(rows))
	for i := range last {
		last[i] = -1
	}

	var moments [][]Operation
	for _, op := range ops {
		lo, hi := span(op, rows)

		m := 0
		for r := lo; r <= hi; r++ {
			m = max(m, last[r]+1)
		}
		for r := lo; r <= hi; r++ {
			last[r] = m
		}

		for len(moments) <= m {
			moments = append(moments, nil)
		}
		moments[m] = append(moments[m], op)
	}

	return moments
}

// Wire i is drawn on line 2i; the line below it carries connectors.
func lineCount(wires int) int {
	return 2*wires - 1
}

func labelColumn(qubits []GridQubit) []string {
	labels := make([]string, len(qubits))
	width := 0
	for i, q := range qubits {
		labels[i] = q.String() + ": "
		width = max(width, cells.StringWidth(labels[i]))
	}

	lines := make([]string, lineCount(len(qubits)))
	for i := range lines {
		if i%2 == 0 {
			lines[i] = padRight(labels[i/2], " ", width)
		} else {
			lines[i] = strings.Repeat(" ", width)
		}
	}

	return lines
}

func momentColumn(moment []Operation, rows map[GridQubit]int, wires int) []string {
	width := 1
	for _, op := range moment {
		for _, sym := range op.symbols() {
			width = max(width, cells.StringWidth(sym))
		}
	}

	cell := func(glyph, fill string) string {
		return padRight(glyph, fill, width)
	}

	lines := make([]string, lineCount(wires))
	for i := range lines {
		if i%2 == 0 {
			lines[i] = wireLead + cell("", "─")
		} else {
			lines[i] = "   " + cell("", " ")
		}
	}

	for _, op := range moment {
		qs := op.Qubits()
		syms := op.symbols()
		for i, q := range qs {
			lines[2*rows[q]] = wireLead + cell(syms[i], "─")
		}

		if len(qs) < 2 {
			continue
		}

		lo, hi := span(op, rows)
		for r := lo + 1; r < hi; r++ {
			lines[2*r] = wireLead + cell("┼", "─")
		}
		for l := 2*lo + 1; l < 2*hi; l += 2 {
			lines[l] = "   " + cell("│", " ")
		}
	}

	return lines
}

func tailColumn(wires int) []string {
	lines := make([]string, lineCount(wires))
	for i := range lines {
		if i%2 == 0 {
			lines[i] = wireLead
		} else {
			lines[i] = "   "
		}
	}
	return lines
}

func padRight(s, fill string, width int) string {
	if gap := width - cells.StringWidth(s); gap > 0 {
		return s + strings.Repeat(fill, gap)
	}
	return s
}
