package conf

import "strings"

// Render serializes a directive tree into canonical textual form: one
// directive per line, nested blocks indented by one tab per level. The
// original whitespace layout and comments are not reproduced, only the
// tree's names, arguments, order and block structure. Re-parsing the result
// yields a tree structurally equal to the input.
func Render(block Block) string {
	var buf strings.Builder
	renderBlock(&buf, block, 0)

	return buf.String()
}

func renderBlock(buf *strings.Builder, block Block, depth int) {
	for _, d := range block {
		indent(buf, depth)
		buf.WriteString(d.Name)

		for _, arg := range d.Args {
			buf.WriteByte(' ')
			buf.WriteString(arg)
		}

		if d.HasBlock() {
			buf.WriteString(" {\n")
			renderBlock(buf, d.Block, depth+1)
			indent(buf, depth)
			buf.WriteString("}\n")
		} else {
			buf.WriteString(";\n")
		}
	}
}

func indent(buf *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
}
