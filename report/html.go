package report

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/npillmayer/predict/ll"
)

// HTML exports a predictive table in HTML-format. Rows are non-terminals,
// columns are terminals including $. Cells claimed by more than one rule
// show all competing rules and are highlighted.
func HTML(w io.Writer, gen *ll.TableGenerator) error {
	table := gen.Table()
	if table == nil {
		return fmt.Errorf("predictive table for %s not yet created, cannot export to HTML", gen.Grammar().Name)
	}
	conflicts := make(map[[2]*ll.Symbol]*ll.Conflict)
	for _, c := range gen.Conflicts() {
		conflicts[[2]*ll.Symbol{c.N, c.T}] = c
	}
	hw := &htmlWriter{w: w}
	columns := table.Columns()
	hw.write("<html><body>\n")
	hw.write(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(gen.Grammar().Name)))
	hw.write(fmt.Sprintf("predictive table of size = %d<p>", table.Size()))
	hw.write("<table border=1 cellspacing=0 cellpadding=5>\n")
	hw.write("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range columns {
		hw.write(fmt.Sprintf("<td>%s</td>", html.EscapeString(a.Name)))
	}
	hw.write("</tr>\n")
	var td string // table cell
	for _, A := range gen.Grammar().NonTerminals() {
		hw.write(fmt.Sprintf("<tr><td>%s</td>\n", A))
		for _, a := range columns {
			if c, ok := conflicts[[2]*ll.Symbol{A, a}]; ok {
				bodies := make([]string, len(c.Rules))
				for i, r := range c.Rules {
					bodies[i] = html.EscapeString(r.Body())
				}
				td = fmt.Sprintf("<td bgcolor=#ffcccc>%s</td>\n", strings.Join(bodies, " / "))
			} else if r, ok := table.Lookup(A, a.Value); ok {
				td = fmt.Sprintf("<td>%s</td>\n", html.EscapeString(r.Body()))
			} else {
				td = "<td>&nbsp;</td>\n"
			}
			hw.write(td)
		}
		hw.write("</tr>\n")
	}
	hw.write("</table></body></html>\n")
	return hw.err
}

// htmlWriter remembers the first write error and skips subsequent writes.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) write(s string) {
	if hw.err == nil {
		_, hw.err = io.WriteString(hw.w, s)
	}
}
