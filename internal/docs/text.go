package docs

import (
	"bufio"
	"io"
	"strings"
)

// WriteText prints the module as `module Name` followed by one line per
// documented entry: unions, then aliases, then values.
func (m *Module) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("module ")
	bw.WriteString(m.Name)
	bw.WriteString("\n")

	for _, u := range m.Unions {
		bw.WriteString(header("type ", u.Name, u.Params))
		for i, c := range u.Cases {
			if i == 0 {
				bw.WriteString(" = ")
			} else {
				bw.WriteString(" | ")
			}
			bw.WriteString(c.Text)
		}
		bw.WriteString("\n")
	}
	for _, a := range m.Aliases {
		bw.WriteString(header("type alias ", a.Name, a.Params))
		bw.WriteString(" = ")
		bw.WriteString(a.Type)
		bw.WriteString("\n")
	}
	for _, v := range m.Values {
		bw.WriteString(v.Name)
		bw.WriteString(" : ")
		bw.WriteString(v.Type)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func header(keyword, name string, params []string) string {
	var sb strings.Builder
	sb.WriteString(keyword)
	sb.WriteString(name)
	for _, p := range params {
		sb.WriteString(" ")
		sb.WriteString(p)
	}
	return sb.String()
}
