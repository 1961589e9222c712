package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"text/template"
)

const tableTemplate = `// Code generated by sdlkey gen; DO NOT EDIT.

package keycode

// Key codes mirrored from SDL_keycode.h.
const (
{{- range .Entries}}
	{{.GoName}} KeyCode = {{.Expr}} // {{.SDLName}}
{{- end}}
)

// TableDigest is the BLAKE2b-256 fingerprint of the SDL constant names and
// values above, in table order.
const TableDigest = "{{.Digest}}"

var table = [...]entry{
{{- range .Entries}}
	{ {{- .GoName}}, "{{.GoName}}", "{{.SDLName}}"},
{{- end}}
}
`

var tableTmpl = template.Must(template.New("table").Parse(tableTemplate))

// Render writes the gofmt'ed Go source of the key code table.
func Render(w io.Writer, entries []Entry) error {
	data := struct {
		Entries []Entry
		Digest  string
	}{
		Entries: entries,
		Digest:  Digest(entries),
	}

	var buf bytes.Buffer
	if err := tableTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
