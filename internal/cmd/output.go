package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mgutz/ansi"
	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// Output selects how rows are printed.
type Output struct {
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" short:"f" env:"SDLKEY_FORMAT"`
	Color  string `help:"Colorize text output" enum:"auto,always,never" default:"auto" env:"SDLKEY_COLOR"`
}

type rowDoc struct {
	Keys []Row `json:"keys" yaml:"keys" toml:"keys"`
}

func (o Output) colorize(w io.Writer) bool {
	switch o.Color {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (o Output) write(w io.Writer, rows []Row) error {
	doc := rowDoc{Keys: rows}
	switch o.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	}

	name, value := fmt.Sprint, fmt.Sprint
	if o.colorize(w) {
		name = func(a ...any) string { return ansi.Color(fmt.Sprint(a...), "cyan+b") }
		value = func(a ...any) string { return ansi.Color(fmt.Sprint(a...), "yellow") }
	}
	for _, r := range rows {
		extra := ""
		if r.Scancode != 0 {
			extra += fmt.Sprintf("  scancode=%d", r.Scancode)
		}
		if r.Usage != "" {
			extra += "  hid=" + r.Usage
		}
		if _, err := fmt.Fprintf(w, "%s %-22s %s%s\n",
			name(fmt.Sprintf("%-20s", r.Name)), r.SDLName, value(fmt.Sprintf("%-10d %s", r.Value, r.Hex)), extra); err != nil {
			return err
		}
	}
	return nil
}
