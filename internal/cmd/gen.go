package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/keybind/sdlkey/internal/codegen/generator"
)

// Gen regenerates keycode_table.go from the SDL headers.
type Gen struct {
	Headers `embed:""`
	Out     string `help:"Destination file" default:"keycode/keycode_table.go" type:"path" env:"SDLKEY_GEN_OUT"`
}

// Run is called by Kong when the gen command is executed.
func (g *Gen) Run(logger *slog.Logger) error {
	logger.Info("Generating key code table", "header", g.Header, "out", g.Out)

	c, err := g.Parse()
	if err != nil {
		return err
	}
	entries, err := generator.New(logger).Entries(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := generator.Render(&buf, entries); err != nil {
		return err
	}
	if err := os.WriteFile(g.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", g.Out, err)
	}

	logger.Info("Key code table written", "entries", len(entries), "digest", generator.Digest(entries))
	return nil
}
