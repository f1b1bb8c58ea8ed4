package cmd

import (
	"fmt"

	"github.com/go-drift/stylekit/pkg/errors"
	"github.com/go-drift/stylekit/pkg/style"
	"github.com/go-drift/stylekit/pkg/styletest"
	"github.com/go-drift/stylekit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "lint",
		Short: "Validate a theme file",
		Long: `Parse a theme file, resolve every style it declares, and apply each
resolved chain to a scratch target.

Reports schema version mismatches, malformed attribute values, unknown
extends targets, extends cycles, and chains that fail to apply.`,
		Usage: "stylekit lint <theme.yaml>",
		Run:   runLint,
	})
}

func runLint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("lint requires exactly one theme file argument")
	}

	t, err := theme.Load(args[0])
	if err != nil {
		return err
	}

	for _, name := range t.Names() {
		c, _ := t.Style(name)
		if err := applyStyle(name, c); err != nil {
			return err
		}
	}

	fmt.Printf("%s: OK (%d styles, schema %s)\n", args[0], len(t.Names()), t.Version)
	return nil
}

// applyStyle replays the chain against a scratch target. A chain that
// panics with a FieldError is surfaced as a structured apply error so the
// lint run fails with a diagnosable message instead of a crash.
func applyStyle(name string, c style.Chain) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(*errors.FieldError)
			if !ok {
				panic(r)
			}
			err = errors.Newf("lint.Apply", errors.KindApply, "style %q: %w", name, fe)
		}
	}()
	c.ApplyTo(&styletest.RecordingTarget{})
	return nil
}
