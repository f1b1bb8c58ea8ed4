package cmd

import (
	"fmt"

	"github.com/go-drift/stylekit/pkg/styledebug"
	"github.com/go-drift/stylekit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the resolved style chains of a theme file",
		Long: `Load a theme file, resolve every style (including extends
inheritance), and print each style's chain structure.

The tree output shows how a chain was assembled: plain appends print as
leaves, concatenation (from extends) prints as concat/with branches. The
flat listing below each tree is the order assignments are applied in, so
the last line naming a field is the effective value.`,
		Usage: "stylekit dump <theme.yaml>",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dump requires exactly one theme file argument")
	}

	t, err := theme.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Theme version: %s\n", t.Version)
	for _, name := range t.Names() {
		c, _ := t.Style(name)
		fmt.Printf("\n%s (%d assignments)\n", name, c.Len())
		fmt.Print(styledebug.Dump(c))
		fmt.Println("applied order:")
		fmt.Print(indent(styledebug.Flatten(c)))
	}
	return nil
}

func indent(s string) string {
	out := ""
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out += "  " + s[start:i+1]
			start = i + 1
		}
	}
	return out
}
