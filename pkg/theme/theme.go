// Package theme loads named style chains from YAML theme files.
//
// A theme file declares a versioned map of styles. Each style lists
// attribute values and may extend another style; the extending style's
// attributes are concatenated after the parent chain, so they win on
// conflicting fields:
//
//	version: v1.0.0
//	styles:
//	  card:
//	    background: "#FFFFFF"
//	    elevation: 4
//	  card-dimmed:
//	    extends: card
//	    alpha: 0.6
//
// Load returns a Theme whose Style method hands out resolved
// style.Chain values ready to apply to a target.
package theme

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/stylekit/pkg/errors"
	"github.com/go-drift/stylekit/pkg/graphics"
	"github.com/go-drift/stylekit/pkg/style"
)

// supportedMajor is the theme schema major version this loader understands.
const supportedMajor = "v1"

// Document is the top-level structure of a theme file.
type Document struct {
	// Version is the schema version, a semver string like "v1.0.0".
	Version string `yaml:"version"`
	// Styles maps style names to their declarations.
	Styles map[string]Entry `yaml:"styles"`
}

// Entry is one style declaration in a theme file. Absent fields contribute
// no assignment to the chain; pointer fields distinguish "absent" from an
// explicit zero.
type Entry struct {
	// Extends names a style whose chain runs before this entry's
	// assignments.
	Extends string `yaml:"extends,omitempty"`

	// Background is a hex color ("#RRGGBB" or "#AARRGGBB") for a solid
	// background drawable. Mutually exclusive with Gradient.
	Background string `yaml:"background,omitempty"`
	// Gradient declares a two-stop linear gradient background.
	Gradient *GradientEntry `yaml:"gradient,omitempty"`
	// Foreground is a hex color for a solid foreground drawable.
	Foreground string `yaml:"foreground,omitempty"`

	WrapInView bool           `yaml:"wrap_in_view,omitempty"`
	ViewTag    string         `yaml:"view_tag,omitempty"`
	ViewTags   map[string]any `yaml:"view_tags,omitempty"`

	// CornerRadius installs a rounded-rectangle outline provider.
	CornerRadius *float64 `yaml:"corner_radius,omitempty"`

	Alpha     *float64 `yaml:"alpha,omitempty"`
	Elevation *float64 `yaml:"elevation,omitempty"`
}

// GradientEntry declares a linear gradient background in a theme file.
type GradientEntry struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	// Axis is "horizontal" (default) or "vertical".
	Axis string `yaml:"axis,omitempty"`
}

// Theme holds the resolved style chains of one theme file.
type Theme struct {
	// Version is the theme file's schema version.
	Version string

	styles map[string]style.Chain
}

// Load reads and resolves the theme file at path.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("theme.Load", errors.KindTheme,
			&errors.ThemeError{Path: path, Err: err})
	}
	t, err := Parse(data)
	if err != nil {
		if te, ok := err.(*errors.StyleError); ok {
			if inner, ok := te.Err.(*errors.ThemeError); ok {
				inner.Path = path
			}
		}
		return nil, err
	}
	return t, nil
}

// Parse resolves a theme document from raw YAML.
func Parse(data []byte) (*Theme, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.New("theme.Parse", errors.KindParsing,
			&errors.ThemeError{Err: err})
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, errors.New("theme.Parse", errors.KindParsing,
			&errors.ThemeError{Err: err})
	}

	r := &resolver{
		entries: doc.Styles,
		chains:  make(map[string]style.Chain, len(doc.Styles)),
		state:   make(map[string]resolveState, len(doc.Styles)),
	}
	for name := range doc.Styles {
		if _, err := r.resolve(name); err != nil {
			return nil, errors.New("theme.Parse", errors.KindTheme, err)
		}
	}

	return &Theme{Version: doc.Version, styles: r.chains}, nil
}

// Style returns the resolved chain for name. The second result reports
// whether the theme declares that style.
func (t *Theme) Style(name string) (style.Chain, bool) {
	c, ok := t.styles[name]
	return c, ok
}

// Names returns the declared style names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("missing version")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version %q: not a semver string (want e.g. \"v1.0.0\")", v)
	}
	if semver.Major(v) != supportedMajor {
		return fmt.Errorf("unsupported schema version %q: this loader understands %s", v, supportedMajor)
	}
	return nil
}

// resolveState tracks extends resolution per style name.
type resolveState int

const (
	unresolved resolveState = iota
	resolving
	resolved
)

type resolver struct {
	entries map[string]Entry
	chains  map[string]style.Chain
	state   map[string]resolveState
}

// resolve builds the chain for name, resolving its extends parent first.
// Parent chains are shared, not copied: the child chain concatenates its
// own increments after the parent's chain.
func (r *resolver) resolve(name string) (style.Chain, error) {
	switch r.state[name] {
	case resolved:
		return r.chains[name], nil
	case resolving:
		return style.Chain{}, &errors.ThemeError{
			Style: name,
			Err:   fmt.Errorf("extends cycle"),
		}
	}
	r.state[name] = resolving

	entry, ok := r.entries[name]
	if !ok {
		return style.Chain{}, &errors.ThemeError{
			Style: name,
			Err:   fmt.Errorf("style not declared"),
		}
	}

	var base style.Chain
	if entry.Extends != "" {
		parent, err := r.resolve(entry.Extends)
		if err != nil {
			return style.Chain{}, err
		}
		base = parent
	}

	own, err := entry.chain()
	if err != nil {
		return style.Chain{}, &errors.ThemeError{Style: name, Err: err}
	}

	c := base.Concat(own)
	r.chains[name] = c
	r.state[name] = resolved
	return c, nil
}

// chain builds the assignments this entry contributes, not including its
// parent. Assignment order within an entry is fixed; ordering only matters
// across extends levels, where later (child) assignments win.
func (e Entry) chain() (style.Chain, error) {
	var c style.Chain

	if e.Background != "" && e.Gradient != nil {
		return c, fmt.Errorf("background and gradient are mutually exclusive")
	}
	if e.Background != "" {
		color, err := graphics.ParseHex(e.Background)
		if err != nil {
			return c, fmt.Errorf("background: %w", err)
		}
		c = c.Background(graphics.ColorDrawable{Color: color})
	}
	if e.Gradient != nil {
		d, err := e.Gradient.drawable()
		if err != nil {
			return c, fmt.Errorf("gradient: %w", err)
		}
		c = c.Background(d)
	}
	if e.Foreground != "" {
		color, err := graphics.ParseHex(e.Foreground)
		if err != nil {
			return c, fmt.Errorf("foreground: %w", err)
		}
		c = c.Foreground(graphics.ColorDrawable{Color: color})
	}
	if e.WrapInView {
		c = c.WrapInView()
	}
	if e.ViewTag != "" {
		c = c.ViewTag(e.ViewTag)
	}
	if len(e.ViewTags) > 0 {
		c = c.ViewTags(e.ViewTags)
	}
	if e.CornerRadius != nil {
		c = c.OutlineProvider(graphics.RoundedOutline{CornerRadius: *e.CornerRadius})
	}
	if e.Alpha != nil {
		c = c.Alpha(*e.Alpha)
	}
	if e.Elevation != nil {
		c = c.Elevation(*e.Elevation)
	}
	return c, nil
}

func (g GradientEntry) drawable() (graphics.Drawable, error) {
	from, err := graphics.ParseHex(g.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := graphics.ParseHex(g.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	axis := graphics.GradientHorizontal
	switch g.Axis {
	case "", "horizontal":
	case "vertical":
		axis = graphics.GradientVertical
	default:
		return nil, fmt.Errorf("invalid axis %q: want horizontal or vertical", g.Axis)
	}
	return graphics.LinearGradientDrawable{Start: from, End: to, Axis: axis}, nil
}
