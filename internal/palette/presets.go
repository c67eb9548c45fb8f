package palette

import (
	"fmt"
	"sort"
)

// Martens is a bold modernist set after Karel Martens' prints.
var Martens = MustParse("martens",
	"#E63946", // red
	"#F1C40F", // yellow
	"#3498DB", // blue
	"#2ECC71", // green
	"#9B59B6", // purple
	"#E67E22", // orange
	"#1ABC9C", // turquoise
	"#34495E", // dark grey
)

// Nocturne is a muted blue-grey night set.
var Nocturne = MustParse("nocturne",
	"#0d1b2a",
	"#1b263b",
	"#415a77",
	"#778da9",
	"#e0e1dd",
)

var presets = map[string]Palette{
	Martens.Name():  Martens,
	Nocturne.Name(): Nocturne,
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Palette, error) {
	p, ok := presets[name]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}

// Names lists the presets in lexical order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
