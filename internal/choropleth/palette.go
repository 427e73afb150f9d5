// Package choropleth holds the color palettes and value classification
// used to style the book's classed maps.
package choropleth

import (
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Palette kinds.
const (
	KindSequential  = "sequential"
	KindDiverging   = "diverging"
	KindQualitative = "qualitative"
)

// builtins maps palette name to hex ramps keyed by class count.
// Sequential and diverging ramps follow the ColorBrewer specimens used
// throughout the book's figures.
var builtins = map[string]map[int][]string{
	"Blues": {
		3: {"#deebf7", "#9ecae1", "#3182bd"},
		5: {"#eff3ff", "#bdd7e7", "#6baed6", "#3182bd", "#08519c"},
		7: {"#eff3ff", "#c6dbef", "#9ecae1", "#6baed6", "#4292c6", "#2171b5", "#084594"},
	},
	"Greens": {
		3: {"#e5f5e0", "#a1d99b", "#31a354"},
		5: {"#edf8e9", "#bae4b3", "#74c476", "#31a354", "#006d2c"},
		7: {"#edf8e9", "#c7e9c0", "#a1d99b", "#74c476", "#41ab5d", "#238b45", "#005a32"},
	},
	"OrRd": {
		3: {"#fee8c8", "#fdbb84", "#e34a33"},
		5: {"#fef0d9", "#fdcc8a", "#fc8d59", "#e34a33", "#b30000"},
		7: {"#fef0d9", "#fdd49e", "#fdbb84", "#fc8d59", "#ef6548", "#d7301f", "#990000"},
	},
	"RdBu": {
		3: {"#ef8a62", "#f7f7f7", "#67a9cf"},
		5: {"#ca0020", "#f4a582", "#f7f7f7", "#92c5de", "#0571b0"},
		7: {"#b2182b", "#ef8a62", "#fddbc7", "#f7f7f7", "#d1e5f0", "#67a9cf", "#2166ac"},
	},
	"Set2": {
		3: {"#66c2a5", "#fc8d62", "#8da0cb"},
		5: {"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854"},
		7: {"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3", "#a6d854", "#ffd92f", "#e5c494"},
	},
}

// custom holds palettes loaded at runtime; they shadow builtins.
var custom = map[string]map[int][]string{}

// Palette returns k hex colors for the named palette. Unknown names and
// unsupported class counts are errors.
func Palette(name string, k int) ([]string, error) {
	ramps, ok := custom[name]
	if !ok {
		ramps, ok = builtins[name]
	}
	if !ok {
		return nil, eris.Errorf("choropleth: unknown palette %q", name)
	}
	colors, ok := ramps[k]
	if !ok {
		return nil, eris.Errorf("choropleth: palette %q has no %d-class ramp", name, k)
	}
	out := make([]string, k)
	copy(out, colors)
	return out, nil
}

// Names returns the sorted names of all available palettes.
func Names() []string {
	seen := make(map[string]bool, len(builtins)+len(custom))
	for name := range builtins {
		seen[name] = true
	}
	for name := range custom {
		seen[name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadPalettes reads user palettes from a YAML file mapping palette
// name to class count to hex colors, and registers them alongside the
// builtins. Ramps whose color count disagrees with their key are an
// error.
func LoadPalettes(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "choropleth: read %s", path)
	}

	var loaded map[string]map[int][]string
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return eris.Wrapf(err, "choropleth: parse %s", path)
	}

	for name, ramps := range loaded {
		for k, colors := range ramps {
			if len(colors) != k {
				return eris.Errorf("choropleth: palette %q ramp %d has %d colors", name, k, len(colors))
			}
		}
		custom[name] = ramps
	}
	return nil
}
