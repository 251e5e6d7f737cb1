package builtin

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/zachzurn/flexml/style"
)

//go:embed aliases.yaml
var aliasesYAML []byte

type aliasValueYAML struct {
	Index int    `yaml:"index"`
	Label string `yaml:"label"`
}

type aliasEntryYAML struct {
	Name    string         `yaml:"name"`
	Forward bool           `yaml:"forward"`
	Value   aliasValueYAML `yaml:"value"`
}

type aliasDocYAML struct {
	Aliases map[string][]aliasEntryYAML `yaml:"aliases"`
}

// loadAliases decodes the embedded composite alias vocabulary (the
// informative built-in composite table), keyed by the atomic name each
// group attaches to. A decode failure means the embedded document itself
// is malformed, so it panics rather than silently dropping aliases.
func loadAliases() map[string][]Alias {
	var doc aliasDocYAML
	if err := yaml.Unmarshal(aliasesYAML, &doc); err != nil {
		panic("builtin: malformed aliases.yaml: " + err.Error())
	}
	out := make(map[string][]Alias, len(doc.Aliases))
	for atomicName, entries := range doc.Aliases {
		converted := make([]Alias, 0, len(entries))
		for _, e := range entries {
			a := Alias{Name: e.Name, Forward: e.Forward}
			if !e.Forward {
				a.Value = style.Match(e.Value.Index, e.Value.Label)
			}
			converted = append(converted, a)
		}
		out[atomicName] = converted
	}
	return out
}

var builtinAliases = loadAliases()

func init() {
	for i := range DefaultAtomics {
		DefaultAtomics[i].Aliases = builtinAliases[DefaultAtomics[i].Name]
	}
}
