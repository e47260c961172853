package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a custom rules file:
//
//	rules:
//	  - id: staff_number
//	    patterns: ["staff no", "employee id"]
//	    category: "Personal identifier under APP 6"
//	  - id: gender
//	    enabled: false
type File struct {
	Rules []FileRule `yaml:"rules"`
}

// FileRule is one entry of a custom rules file. A rule that reuses a built-in
// ID replaces it in place; enabled: false removes it.
type FileRule struct {
	ID       string   `yaml:"id"`
	Patterns []string `yaml:"patterns,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Enabled  *bool    `yaml:"enabled,omitempty"`
}

func (r FileRule) isEnabled() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}

// ParseFile parses custom rules YAML.
func ParseFile(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parsing rules YAML: %w", err)
	}
	return f, nil
}

// LoadFile reads and parses a custom rules file from disk.
func LoadFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading rules file %s: %w", path, err)
	}
	return ParseFile(b)
}

// Apply layers the file over base: disabled IDs are dropped, other entries
// are merged by ID. Patterns are lowercased so file authors can write them
// in any case.
func (f File) Apply(base RuleSet) (RuleSet, error) {
	var disable []string
	var overrides []Rule
	for _, fr := range f.Rules {
		id := strings.TrimSpace(fr.ID)
		if id == "" {
			return RuleSet{}, ErrEmptyID
		}
		if !fr.isEnabled() {
			disable = append(disable, id)
			continue
		}
		patterns := make(PatternGroup, 0, len(fr.Patterns))
		for _, p := range fr.Patterns {
			patterns = append(patterns, toLowerASCII(strings.TrimSpace(p)))
		}
		overrides = append(overrides, Rule{ID: id, Patterns: patterns, Category: Category(fr.Category)})
	}
	merged, err := Merge(base, overrides...)
	if err != nil {
		return RuleSet{}, err
	}
	if len(disable) == 0 {
		return merged, nil
	}
	return merged.Select(nil, disable)
}
