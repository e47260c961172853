package rules

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyID       = errors.New("rule id is empty")
	ErrDuplicateID   = errors.New("duplicate rule id")
	ErrEmptyPatterns = errors.New("rule has no patterns")
	ErrEmptyCategory = errors.New("rule has no category")
	ErrUnknownID     = errors.New("unknown rule id")
)

// PatternGroup is an ordered set of synonymous lowercase substring patterns.
type PatternGroup []string

// Category is the user-facing label attached to a rule. Labels cite privacy
// principles and are kept verbatim.
type Category string

// Rule pairs a pattern group with the category it signals.
type Rule struct {
	ID       string       `json:"id" yaml:"id"`
	Patterns PatternGroup `json:"patterns" yaml:"patterns"`
	Category Category     `json:"category" yaml:"category"`
}

func (r Rule) clone() Rule {
	out := r
	out.Patterns = append(PatternGroup(nil), r.Patterns...)
	return out
}

func (r Rule) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrEmptyID
	}
	if len(r.Patterns) == 0 {
		return fmt.Errorf("%s: %w", r.ID, ErrEmptyPatterns)
	}
	for _, p := range r.Patterns {
		if p == "" {
			return fmt.Errorf("%s: empty pattern", r.ID)
		}
		if p != toLowerASCII(p) {
			return fmt.Errorf("%s: pattern %q must be lowercase", r.ID, p)
		}
	}
	if strings.TrimSpace(string(r.Category)) == "" {
		return fmt.Errorf("%s: %w", r.ID, ErrEmptyCategory)
	}
	return nil
}

// RuleSet is an ordered, immutable list of rules. Order defines precedence:
// the first rule whose pattern matches a column name wins. A RuleSet is safe
// for concurrent use.
type RuleSet struct {
	rules []Rule
}

// New validates rules and returns them as a RuleSet in the given order.
func New(rules ...Rule) (RuleSet, error) {
	seen := make(map[string]bool, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if err := r.validate(); err != nil {
			return RuleSet{}, err
		}
		if seen[r.ID] {
			return RuleSet{}, fmt.Errorf("%s: %w", r.ID, ErrDuplicateID)
		}
		seen[r.ID] = true
		out = append(out, r.clone())
	}
	return RuleSet{rules: out}, nil
}

// MustNew is like New but panics on invalid rules. Intended for static tables.
func MustNew(rules ...Rule) RuleSet {
	rs, err := New(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}

// Len returns the number of rules.
func (rs RuleSet) Len() int { return len(rs.rules) }

// At returns a copy of the i-th rule.
func (rs RuleSet) At(i int) Rule { return rs.rules[i].clone() }

// Rules returns a copy of the rules in precedence order.
func (rs RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	for i, r := range rs.rules {
		out[i] = r.clone()
	}
	return out
}

// IDs returns rule IDs in precedence order.
func (rs RuleSet) IDs() []string {
	ids := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		ids[i] = r.ID
	}
	return ids
}

// Lookup returns the rule with the given ID.
func (rs RuleSet) Lookup(id string) (Rule, bool) {
	for _, r := range rs.rules {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return Rule{}, false
}

// Each calls fn for every rule in order until fn returns false. The rule
// passed to fn shares storage with the set and must not be modified.
func (rs RuleSet) Each(fn func(Rule) bool) {
	for _, r := range rs.rules {
		if !fn(r) {
			return
		}
	}
}

// Select returns a RuleSet restricted to enable (all rules when empty) minus
// disable, keeping the original order. Unknown IDs are an error.
func (rs RuleSet) Select(enable, disable []string) (RuleSet, error) {
	want := map[string]bool{}
	for _, id := range enable {
		if _, ok := rs.Lookup(id); !ok {
			return RuleSet{}, fmt.Errorf("%s: %w", id, ErrUnknownID)
		}
		want[id] = true
	}
	drop := map[string]bool{}
	for _, id := range disable {
		if _, ok := rs.Lookup(id); !ok {
			return RuleSet{}, fmt.Errorf("%s: %w", id, ErrUnknownID)
		}
		drop[id] = true
	}
	var kept []Rule
	for _, r := range rs.rules {
		if len(want) > 0 && !want[r.ID] {
			continue
		}
		if drop[r.ID] {
			continue
		}
		kept = append(kept, r.clone())
	}
	return RuleSet{rules: kept}, nil
}

// Merge layers overrides on top of base. A rule whose ID already exists
// replaces it in place so precedence is preserved; new rules are appended.
func Merge(base RuleSet, overrides ...Rule) (RuleSet, error) {
	index := make(map[string]int, base.Len())
	merged := base.Rules()
	for i, r := range merged {
		index[r.ID] = i
	}
	for _, r := range overrides {
		if idx, ok := index[r.ID]; ok {
			merged[idx] = r
			continue
		}
		index[r.ID] = len(merged)
		merged = append(merged, r)
	}
	return New(merged...)
}

// toLowerASCII lowercases A-Z only. Patterns are ASCII so locale rules do not
// apply.
func toLowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Normalize lowercases a column name the same way patterns are compared.
func Normalize(name string) string { return toLowerASCII(name) }
