package rules

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_OrderAndShape(t *testing.T) {
	rs := Default()
	require.Equal(t, 18, rs.Len())
	assert.Equal(t, []string{
		IDName, IDDateOfBirth, IDAddress, IDEmail, IDPhone,
		IDHealth, IDEthnicity, IDReligion, IDPolitical, IDSexuality, IDGender,
		IDCriminal, IDUnion, IDBiometric,
		IDTaxFile, IDGovernment, IDFinancial, IDVictorian,
	}, rs.IDs())

	seen := map[Category]bool{}
	for _, r := range rs.Rules() {
		assert.NotEmpty(t, r.Patterns, r.ID)
		for _, p := range r.Patterns {
			assert.Equal(t, strings.ToLower(p), p, "pattern %q of %s", p, r.ID)
		}
		assert.False(t, seen[r.Category], "category of %s reused", r.ID)
		seen[r.Category] = true
	}
}

func TestDefault_Labels(t *testing.T) {
	rs := Default()
	health, ok := rs.Lookup(IDHealth)
	require.True(t, ok)
	assert.Equal(t, Category("Health information (sensitive) under APP 3.3 and OVIC IPP 10"), health.Category)

	name, _ := rs.Lookup(IDName)
	assert.True(t, strings.HasPrefix(string(name.Category), "Personal identifier under APP 6"))
	dob, _ := rs.Lookup(IDDateOfBirth)
	assert.True(t, strings.HasPrefix(string(dob.Category), "Personal identifier under APP 3"))
}

func TestRuleSet_AccessorsReturnCopies(t *testing.T) {
	rs := Default()
	rules := rs.Rules()
	rules[0].Patterns[0] = "mutated"
	rules[0].Category = "mutated"

	r := rs.At(0)
	assert.Equal(t, "name", r.Patterns[0])
	assert.NotEqual(t, Category("mutated"), r.Category)

	looked, _ := rs.Lookup(IDName)
	looked.Patterns[0] = "again"
	assert.Equal(t, "name", rs.At(0).Patterns[0])
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
		want  error
	}{
		{"empty id", []Rule{{Patterns: PatternGroup{"x"}, Category: "c"}}, ErrEmptyID},
		{"no patterns", []Rule{{ID: "a", Category: "c"}}, ErrEmptyPatterns},
		{"no category", []Rule{{ID: "a", Patterns: PatternGroup{"x"}}}, ErrEmptyCategory},
		{"duplicate", []Rule{
			{ID: "a", Patterns: PatternGroup{"x"}, Category: "c"},
			{ID: "a", Patterns: PatternGroup{"y"}, Category: "d"},
		}, ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rules...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := New(Rule{ID: "a", Patterns: PatternGroup{"Upper"}, Category: "c"})
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	rs := Default()

	only, err := rs.Select([]string{IDEmail, IDName}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{IDName, IDEmail}, only.IDs(), "original order is kept")

	without, err := rs.Select(nil, []string{IDGovernment})
	require.NoError(t, err)
	assert.Equal(t, 17, without.Len())
	_, ok := without.Lookup(IDGovernment)
	assert.False(t, ok)

	_, err = rs.Select([]string{"nope"}, nil)
	assert.ErrorIs(t, err, ErrUnknownID)
	_, err = rs.Select(nil, []string{"nope"})
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestMerge_ReplacesInPlaceAndAppends(t *testing.T) {
	base := MustNew(
		Rule{ID: "a", Patterns: PatternGroup{"x"}, Category: "A"},
		Rule{ID: "b", Patterns: PatternGroup{"y"}, Category: "B"},
	)
	merged, err := Merge(base,
		Rule{ID: "a", Patterns: PatternGroup{"z"}, Category: "A2"},
		Rule{ID: "c", Patterns: PatternGroup{"w"}, Category: "C"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, merged.IDs())
	assert.Equal(t, Category("A2"), merged.At(0).Category)
	assert.Equal(t, 2, base.Len(), "base is not modified")
}

func TestFile_Apply(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "rules.yml")
	body := `rules:
  - id: staff_number
    patterns: ["Staff No", "employee"]
    category: "Personal identifier under APP 6"
  - id: gender
    enabled: false
  - id: email
    patterns: ["email", "mail"]
    category: "Contact details"
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	f, err := LoadFile(p)
	require.NoError(t, err)
	rs, err := f.Apply(Default())
	require.NoError(t, err)

	assert.Equal(t, 18, rs.Len(), "one added, one removed")
	_, ok := rs.Lookup(IDGender)
	assert.False(t, ok)

	staff, ok := rs.Lookup("staff_number")
	require.True(t, ok)
	assert.Equal(t, PatternGroup{"staff no", "employee"}, staff.Patterns)
	assert.Equal(t, "staff_number", rs.IDs()[rs.Len()-1])

	email, _ := rs.Lookup(IDEmail)
	assert.Equal(t, Category("Contact details"), email.Category)
	assert.Equal(t, IDEmail, rs.IDs()[3], "replaced rule keeps its position")
}

func TestFile_Errors(t *testing.T) {
	_, err := ParseFile([]byte("rules: [unterminated"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	f, err := ParseFile([]byte("rules:\n  - id: broken\n    category: x\n"))
	require.NoError(t, err)
	_, err = f.Apply(Default())
	assert.ErrorIs(t, err, ErrEmptyPatterns)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "first name", Normalize("First NAME"))
	assert.Equal(t, "already", Normalize("already"))
	// non-ASCII letters are left alone
	assert.Equal(t, "Émail", Normalize("ÉMAIL"))
}
