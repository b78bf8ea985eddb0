package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/rule"
)

// run processes a single-field form with one rule attached and returns the
// result.
func run(r form.Processor, value any) form.Result {
	f := form.New("test")
	f.Add(form.NewField("value").Add(r))
	input := map[string]any{}
	if value != nil {
		input["value"] = value
	}
	return f.Process(input)
}

func codes(result form.Result, field string) []string {
	var out []string
	for _, e := range result.FieldErrors(field) {
		out = append(out, e.Code())
	}
	return out
}

func TestRequired(t *testing.T) {
	r := rule.NewRequired()

	t.Run("empty values fail", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
		}{
			{name: "absent", value: nil},
			{name: "false", value: false},
			{name: "empty string", value: ""},
			{name: "whitespace only", value: "   \t\n"},
			{name: "empty slice", value: []string{}},
			{name: "empty map", value: map[string]any{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := run(r, tt.value)
				require.False(t, result.Valid())
				assert.Equal(t, []string{"required"}, codes(result, "value"))
			})
		}
	})

	t.Run("present values pass", func(t *testing.T) {
		tests := []struct {
			name  string
			value any
		}{
			{name: "string", value: "hello"},
			{name: "zero int", value: 0},
			{name: "zero string", value: "0"},
			{name: "true", value: true},
			{name: "non-empty slice", value: []string{"a"}},
			{name: "non-empty map", value: map[string]any{"k": "v"}},
			{name: "struct", value: struct{ X int }{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := run(r, tt.value)
				assert.True(t, result.Valid())
			})
		}
	})
}

func TestRequiredDoesNotRewriteValue(t *testing.T) {
	result := run(rule.NewRequired(), "  padded  ")
	assert.True(t, result.Valid())
	assert.Equal(t, "  padded  ", result.Value("value"))
}

func TestRequiredWithoutTrim(t *testing.T) {
	r := rule.NewRequired(rule.WithoutTrim())

	assert.True(t, run(r, "   ").Valid())
	assert.False(t, run(r, "").Valid())
}

func TestRequiredCustomCodeAndMessage(t *testing.T) {
	r := rule.NewRequired(
		rule.WithRequiredCode("missing"),
		rule.WithRequiredMessage("please fill in {field}"),
	)

	result := run(r, nil)
	require.False(t, result.Valid())

	errs := result.FieldErrors("value")
	require.Len(t, errs, 1)
	assert.Equal(t, "missing", errs[0].Code())
	assert.Equal(t, "please fill in value", errs[0].Interpolate())
}

func TestRequiredDefaultMessageInterpolatesFieldName(t *testing.T) {
	f := form.New("contact")
	f.Add(form.NewField("email").Add(rule.NewRequired()))

	result := f.Process(map[string]any{})
	require.False(t, result.Valid())

	errs := result.FieldErrors("email")
	require.Len(t, errs, 1)
	assert.Equal(t, "email is required", errs[0].Interpolate())
}
