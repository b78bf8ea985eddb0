package rule_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/rule"
)

func TestCallbackRule(t *testing.T) {
	noVowels := rule.Callback(func(value any, _ *form.Field, _ *form.Context) []form.ErrorArg {
		s, ok := value.(string)
		if !ok || !strings.ContainsAny(s, "aeiou") {
			return nil
		}
		return []form.ErrorArg{form.Code("contains_vowels")}
	})

	t.Run("passing value reports nothing", func(t *testing.T) {
		result := run(noVowels, "rhythm")
		assert.True(t, result.Valid())
	})

	t.Run("failure is bound to the field", func(t *testing.T) {
		result := run(noVowels, "hello")
		require.False(t, result.Valid())

		errs := result.FieldErrors("value")
		require.Len(t, errs, 1)
		assert.Equal(t, "contains_vowels", errs[0].Code())
		assert.Equal(t, "value", errs[0].Field())
		assert.Equal(t, "Contains vowels", errs[0].Interpolate())
	})

	t.Run("value passes through unchanged", func(t *testing.T) {
		result := run(noVowels, "hello")
		assert.Equal(t, "hello", result.Value("value"))
	})
}

func TestCallbackRuleErrorArgForms(t *testing.T) {
	r := rule.Callback(func(value any, field *form.Field, _ *form.Context) []form.ErrorArg {
		return []form.ErrorArg{
			form.Code("first"),
			form.Desc{Code: "second", Message: "described {n}", Context: map[string]any{"n": 2}},
			form.NewError("third").WithMessage("built"),
		}
	})

	result := run(r, "anything")
	require.False(t, result.Valid())

	errs := result.FieldErrors("value")
	require.Len(t, errs, 3)
	assert.Equal(t, "first", errs[0].Code())
	assert.Equal(t, "described 2", errs[1].Interpolate())
	assert.Equal(t, "built", errs[2].Message())
	for _, e := range errs {
		assert.Equal(t, "value", e.Field())
	}
}

func TestCallbackRuleCrossField(t *testing.T) {
	match := rule.Callback(func(value any, _ *form.Field, ctx *form.Context) []form.ErrorArg {
		if value != ctx.Value("password") {
			return []form.ErrorArg{form.Code("password_mismatch")}
		}
		return nil
	})

	f := form.New("signup")
	f.Add(form.NewField("password"))
	f.Add(form.NewField("password_confirm").Add(match))

	result := f.Process(map[string]any{
		"password":         "s3cret",
		"password_confirm": "other",
	})
	require.False(t, result.Valid())
	assert.Equal(t, []string{"password_mismatch"}, codes(result, "password_confirm"))

	result = f.Process(map[string]any{
		"password":         "s3cret",
		"password_confirm": "s3cret",
	})
	assert.True(t, result.Valid())
}

func TestCallbackRuleNilPanics(t *testing.T) {
	require.Panics(t, func() { rule.Callback(nil) })
}
