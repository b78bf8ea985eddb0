package form_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailform/pkg/form"
)

func TestNewResult(t *testing.T) {
	t.Run("valid when the context has no errors", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.SetValue("a", "x")
		result := form.NewResult(ctx)
		assert.True(t, result.Valid())
		assert.Equal(t, "x", result.Value("a"))
	})

	t.Run("invalid when any field has errors", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.AddError("a", form.NewError("bad"))
		assert.False(t, form.NewResult(ctx).Valid())
	})

	t.Run("snapshot does not observe later context mutation", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.SetValue("a", "before")
		result := form.NewResult(ctx)

		ctx.SetValue("a", "after")
		ctx.AddError("a", form.NewError("late"))

		assert.Equal(t, "before", result.Value("a"))
		assert.True(t, result.Valid())
		assert.Empty(t, result.FieldErrors("a"))
	})

	t.Run("accessor maps are copies", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.SetValue("a", "x")
		ctx.AddError("a", form.NewError("bad"))
		result := form.NewResult(ctx)

		result.Data()["a"] = "mutated"
		assert.Equal(t, "x", result.Value("a"))

		delete(result.Errors(), "a")
		assert.True(t, result.HasFieldErrors("a"))
	})
}

func TestResultMessages(t *testing.T) {
	ctx := form.NewContext(nil)
	ctx.AddError("name", form.NewError("too_short").
		WithMessage("Must be at least {min} characters").
		WithContext(map[string]any{"min": 2}))
	ctx.AddError("name", form.NewError("required"))

	result := form.NewResult(ctx)
	assert.Equal(t, []string{"Must be at least 2 characters", "required"}, result.Messages("name"))
	assert.Empty(t, result.Messages("unknown"))
}

func TestResultMarshalJSON(t *testing.T) {
	ctx := form.NewContext(nil)
	ctx.SetValue("name", "Julien")
	ctx.AddError("email", form.NewError("invalid_email"))

	raw, err := json.Marshal(form.NewResult(ctx))
	require.NoError(t, err)

	var decoded struct {
		Valid  bool                        `json:"valid"`
		Errors map[string][]map[string]any `json:"errors"`
		Data   map[string]any              `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.False(t, decoded.Valid)
	assert.Equal(t, "Julien", decoded.Data["name"])
	require.Len(t, decoded.Errors["email"], 1)
	assert.Equal(t, "invalid_email", decoded.Errors["email"][0]["code"])
}
