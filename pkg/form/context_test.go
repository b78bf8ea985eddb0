package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailform/pkg/form"
)

func TestContextValueResolution(t *testing.T) {
	ctx := form.NewContext(map[string]any{"name": "raw", "age": 30})

	t.Run("falls back to input when no data is set", func(t *testing.T) {
		assert.Equal(t, "raw", ctx.Value("name"))
	})

	t.Run("prefers normalized data over input", func(t *testing.T) {
		ctx.SetValue("name", "clean")
		assert.Equal(t, "clean", ctx.Value("name"))
		assert.Equal(t, "raw", ctx.Input("name"))
	})

	t.Run("unknown keys read as nil without panicking", func(t *testing.T) {
		assert.Nil(t, ctx.Value("missing"))
		assert.Nil(t, ctx.Input("missing"))
		assert.False(t, ctx.HasInput("missing"))
	})

	t.Run("last writer wins", func(t *testing.T) {
		ctx.SetValue("name", "first")
		ctx.SetValue("name", "second")
		assert.Equal(t, "second", ctx.Value("name"))
	})
}

func TestContextErrors(t *testing.T) {
	t.Run("appends preserving insertion order", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.AddError("email", form.NewError("required"))
		ctx.AddError("email", form.NewError("invalid_email"))

		errs := ctx.FieldErrors("email")
		assert.Len(t, errs, 2)
		assert.Equal(t, "required", errs[0].Code())
		assert.Equal(t, "invalid_email", errs[1].Code())
	})

	t.Run("never deduplicates", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.AddError("email", form.NewError("required"))
		ctx.AddError("email", form.NewError("required"))
		assert.Len(t, ctx.FieldErrors("email"), 2)
	})

	t.Run("binds unbound errors to the field", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.AddError("email", form.NewError("required"))
		assert.Equal(t, "email", ctx.FieldErrors("email")[0].Field())
	})

	t.Run("global errors use the reserved key", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.AddGlobalError(form.NewError("spam_detected"))
		assert.True(t, ctx.HasError(form.GlobalField))
	})

	t.Run("predicates", func(t *testing.T) {
		ctx := form.NewContext(nil)
		assert.False(t, ctx.HasErrors())
		assert.False(t, ctx.HasError("email"))
		assert.Empty(t, ctx.FieldErrors("email"))

		ctx.AddError("email", form.NewError("required"))
		assert.True(t, ctx.HasErrors())
		assert.True(t, ctx.HasError("email"))
	})

	t.Run("bulk helpers", func(t *testing.T) {
		ctx := form.NewContext(nil)
		ctx.SetErrors(map[string][]form.Error{
			"a": {form.NewError("x")},
			"b": {form.NewError("y")},
		})
		assert.True(t, ctx.HasError("a"))

		ctx.ClearFieldErrors("a")
		assert.False(t, ctx.HasError("a"))
		assert.True(t, ctx.HasError("b"))

		ctx.ClearErrors()
		assert.False(t, ctx.HasErrors())
	})
}

func TestContextCopyOnWrite(t *testing.T) {
	t.Run("WithValue leaves the original untouched", func(t *testing.T) {
		original := form.NewContext(map[string]any{"name": "a"})
		original.SetValue("name", "b")

		branch := original.WithValue("name", "c")
		assert.Equal(t, "b", original.Value("name"))
		assert.Equal(t, "c", branch.Value("name"))

		// Later writes to the branch must not leak back either.
		branch.SetValue("other", 1)
		assert.Nil(t, original.Value("other"))
	})

	t.Run("WithError leaves the original untouched", func(t *testing.T) {
		original := form.NewContext(nil)
		branch := original.WithError("email", form.NewError("required"))

		assert.False(t, original.HasErrors())
		assert.True(t, branch.HasError("email"))
	})
}

func TestContextSnapshots(t *testing.T) {
	ctx := form.NewContext(map[string]any{"a": 1})
	ctx.SetValue("b", 2)
	ctx.AddError("a", form.NewError("bad"))

	t.Run("map reads are copies", func(t *testing.T) {
		data := ctx.Data()
		data["b"] = 99
		assert.Equal(t, 2, ctx.Value("b"))

		input := ctx.AllInput()
		input["a"] = 99
		assert.Equal(t, 1, ctx.Input("a"))

		errs := ctx.Errors()
		errs["a"] = nil
		assert.True(t, ctx.HasError("a"))
	})

	t.Run("constructor copies the input map", func(t *testing.T) {
		input := map[string]any{"k": "v"}
		fresh := form.NewContext(input)
		input["k"] = "mutated"
		assert.Equal(t, "v", fresh.Input("k"))
	})
}
