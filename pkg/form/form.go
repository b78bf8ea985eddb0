package form

// Form is a named collection of field schemas and the orchestrator that
// runs their pipelines against submitted input. Fields process in
// registration order; re-adding a name silently replaces the definition
// while keeping its original position.
type Form struct {
	name   string
	order  []string
	fields map[string]*Field
}

// New creates an empty form with the given name.
func New(name string) *Form {
	return &Form{
		name:   name,
		fields: make(map[string]*Field),
	}
}

// Name returns the form's name.
func (f *Form) Name() string { return f.name }

// Add registers a field by name and returns the form for chaining.
// Registering a name twice replaces the earlier definition.
func (f *Form) Add(field *Field) *Form {
	if _, exists := f.fields[field.Name()]; !exists {
		f.order = append(f.order, field.Name())
	}
	f.fields[field.Name()] = field
	return f
}

// Field returns the registered field schema, or nil when unknown.
func (f *Form) Field(name string) *Field {
	return f.fields[name]
}

// Fields returns the registered fields in registration order.
func (f *Form) Fields() []*Field {
	out := make([]*Field, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.fields[name])
	}
	return out
}

// Process runs every field's pipeline against the submitted input and
// returns an immutable snapshot of the outcome.
//
// For each field, the pipeline starts from the raw submitted value (nil
// when the key is absent, so required-field checks still run), and each
// processor receives the previous processor's return value. After the last
// processor, the returned value is written into the context
// unconditionally: a processor that writes the context directly but
// returns something else sees its return value win.
//
// One field's errors never stop another field's pipeline; the whole form
// is processed in a single pass.
func (f *Form) Process(input map[string]any) Result {
	ctx := NewContext(input)

	for _, name := range f.order {
		field := f.fields[name]
		value := ctx.Input(name)
		for _, p := range field.Processors() {
			value = p.Process(value, field, ctx)
		}
		ctx.SetValue(name, value)
	}

	return NewResult(ctx)
}
