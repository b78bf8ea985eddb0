package schema

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/mailform/pkg/filter"
	"github.com/dmitrymomot/mailform/pkg/form"
	"github.com/dmitrymomot/mailform/pkg/rule"
	"github.com/dmitrymomot/mailform/pkg/transform"
)

var (
	// ErrInvalidSchema is returned when the schema document cannot be
	// parsed or fails structural validation.
	ErrInvalidSchema = errors.New("schema: invalid form schema")
	// ErrUnknownProcessor is returned when a processor entry names no
	// known filter, transformer or rule.
	ErrUnknownProcessor = errors.New("schema: unknown processor")
)

// File is the root of a form schema document.
type File struct {
	Forms map[string]FormSpec `yaml:"forms"`
}

// FormSpec declares one form's fields in processing order, plus an
// optional mail section consumed by the daemon to compose notification
// emails.
type FormSpec struct {
	Mail   *MailSpec   `yaml:"mail,omitempty"`
	Fields []FieldSpec `yaml:"fields"`
}

// MailSpec declares the notification email for a form: {field} templates
// for subject and body, and an optional transport analytics tag.
type MailSpec struct {
	Subject string `yaml:"subject,omitempty"`
	Body    string `yaml:"body"`
	Tag     string `yaml:"tag,omitempty"`
}

// FieldSpec declares one field: its name, semantic roles and ordered
// processor pipeline.
type FieldSpec struct {
	Name       string          `yaml:"name"`
	Roles      []string        `yaml:"roles,omitempty"`
	Processors []ProcessorSpec `yaml:"processors,omitempty"`
}

// ProcessorSpec declares one pipeline stage. Exactly one of Filter,
// Transform or Rule names the stage; the remaining keys are its options
// and are ignored by stages that don't use them.
//
// Boolean options default to false in YAML, so html_escape and
// html_entities encode existing entities only when double_encode is set
// to true, regardless of the programmatic constructors' defaults.
type ProcessorSpec struct {
	Filter    string `yaml:"filter,omitempty"`
	Transform string `yaml:"transform,omitempty"`
	Rule      string `yaml:"rule,omitempty"`

	Direction      string   `yaml:"direction,omitempty"`
	ASCII          bool     `yaml:"ascii,omitempty"`
	Strict         bool     `yaml:"strict,omitempty"`
	Aggressive     bool     `yaml:"aggressive,omitempty"`
	Placeholder    string   `yaml:"placeholder,omitempty"`
	AllowedTags    []string `yaml:"allowed_tags,omitempty"`
	DoubleEncode   bool     `yaml:"double_encode,omitempty"`
	EnsureTrailing bool     `yaml:"ensure_trailing,omitempty"`
	StripInvalid   bool     `yaml:"strip_invalid,omitempty"`
	Min            int      `yaml:"min,omitempty"`
	Max            int      `yaml:"max,omitempty"`
	Bytes          bool     `yaml:"bytes,omitempty"`
	Pattern        string   `yaml:"pattern,omitempty"`
	Code           string   `yaml:"code,omitempty"`
	Message        string   `yaml:"message,omitempty"`
	Trim           *bool    `yaml:"trim,omitempty"`
}

// Definition is a parsed schema: built forms keyed by name, plus the
// declared mail sections for the forms that have one.
type Definition struct {
	Forms map[string]*form.Form
	Mail  map[string]MailSpec
}

// Load reads and parses a schema file.
func Load(path string) (*Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	return Parse(raw)
}

// Parse builds forms from a YAML schema document.
func Parse(raw []byte) (*Definition, error) {
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if len(file.Forms) == 0 {
		return nil, fmt.Errorf("%w: no forms declared", ErrInvalidSchema)
	}

	def := &Definition{
		Forms: make(map[string]*form.Form, len(file.Forms)),
		Mail:  make(map[string]MailSpec),
	}
	for name, spec := range file.Forms {
		f, err := buildForm(name, spec)
		if err != nil {
			return nil, err
		}
		def.Forms[name] = f
		if spec.Mail != nil {
			def.Mail[name] = *spec.Mail
		}
	}
	return def, nil
}

func buildForm(name string, spec FormSpec) (*form.Form, error) {
	f := form.New(name)
	for _, fieldSpec := range spec.Fields {
		if fieldSpec.Name == "" {
			return nil, fmt.Errorf("%w: form %q has a field without a name", ErrInvalidSchema, name)
		}
		field := form.NewField(fieldSpec.Name, fieldSpec.Roles...)
		for _, ps := range fieldSpec.Processors {
			p, err := buildProcessor(ps)
			if err != nil {
				return nil, fmt.Errorf("form %q, field %q: %w", name, fieldSpec.Name, err)
			}
			field.Add(p)
		}
		f.Add(field)
	}
	return f, nil
}

func buildProcessor(spec ProcessorSpec) (form.Processor, error) {
	switch {
	case spec.Filter != "":
		return buildFilter(spec)
	case spec.Transform != "":
		return buildTransform(spec)
	case spec.Rule != "":
		return buildRule(spec)
	}
	return nil, fmt.Errorf("%w: entry names no filter, transform or rule", ErrUnknownProcessor)
}

func buildFilter(spec ProcessorSpec) (form.Processor, error) {
	switch spec.Filter {
	case "trim":
		var opts []filter.TrimOption
		if spec.Direction != "" {
			d := filter.Direction(spec.Direction)
			switch d {
			case filter.TrimBoth, filter.TrimLeft, filter.TrimRight:
				opts = append(opts, filter.WithDirection(d))
			default:
				return nil, fmt.Errorf("%w: invalid trim direction %q", ErrInvalidSchema, spec.Direction)
			}
		}
		if spec.ASCII {
			opts = append(opts, filter.WithASCIIWhitespace())
		}
		return filter.NewTrim(opts...), nil
	case "strip_tags":
		return filter.NewStripTags(spec.AllowedTags...), nil
	case "html_escape":
		var opts []filter.HTMLEscapeOption
		if !spec.DoubleEncode {
			opts = append(opts, filter.WithoutDoubleEncoding())
		}
		return filter.NewHTMLEscape(opts...), nil
	case "sanitize_text":
		var opts []filter.SanitizeTextOption
		if spec.StripInvalid {
			opts = append(opts, filter.WithoutReplacementChar())
		}
		return filter.NewSanitizeText(opts...), nil
	case "sanitize_email":
		var opts []filter.SanitizeEmailOption
		if spec.Strict {
			opts = append(opts, filter.WithStrictLocalPart())
		}
		return filter.NewSanitizeEmail(opts...), nil
	case "remove_url":
		var opts []filter.RemoveURLOption
		if spec.Aggressive {
			opts = append(opts, filter.WithAggressiveMatching())
		}
		if spec.Placeholder != "" {
			opts = append(opts, filter.WithPlaceholder(spec.Placeholder))
		}
		return filter.NewRemoveURL(opts...), nil
	case "remove_emoji":
		return filter.NewRemoveEmoji(), nil
	case "normalize_newlines":
		var opts []filter.NormalizeNewlinesOption
		if spec.EnsureTrailing {
			opts = append(opts, filter.WithTrailingNewline())
		}
		return filter.NewNormalizeNewlines(opts...), nil
	case "sanitize_phone":
		return filter.NewSanitizePhone(), nil
	}
	return nil, fmt.Errorf("%w: filter %q", ErrUnknownProcessor, spec.Filter)
}

func buildTransform(spec ProcessorSpec) (form.Processor, error) {
	switch spec.Transform {
	case "lowercase":
		var opts []transform.LowercaseOption
		if spec.ASCII {
			opts = append(opts, transform.WithASCIIFolding())
		}
		return transform.NewLowercase(opts...), nil
	case "html_entities":
		var opts []transform.HTMLEntitiesOption
		if spec.DoubleEncode {
			opts = append(opts, transform.WithDoubleEncode())
		}
		return transform.NewHTMLEntities(opts...), nil
	}
	return nil, fmt.Errorf("%w: transform %q", ErrUnknownProcessor, spec.Transform)
}

func buildRule(spec ProcessorSpec) (form.Processor, error) {
	switch spec.Rule {
	case "required":
		var opts []rule.RequiredOption
		if spec.Code != "" {
			opts = append(opts, rule.WithRequiredCode(spec.Code))
		}
		if spec.Message != "" {
			opts = append(opts, rule.WithRequiredMessage(spec.Message))
		}
		if spec.Trim != nil && !*spec.Trim {
			opts = append(opts, rule.WithoutTrim())
		}
		return rule.NewRequired(opts...), nil
	case "length":
		var opts []rule.LengthOption
		if spec.Bytes {
			opts = append(opts, rule.WithByteCounting())
		}
		return rule.NewLength(spec.Min, spec.Max, opts...), nil
	case "regex":
		if _, err := regexp.Compile(spec.Pattern); err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidSchema, spec.Pattern, err)
		}
		var opts []rule.RegexOption
		if spec.Code != "" {
			opts = append(opts, rule.WithRegexCode(spec.Code))
		}
		if spec.Message != "" {
			opts = append(opts, rule.WithRegexMessage(spec.Message))
		}
		return rule.NewRegex(spec.Pattern, opts...), nil
	case "email":
		var opts []rule.EmailOption
		if spec.Strict {
			opts = append(opts, rule.WithASCIIOnly())
		}
		if spec.Code != "" {
			opts = append(opts, rule.WithEmailCode(spec.Code))
		}
		return rule.NewEmail(opts...), nil
	}
	return nil, fmt.Errorf("%w: rule %q", ErrUnknownProcessor, spec.Rule)
}
