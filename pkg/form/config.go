package form

import "context"

// ValidateFunc computes an error mapping from the current values. Returning
// an empty (or nil) Errors means the values are valid. A non-nil error is an
// exceptional failure of the validator itself, distinct from the values
// being invalid.
type ValidateFunc func(ctx context.Context, values Values) (Errors, error)

// SubmitFunc consumes the final validated values. It is only invoked when
// validation produced no errors.
type SubmitFunc func(ctx context.Context, values Values) error

// Config describes one logical form. It is supplied at construction and may
// be supplied again on every activation via [Controller.Update]; the
// controller watches the extracted Dependencies to decide when a new config
// should reinitialize the form.
type Config struct {
	// InitialValues seeds the form and is the baseline every reset
	// restores. Its keys also drive the whole-form validation gate: change
	// and blur revalidation only starts once every initial field has been
	// touched.
	InitialValues Values

	// OnSubmit is invoked by HandleSubmit after a clean validation pass.
	OnSubmit SubmitFunc

	// Validate computes the form's error mapping. Nil disables validation
	// entirely; submits then always reach OnSubmit.
	Validate ValidateFunc

	// DisableValidateOnChange turns off revalidation inside HandleChange.
	// The zero value keeps the default behavior of validating on change.
	DisableValidateOnChange bool

	// DisableValidateOnBlur turns off revalidation inside HandleBlur.
	// The zero value keeps the default behavior of validating on blur.
	DisableValidateOnBlur bool

	// Dependencies extracts the watched values for the reinitialization
	// watcher. On every Update after the first activation, a shallow
	// element-wise difference from the previous extraction triggers
	// ResetForm. Nil means the form never reinitializes automatically.
	Dependencies func(Config) []any
}

func (c Config) validateOnChange() bool { return !c.DisableValidateOnChange }

func (c Config) validateOnBlur() bool { return !c.DisableValidateOnBlur }

func (c Config) dependencies() []any {
	if c.Dependencies == nil {
		return nil
	}
	return c.Dependencies(c)
}

// validate runs the configured validator, treating a nil validator and a nil
// error mapping both as "no errors".
func (c Config) validate(ctx context.Context, values Values) (Errors, error) {
	if c.Validate == nil {
		return Errors{}, nil
	}
	errs, err := c.Validate(ctx, values)
	if err != nil {
		return nil, err
	}
	if errs == nil {
		errs = Errors{}
	}
	return errs, nil
}
