// Package form provides a stateful controller for user-input forms embedded
// in a host UI's render loop.
//
// A Controller owns five pieces of state: the field values, the per-field
// touched flags, the validation error mapping, the isSubmitting flag, and
// the submit count. The host wires input elements to the controller's event
// handlers and re-reads the snapshots after every change notification.
//
// # Wiring a host
//
//	ctrl := form.New(form.Config{
//	    InitialValues: form.Values{"email": "", "age": float64(0)},
//	    Validate: func(ctx context.Context, v form.Values) (form.Errors, error) {
//	        errs := form.Errors{}
//	        if v["email"] == "" {
//	            errs["email"] = "required"
//	        }
//	        return errs, nil
//	    },
//	    OnSubmit: func(ctx context.Context, v form.Values) error {
//	        return api.SaveProfile(ctx, v)
//	    },
//	})
//	unsub := ctrl.AddListener(func() {
//	    // schedule a re-render and re-read ctrl.Values() / ctrl.Errors()
//	})
//	defer unsub()
//	defer ctrl.Dispose()
//
// Input events carry a structural Target describing the element that fired:
//
//	ctrl.HandleChange(ctx, form.Event{Target: form.Target{
//	    Name: "email", Type: "text", Value: "a@b.example",
//	}})
//
// Numeric input types commit parsed float64 values, checkboxes commit their
// Checked flag, and all other types commit the raw string.
//
// # Validation policy
//
// Change and blur events revalidate the whole form, but only once every
// field declared in InitialValues has been touched; until then the user is
// not nagged with errors for fields they have not reached yet. HandleSubmit
// always validates, marks every known field touched, and calls OnSubmit only
// when the validator returns an empty mapping.
//
// # Reinitialization
//
// A Config may declare a Dependencies extraction function. The host passes
// the current config to Update on each render cycle; when any extracted
// dependency differs from the previous cycle, the controller resets itself
// to the new InitialValues. The first activation only records the baseline.
//
// # Constructor Conventions
//
// Controllers use New() returning a pointer, matching the project-wide
// convention that long-lived mutable objects are constructed while immutable
// configuration (Config, Event) uses struct literals.
package form
