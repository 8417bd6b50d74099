package form

import (
	"context"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/go-formwork/formwork/pkg/observe"
)

// Controller manages the lifecycle of a user-input form: field values,
// per-field touched status, validation errors, and submission state. It is
// owned by a single host component and lives as long as that component does.
//
// The host wires its input elements to HandleChange and HandleBlur, its
// submit action to HandleSubmit, and subscribes with AddListener to re-render
// after each state commit. All snapshot accessors return defensive copies.
//
// Controller is safe for concurrent use. The synchronous portion of each
// handler commits atomically; overlapping asynchronous tails (for example
// two rapid submits with a slow validator) are not serialized, and the last
// commit wins.
type Controller struct {
	observe.Notifier

	mu          sync.RWMutex
	cfg         Config
	values      Values
	errors      Errors
	touched     Touched
	submitting  bool
	submitCount int
	prevDeps    []any
	disposed    bool
}

// New creates a controller seeded from the config's InitialValues. The first
// activation only records the dependency baseline; it never triggers a
// reset.
func New(cfg Config) *Controller {
	return &Controller{
		cfg:      cfg,
		values:   cfg.InitialValues.Clone(),
		errors:   Errors{},
		touched:  Touched{},
		prevDeps: cfg.dependencies(),
	}
}

// Update is the activation entry point: the host calls it on every render
// cycle with the current config. The new config replaces the old one, and if
// any extracted dependency differs from the previous activation's extraction
// (shallow element-wise comparison), the form reinitializes via ResetForm.
func (c *Controller) Update(cfg Config) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.cfg = cfg
	deps := cfg.dependencies()
	changed := !depsEqual(c.prevDeps, deps)
	c.prevDeps = deps
	if changed {
		c.resetLocked()
	}
	c.mu.Unlock()

	if changed {
		c.Notify()
	}
}

// HandleChange records a new value for the field named by the event target.
// The previous mapping is preserved apart from the single overwritten key.
//
// If change validation is enabled and every field declared in InitialValues
// has already been touched, the validator runs against the newly committed
// snapshot rather than a stale read. A validator failure on this path is
// reported to the diagnostic logger; the committed value stands either way.
//
// An event without a target name is a usage error: it is warned about and
// then processed under the empty key so the host does not crash.
func (c *Controller) HandleChange(ctx context.Context, e Event) {
	name := e.Target.Name
	if name == "" {
		Logger().Warn("HandleChange called without a name on input",
			zap.String("type", e.Target.Type))
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	// The gate is evaluated against the touched set as it stood before this
	// change; changing a field does not mark it touched.
	revalidate := c.cfg.Validate != nil && c.cfg.validateOnChange() &&
		c.shouldValidateLocked(c.touched)
	values := c.values.Clone()
	values[name] = fieldValue(e.Target)
	c.values = values
	snapshot := values.Clone()
	cfg := c.cfg
	c.mu.Unlock()
	c.Notify()

	if !revalidate {
		return
	}
	errs, err := cfg.validate(ctx, snapshot)
	if err != nil {
		Logger().Warn("validate failed after change",
			zap.String("field", name), zap.Error(err))
		return
	}
	c.commitErrors(errs)
}

// HandleBlur marks the event target's field as touched. If blur validation
// is enabled and every field declared in InitialValues is touched once this
// blur is recorded, the validator runs against the current values.
//
// Like HandleChange, a missing target name is warned about and processed
// under the empty key.
func (c *Controller) HandleBlur(ctx context.Context, e Event) {
	name := e.Target.Name
	if name == "" {
		Logger().Warn("HandleBlur called without a name on input",
			zap.String("type", e.Target.Type))
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	touched := c.touched.Clone()
	touched[name] = true
	c.touched = touched
	revalidate := c.cfg.Validate != nil && c.cfg.validateOnBlur() &&
		c.shouldValidateLocked(touched)
	snapshot := c.values.Clone()
	cfg := c.cfg
	c.mu.Unlock()
	c.Notify()

	if !revalidate {
		return
	}
	errs, err := cfg.validate(ctx, snapshot)
	if err != nil {
		Logger().Warn("validate failed after blur",
			zap.String("field", name), zap.Error(err))
		return
	}
	c.commitErrors(errs)
}

// HandleSubmit runs one submit attempt:
//
//  1. the event's default action is suppressed (when an event is supplied),
//  2. isSubmitting flips true and the submit count increments, both before
//     validation starts,
//  3. every known field (current values plus InitialValues) is marked
//     touched,
//  4. the validator runs against the current snapshot and its result
//     replaces the error mapping,
//  5. only a clean validation pass reaches OnSubmit.
//
// A non-empty error mapping is a normal outcome: HandleSubmit returns nil
// and the host renders the published errors. A validator or OnSubmit failure
// is returned to the caller verbatim, after isSubmitting is reset; no other
// state is rolled back.
func (c *Controller) HandleSubmit(ctx context.Context, e SubmitEvent) error {
	if e != nil {
		e.PreventDefault()
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil
	}
	c.submitting = true
	c.submitCount++
	touched := c.touched.Clone()
	for name := range c.values {
		touched[name] = true
	}
	for name := range c.cfg.InitialValues {
		touched[name] = true
	}
	c.touched = touched
	snapshot := c.values.Clone()
	cfg := c.cfg
	c.mu.Unlock()
	c.Notify()

	errs, err := cfg.validate(ctx, snapshot)
	if err != nil {
		c.setSubmitting(false)
		return err
	}
	c.commitErrors(errs)
	if !errs.Empty() {
		c.setSubmitting(false)
		return nil
	}

	if cfg.OnSubmit != nil {
		if err := cfg.OnSubmit(ctx, snapshot); err != nil {
			c.setSubmitting(false)
			return err
		}
	}
	c.setSubmitting(false)
	return nil
}

// SetErrors replaces the error mapping unconditionally, independent of any
// in-flight validation. Hosts use it to post errors from outside the
// validation cycle, such as a server-side rejection.
func (c *Controller) SetErrors(errs Errors) {
	c.commitErrors(errs)
}

// ResetValue restores a single field's value from InitialValues and removes
// its error entry. When resetTouched is true its touched entry is removed as
// well. Every other field is left exactly as it was. A field absent from
// InitialValues is removed from the values entirely.
func (c *Controller) ResetValue(name string, resetTouched bool) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	values := c.values.Clone()
	if initial, ok := c.cfg.InitialValues[name]; ok {
		values[name] = initial
	} else {
		delete(values, name)
	}
	c.values = values

	errs := c.errors.Clone()
	delete(errs, name)
	c.errors = errs

	if resetTouched {
		touched := c.touched.Clone()
		delete(touched, name)
		c.touched = touched
	}
	c.mu.Unlock()
	c.Notify()
}

// ResetForm restores the whole form to its initial state: values from
// InitialValues, empty errors and touched, isSubmitting false, submit count
// zero.
func (c *Controller) ResetForm() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.resetLocked()
	c.mu.Unlock()
	c.Notify()
}

// Values returns a copy of the current field values.
func (c *Controller) Values() Values {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values.Clone()
}

// Errors returns a copy of the current error mapping.
func (c *Controller) Errors() Errors {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errors.Clone()
}

// Touched returns a copy of the current touched mapping.
func (c *Controller) Touched() Touched {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.touched.Clone()
}

// IsSubmitting reports whether a submit attempt is between its start and its
// final settle.
func (c *Controller) IsSubmitting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.submitting
}

// SubmitCount returns the number of submit attempts so far, regardless of
// outcome.
func (c *Controller) SubmitCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.submitCount
}

// Dispose releases the controller. Listeners are dropped and any commit
// attempted afterwards, including late continuations of in-flight validate
// or submit chains, is discarded silently.
func (c *Controller) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
	c.Notifier.Close()
}

// shouldValidateLocked reports whether whole-form revalidation should run:
// only once every field declared in InitialValues has been touched at least
// once. Fields introduced later by change events are not required.
func (c *Controller) shouldValidateLocked(touched Touched) bool {
	for name := range c.cfg.InitialValues {
		if !touched[name] {
			return false
		}
	}
	return true
}

func (c *Controller) resetLocked() {
	c.values = c.cfg.InitialValues.Clone()
	c.errors = Errors{}
	c.touched = Touched{}
	c.submitting = false
	c.submitCount = 0
}

// commitErrors replaces the error mapping. Each completed validation commits
// through here, so racing validations resolve last-writer-wins.
func (c *Controller) commitErrors(errs Errors) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.errors = errs.Clone()
	c.mu.Unlock()
	c.Notify()
}

func (c *Controller) setSubmitting(submitting bool) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.submitting = submitting
	c.mu.Unlock()
	c.Notify()
}

// depsEqual compares two dependency extractions element-wise. Values whose
// dynamic type is not comparable are always treated as changed.
func depsEqual(prev, next []any) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		if !sameDep(prev[i], next[i]) {
			return false
		}
	}
	return true
}

func sameDep(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return false
	}
	return a == b
}
