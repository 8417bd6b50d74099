package observe

import "sync"

// Observable holds a single value and notifies typed listeners when it
// changes. Unlike Notifier, listeners receive the new value directly.
type Observable[T any] struct {
	mu             sync.RWMutex
	value          T
	listeners      map[int]func(T)
	nextListenerID int
}

// NewObservable creates an observable holding the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value:     initial,
		listeners: make(map[int]func(T)),
	}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores a new value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	o.mu.Unlock()
	o.notify(value)
}

// Update applies a transformation to the current value and notifies listeners.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	o.value = transform(o.value)
	value := o.value
	o.mu.Unlock()
	o.notify(value)
}

// AddListener adds a callback that fires with the new value on every Set or
// Update. Returns an unsubscribe function.
func (o *Observable[T]) AddListener(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	if o.listeners == nil {
		o.listeners = make(map[int]func(T))
	}
	id := o.nextListenerID
	o.nextListenerID++
	o.listeners[id] = fn
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.listeners, id)
		o.mu.Unlock()
	}
}

func (o *Observable[T]) notify(value T) {
	o.mu.RLock()
	listeners := make([]func(T), 0, len(o.listeners))
	for _, fn := range o.listeners {
		listeners = append(listeners, fn)
	}
	o.mu.RUnlock()

	for _, fn := range listeners {
		fn(value)
	}
}
