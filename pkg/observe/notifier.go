package observe

import "sync"

// Listenable is anything that can notify subscribers of state changes.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(fn func()) func()
}

// Notifier is a basic Listenable implementation. Embed it in a controller
// to give the controller change notifications:
//
//	type MyController struct {
//	    observe.Notifier
//	    // ...
//	}
//
// Notifier is safe for concurrent use. Listeners are invoked outside the
// internal lock, so a listener may add or remove listeners without
// deadlocking.
type Notifier struct {
	mu             sync.RWMutex
	listeners      map[int]func()
	nextListenerID int
	closed         bool
}

// NewNotifier creates an empty notifier. The zero value is also usable.
func NewNotifier() *Notifier {
	return &Notifier{listeners: make(map[int]func())}
}

// AddListener adds a callback that fires whenever Notify is called.
// Returns an unsubscribe function. After Close, the callback is never
// invoked and the returned function is a no-op.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[int]func())
	}
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.listeners, id)
		n.mu.Unlock()
	}
}

// Notify calls all registered listeners.
func (n *Notifier) Notify() {
	n.mu.RLock()
	listeners := make([]func(), 0, len(n.listeners))
	for _, fn := range n.listeners {
		listeners = append(listeners, fn)
	}
	n.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}

// Close drops all listeners. Further AddListener and Notify calls are no-ops.
func (n *Notifier) Close() {
	n.mu.Lock()
	n.closed = true
	n.listeners = nil
	n.mu.Unlock()
}

// Closed reports whether Close has been called.
func (n *Notifier) Closed() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.closed
}
