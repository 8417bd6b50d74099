// Package observe provides the listener primitives that formwork controllers
// use to tell their host UI that state changed.
//
// A host (a widget tree, a bubbletea model, a test) subscribes with
// AddListener and re-reads the controller's snapshots when the callback
// fires. AddListener always returns an unsubscribe function:
//
//	unsub := ctrl.AddListener(func() {
//	    // schedule a re-render
//	})
//	defer unsub()
//
// Notifier is the embeddable building block; Observable wraps a single
// typed value for hosts that want change notifications with the new value
// delivered directly.
package observe
