/*
Package wm implements the floating window manager behind tuimail.

The package has three parts:
  - Store: the host-owned, ordered collection of windows plus the single
    monotonic z-order counter. It is the only writer of window records.
  - Manager and Frame: Manager yields one Frame per open window, each bound to
    close/update/bring-to-front callbacks. Frames never touch the store; they
    turn pointer input into Patch requests.
  - Pointer: the single pointer stream. At most one drag or resize gesture holds
    it at a time, and it is released on pointer-up or when the captured window
    closes.

Geometry is unit-agnostic. DefaultConfig uses the reference pixel values; the
terminal host passes cell-scaled values.

Example usage:

	store := wm.NewStore(wm.DefaultConfig())
	win, err := store.OpenWindow(wm.OpenConfig{Title: "New Message", Component: wm.ComponentCompose})
	if err != nil {
		// handle error
	}
	mgr := wm.NewManager(store, store.Config())
	var ptr wm.Pointer
	frame := mgr.Frame(win)
	_ = frame.PressTitleBar(&ptr, wm.Position{X: 120, Y: 55})
	_ = ptr.Move(wm.Position{X: 200, Y: 90})
	_ = ptr.Release(wm.Position{X: 200, Y: 90})
*/
package wm
