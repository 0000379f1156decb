// Package easing is a fixed registry of named easing curves.
//
// An easing curve maps animation progress t ∈ [0, 1] to eased progress.
// Outputs are NOT clamped: the Back and Elastic families overshoot [0, 1]
// by construction, and callers must tolerate that.
//
// The special name Custom is never registered; it tells the caller to use
// a user-supplied Func instead of a registry lookup.
//
// Curves follow the easings.net formulations.
//
//	f, err := easing.Lookup(easing.EaseInOutCubic)
//	if err != nil { ... }
//	eased := f(0.25)
package easing
