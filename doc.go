// SPDX-License-Identifier: MIT

// Package animate composes time-parameterized 3D transforms from a list of
// declarative animation rules.
//
// A Rule interpolates one operation (translate, rotate or scale) between
// from and to along an easing curve. An Animator owns an ordered rule list
// and evaluates it at a normalized progress t in [0,1]:
//
//	composite = I
//	for each rule r:  composite = composite × r.Transform(t)
//
// Translate rules always evaluate first: the rule list is kept as a stable
// partition (translate rules in insertion order, then every other rule in
// insertion order).
//
// Three ways to consume an Animator:
//
//   - Evaluate(t) returns the composite transform for a single progress.
//   - Sample(duration, step) returns a keyframe table, memoized per
//     (duration, step) in a bounded LRU cache. Rules added after a table
//     was cached do NOT invalidate it.
//   - RunLive drives a LiveTarget frame by frame; RunDeclarative bakes a
//     @keyframes rule into a style.Registry and binds it to a style.Target.
//
// Quick start:
//
//	a := animate.New()
//	_, err := a.AddRuleParams(animate.RuleParams{
//		Easing:    easing.Linear,
//		Type:      transform.KindTranslate,
//		Direction: transform.AxisX,
//		From:      animate.Float(0),
//		To:        animate.Float(100),
//	})
//	m, _ := a.Evaluate(0.5) // translate x by 50
//
// Sub-packages:
//
//	matrix/     — row-major Dense matrices, Mul, validators
//	transform/  — 4×4 Transform3D, CSS matrix3d() rendering
//	easing/     — named easing curves
//	keyframe/   — (progress, transform) tables with nearest lookup
//	style/      — stylesheet registry and element binding
package animate
