// SPDX-License-Identifier: MIT

// Package style models the stylesheet side of declarative playback.
//
// A Registry stores named @keyframes rules. InstallKeyframes renders a
// sampled keyframe table into one rule body and inserts it once; a second
// install under the same name is skipped. Sheet is an in-memory Registry
// safe for concurrent use, and Element records the style properties a
// Target receives, which is what tests and the CLI observe.
//
// Rule body format (one block per keyframe, progress scaled by 100):
//
//	@keyframes <name> {0% { transform: matrix3d(...) } 50% { transform: matrix3d(...) } }
package style
