// Package keyframe holds sampled (progress, transform) pairs.
//
// Keyframes is an ordered, progress-unique collection: adding a keyframe
// whose progress is already present is a silent no-op. Ordering is NOT
// automatic; call Sort before Nearest.
//
// Nearest brackets the query between two neighbours with a binary search
// and resolves it with one of three policies:
//
//	Round  closest neighbour; an exact tie favours the lower one
//	Floor  the lower neighbour, unless the upper one matches exactly
//	Ceil   the upper neighbour, unless the lower one matches exactly
//
// Below the first keyframe only the first is a candidate; at or above the
// last only the last is.
package keyframe
