package keyframe

import (
	"fmt"
	"math"
	"sort"

	"github.com/wangfutao/animate.js/transform"
)

// Keyframe is one sampled animation state. The unit of Progress is
// caller-defined: normalized [0,1] for stylesheet sampling, milliseconds
// for live playback.
type Keyframe struct {
	Progress  float64
	Transform *transform.Transform3D
}

// Method is a nearest-neighbour policy.
type Method string

const (
	Round Method = "round"
	Floor Method = "floor"
	Ceil  Method = "ceil"
)

// ParseMethod validates s; the empty string means Round.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case "":
		return Round, nil
	case Round, Floor, Ceil:
		return m, nil
	}

	return "", fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Keyframes is an ordered collection with unique progress values.
// The zero value is an empty collection ready to use.
type Keyframes struct {
	frames []Keyframe
}

// New builds a collection from frames, dropping later duplicates.
func New(frames ...Keyframe) *Keyframes {
	k := &Keyframes{frames: make([]Keyframe, 0, len(frames))}
	for _, f := range frames {
		k.Add(f)
	}

	return k
}

// Add appends f unless its progress is already present (silent no-op).
// Reports whether f was added.
func (k *Keyframes) Add(f Keyframe) bool {
	if k.Has(f.Progress) {
		return false
	}
	k.frames = append(k.frames, f)

	return true
}

// Has reports whether a keyframe with exactly this progress exists.
func (k *Keyframes) Has(progress float64) bool {
	for _, f := range k.frames {
		if f.Progress == progress {
			return true
		}
	}

	return false
}

// Sort orders the collection by ascending progress (stable).
func (k *Keyframes) Sort() {
	sort.SliceStable(k.frames, func(i, j int) bool {
		return k.frames[i].Progress < k.frames[j].Progress
	})
}

// Len is the number of keyframes.
func (k *Keyframes) Len() int { return len(k.frames) }

// IsEmpty reports Len() == 0.
func (k *Keyframes) IsEmpty() bool { return len(k.frames) == 0 }

// Get returns the keyframe at index i.
func (k *Keyframes) Get(i int) (Keyframe, error) {
	if k.IsEmpty() {
		return Keyframe{}, fmt.Errorf("Get(%d): %w", i, ErrEmpty)
	}
	if i < 0 || i >= len(k.frames) {
		return Keyframe{}, fmt.Errorf("Get(%d) len=%d: %w", i, len(k.frames), ErrOutOfRange)
	}

	return k.frames[i], nil
}

// First is Get(0).
func (k *Keyframes) First() (Keyframe, error) { return k.Get(0) }

// Last is Get(Len()-1).
func (k *Keyframes) Last() (Keyframe, error) { return k.Get(len(k.frames) - 1) }

// All returns a copy of the keyframe slice in current order.
// The transforms are shared, not cloned.
func (k *Keyframes) All() []Keyframe {
	out := make([]Keyframe, len(k.frames))
	copy(out, k.frames)

	return out
}

// Nearest returns a copy of the keyframe nearest to progress under method,
// or nil when the collection is empty. The collection must be sorted;
// on unsorted input the result is unspecified.
func (k *Keyframes) Nearest(progress float64, method Method) (*Keyframe, error) {
	if method == "" {
		method = Round
	}
	switch method {
	case Round, Floor, Ceil:
	default:
		return nil, fmt.Errorf("Nearest(%v, %q): %w", progress, method, ErrUnknownMethod)
	}
	if math.IsNaN(progress) {
		return nil, fmt.Errorf("Nearest: %w", ErrInvalidProgress)
	}
	n := len(k.frames)
	if n == 0 {
		return nil, nil
	}

	var left, right *Keyframe
	switch {
	case progress < k.frames[0].Progress:
		right = &k.frames[0]
	case progress >= k.frames[n-1].Progress:
		left = &k.frames[n-1]
	default:
		// First index whose progress exceeds the query; 1 ≤ idx ≤ n-1 here.
		idx := sort.Search(n, func(i int) bool { return k.frames[i].Progress > progress })
		left, right = &k.frames[idx-1], &k.frames[idx]
	}

	p1, p2 := -math.MaxFloat64, math.MaxFloat64
	if left != nil {
		p1 = left.Progress
	}
	if right != nil {
		p2 = right.Progress
	}

	var pick *Keyframe
	switch method {
	case Floor:
		pick = left
		if p2 == progress {
			pick = right
		}
	case Ceil:
		pick = right
		if p1 == progress {
			pick = left
		}
	default: // ties go left
		pick = left
		if p2-progress < progress-p1 {
			pick = right
		}
	}
	if pick == nil { // one-sided bracket: the lone candidate wins
		pick = left
		if pick == nil {
			pick = right
		}
	}
	out := *pick

	return &out, nil
}
