package easing

import (
	"fmt"
	"math"
	"sort"
)

// Func maps progress t to eased progress. Pure; no clamping.
type Func func(t float64) float64

// Name selects a curve from the registry.
type Name string

// Registered curve names. Custom is the escape hatch for user functions.
const (
	Custom Name = "custom"

	Linear Name = "linear"

	EaseInSine    Name = "easeInSine"
	EaseOutSine   Name = "easeOutSine"
	EaseInOutSine Name = "easeInOutSine"

	EaseInQuad    Name = "easeInQuad"
	EaseOutQuad   Name = "easeOutQuad"
	EaseInOutQuad Name = "easeInOutQuad"

	EaseInCubic    Name = "easeInCubic"
	EaseOutCubic   Name = "easeOutCubic"
	EaseInOutCubic Name = "easeInOutCubic"

	EaseInQuart    Name = "easeInQuart"
	EaseOutQuart   Name = "easeOutQuart"
	EaseInOutQuart Name = "easeInOutQuart"

	EaseInQuint    Name = "easeInQuint"
	EaseOutQuint   Name = "easeOutQuint"
	EaseInOutQuint Name = "easeInOutQuint"

	EaseInExpo    Name = "easeInExpo"
	EaseOutExpo   Name = "easeOutExpo"
	EaseInOutExpo Name = "easeInOutExpo"

	EaseInCirc    Name = "easeInCirc"
	EaseOutCirc   Name = "easeOutCirc"
	EaseInOutCirc Name = "easeInOutCirc"

	EaseInBack    Name = "easeInBack"
	EaseOutBack   Name = "easeOutBack"
	EaseInOutBack Name = "easeInOutBack"

	EaseInElastic    Name = "easeInElastic"
	EaseOutElastic   Name = "easeOutElastic"
	EaseInOutElastic Name = "easeInOutElastic"

	EaseInBounce    Name = "easeInBounce"
	EaseOutBounce   Name = "easeOutBounce"
	EaseInOutBounce Name = "easeInOutBounce"
)

// Back and Elastic constants.
const (
	c1 = 1.70158
	c2 = c1 * 1.525
	c3 = c1 + 1
	c4 = (2 * math.Pi) / 3
	c5 = (2 * math.Pi) / 4.5
)

// Bounce constants.
const (
	n1 = 7.5625
	d1 = 2.75
)

// registry is read-only after package init.
var registry = map[Name]Func{
	Linear: func(t float64) float64 { return t },

	EaseInSine:    func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) },
	EaseOutSine:   func(t float64) float64 { return math.Sin(t * math.Pi / 2) },
	EaseInOutSine: func(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 },

	EaseInQuad:  func(t float64) float64 { return t * t },
	EaseOutQuad: func(t float64) float64 { return 1 - (1-t)*(1-t) },
	EaseInOutQuad: func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	},

	EaseInCubic:  func(t float64) float64 { return t * t * t },
	EaseOutCubic: func(t float64) float64 { return 1 - math.Pow(1-t, 3) },
	EaseInOutCubic: func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	},

	EaseInQuart:  func(t float64) float64 { return t * t * t * t },
	EaseOutQuart: func(t float64) float64 { return 1 - math.Pow(1-t, 4) },
	EaseInOutQuart: func(t float64) float64 {
		if t < 0.5 {
			return 8 * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 4)/2
	},

	EaseInQuint:  func(t float64) float64 { return t * t * t * t * t },
	EaseOutQuint: func(t float64) float64 { return 1 - math.Pow(1-t, 5) },
	EaseInOutQuint: func(t float64) float64 {
		if t < 0.5 {
			return 16 * t * t * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 5)/2
	},

	EaseInExpo: func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*t-10)
	},
	EaseOutExpo: func(t float64) float64 {
		if t == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*t)
	},
	EaseInOutExpo: func(t float64) float64 {
		switch {
		case t == 0:
			return 0
		case t == 1:
			return 1
		case t < 0.5:
			return math.Pow(2, 20*t-10) / 2
		default:
			return (2 - math.Pow(2, -20*t+10)) / 2
		}
	},

	EaseInCirc:  func(t float64) float64 { return 1 - math.Sqrt(1-math.Pow(t, 2)) },
	EaseOutCirc: func(t float64) float64 { return math.Sqrt(1 - math.Pow(t-1, 2)) },
	EaseInOutCirc: func(t float64) float64 {
		if t < 0.5 {
			return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
	},

	EaseInBack:  func(t float64) float64 { return c3*t*t*t - c1*t*t },
	EaseOutBack: func(t float64) float64 { return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2) },
	EaseInOutBack: func(t float64) float64 {
		if t < 0.5 {
			return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
		}
		return (math.Pow(2*t-2, 2)*((c2+1)*(t*2-2)+c2) + 2) / 2
	},

	EaseInElastic: func(t float64) float64 {
		switch t {
		case 0, 1:
			return t
		}
		return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
	},
	EaseOutElastic: func(t float64) float64 {
		switch t {
		case 0, 1:
			return t
		}
		return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
	},
	EaseInOutElastic: func(t float64) float64 {
		switch {
		case t == 0, t == 1:
			return t
		case t < 0.5:
			return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c5)) / 2
		default:
			return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c5))/2 + 1
		}
	},

	EaseInBounce:  func(t float64) float64 { return 1 - outBounce(1-t) },
	EaseOutBounce: outBounce,
	EaseInOutBounce: func(t float64) float64 {
		if t < 0.5 {
			return (1 - outBounce(1-2*t)) / 2
		}
		return (1 + outBounce(2*t-1)) / 2
	},
}

func outBounce(t float64) float64 {
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Lookup returns the registered curve for name.
// Custom and unregistered names fail with ErrUnknown.
func Lookup(name Name) (Func, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknown)
	}

	return f, nil
}

// IsValid reports whether name can be used as a rule selector:
// either a registered curve or Custom.
func IsValid(name Name) bool {
	if name == Custom {
		return true
	}
	_, ok := registry[name]

	return ok
}

// Names returns the registered curve names in ascending order.
// Custom is not included.
func Names() []Name {
	out := make([]Name, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
