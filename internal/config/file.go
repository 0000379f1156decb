package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	animate "github.com/wangfutao/animate.js"
	"github.com/wangfutao/animate.js/easing"
	"github.com/wangfutao/animate.js/transform"
)

// ErrUnknownKey indicates a TOML key with no matching field.
var ErrUnknownKey = errors.New("config: unknown key")

// RuleSpec is one [[rule]] table.
type RuleSpec struct {
	Easing    string   `toml:"easing"`
	Type      string   `toml:"type"`
	Direction string   `toml:"direction,omitempty"`
	From      *float64 `toml:"from"`
	To        *float64 `toml:"to"`
	Degrees   bool     `toml:"degrees,omitempty"`
}

// File is an animation definition.
//
//	duration_ms = 1000
//	iterations = "infinite"
//
//	[[rule]]
//	easing = "easeOutBounce"
//	type = "translate"
//	direction = "y"
//	from = 0
//	to = 200
type File struct {
	Name       string     `toml:"name,omitempty"`
	DurationMS float64    `toml:"duration_ms"`
	DelayMS    float64    `toml:"delay_ms,omitempty"`
	Iterations string     `toml:"iterations,omitempty"`
	CSSStep    float64    `toml:"css_step,omitempty"`
	Rules      []RuleSpec `toml:"rule"`
}

// LoadFile decodes path; unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &f, nil
}

// Decode reads a definition from r; unknown keys are rejected.
func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &f, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%s: %w", strings.Join(names, ", "), ErrUnknownKey)
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// Duration is DurationMS as a time.Duration.
func (f *File) Duration() time.Duration { return msToDuration(f.DurationMS) }

// Delay is DelayMS as a time.Duration.
func (f *File) Delay() time.Duration { return msToDuration(f.DelayMS) }

// IterationCount parses Iterations; empty means one.
func (f *File) IterationCount() (animate.IterationCount, error) {
	if f.Iterations == "" {
		return animate.Once, nil
	}
	return animate.ParseIterationCount(f.Iterations)
}

// Params converts every rule table, reporting the first invalid one.
func (f *File) Params() ([]animate.RuleParams, error) {
	out := make([]animate.RuleParams, 0, len(f.Rules))
	for i, r := range f.Rules {
		p, err := r.Params()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Animator builds an Animator with opts and every rule of f. A non-zero
// CSSStep in the file overrides the one in opts.
func (f *File) Animator(opts ...animate.Option) (*animate.Animator, error) {
	params, err := f.Params()
	if err != nil {
		return nil, err
	}
	a := animate.New(opts...)
	if f.CSSStep != 0 {
		if err = a.SetCSSStep(f.CSSStep); err != nil {
			return nil, err
		}
	}
	for i, p := range params {
		if _, err = a.AddRuleParams(p); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return a, nil
}

// Params validates the closed-set fields and copies the rest. A custom
// easing cannot be expressed in a file.
func (r RuleSpec) Params() (animate.RuleParams, error) {
	name := easing.Name(r.Easing)
	if name == easing.Custom {
		return animate.RuleParams{}, fmt.Errorf("easing %q: %w", r.Easing, animate.ErrMissingCustomEasing)
	}
	kind, err := transform.ParseKind(r.Type)
	if err != nil {
		return animate.RuleParams{}, err
	}
	axis, err := transform.ParseAxis(r.Direction)
	if err != nil {
		return animate.RuleParams{}, err
	}
	return animate.RuleParams{
		Easing:    name,
		Type:      kind,
		Direction: axis,
		From:      r.From,
		To:        r.To,
		UseDegree: r.Degrees,
	}, nil
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
