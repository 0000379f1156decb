// SPDX-License-Identifier: MIT

package animate

import (
	"fmt"
	"math"

	"github.com/wangfutao/animate.js/easing"
	"github.com/wangfutao/animate.js/transform"
)

// RuleParams describes one rule. From and To are pointers so that an absent
// bound is distinguishable from zero; Float builds them inline.
type RuleParams struct {
	// Easing selects a registry curve, or easing.Custom.
	Easing easing.Name
	// CustomEasing is required iff Easing == easing.Custom.
	CustomEasing easing.Func
	// Type is the single operation the rule contributes.
	Type transform.Kind
	// Direction is required for translate. Rotate defaults to z, scale to
	// uniform.
	Direction transform.Axis
	// From and To bound the interpolation, in the caller's unit.
	From, To *float64
	// UseDegree marks From/To as degrees; only rotate honours it.
	UseDegree bool
}

// Float returns a pointer to v.
func Float(v float64) *float64 { return &v }

// Rule is an immutable animation rule. Missing required fields are
// reported by the accessor that reads them, not by NewRule.
type Rule struct {
	easing    easing.Name
	custom    easing.Func
	kind      transform.Kind
	direction transform.Axis
	from, to  *float64
	useDegree bool
}

// NewRule validates the fields whose absence cannot wait: a custom selector
// without a function, and values outside the closed easing, kind and axis
// sets.
func NewRule(p RuleParams) (*Rule, error) {
	switch {
	case p.Easing == easing.Custom:
		if p.CustomEasing == nil {
			return nil, ruleErrorf("NewRule", ErrMissingCustomEasing)
		}
	case p.Easing != "" && !easing.IsValid(p.Easing):
		return nil, ruleErrorf("NewRule", fmt.Errorf("%q: %w", p.Easing, ErrUnknownEasing))
	}
	if p.Type != "" {
		if _, err := transform.ParseKind(string(p.Type)); err != nil {
			return nil, ruleErrorf("NewRule", err)
		}
	}
	if _, err := transform.ParseAxis(string(p.Direction)); err != nil {
		return nil, ruleErrorf("NewRule", err)
	}

	r := &Rule{
		easing:    p.Easing,
		kind:      p.Type,
		direction: p.Direction,
		useDegree: p.UseDegree,
	}
	if p.Easing == easing.Custom {
		r.custom = p.CustomEasing
	}
	if p.From != nil {
		r.from = Float(*p.From)
	}
	if p.To != nil {
		r.to = Float(*p.To)
	}

	return r, nil
}

func ruleErrorf(tag string, err error) error {
	return fmt.Errorf("Rule.%s: %w", tag, err)
}

// Easing is the selector as given.
func (r *Rule) Easing() easing.Name { return r.easing }

// UseDegree reports the degree flag as given.
func (r *Rule) UseDegree() bool { return r.useDegree }

// Type returns the operation kind.
func (r *Rule) Type() (transform.Kind, error) {
	if r.kind == "" {
		return "", ruleErrorf("Type", ErrMissingType)
	}

	return r.kind, nil
}

// Direction returns the axis; AxisNone is legal for rotate and scale only.
func (r *Rule) Direction() (transform.Axis, error) {
	kind, err := r.Type()
	if err != nil {
		return transform.AxisNone, err
	}
	if kind == transform.KindTranslate && r.direction == transform.AxisNone {
		return transform.AxisNone, ruleErrorf("Direction", ErrMissingDirection)
	}

	return r.direction, nil
}

// From returns the start value, in radians for a degree-based rotation.
func (r *Rule) From() (float64, error) { return r.bound("From", r.from) }

// To returns the end value, in radians for a degree-based rotation.
func (r *Rule) To() (float64, error) { return r.bound("To", r.to) }

func (r *Rule) bound(tag string, v *float64) (float64, error) {
	if v == nil {
		return 0, ruleErrorf(tag, ErrMissingRange)
	}
	if r.useDegree && r.kind == transform.KindRotate {
		return *v * math.Pi / 180, nil
	}

	return *v, nil
}

// EasingFunc resolves the curve: the custom function or a registry entry.
func (r *Rule) EasingFunc() (easing.Func, error) {
	switch r.easing {
	case "":
		return nil, ruleErrorf("EasingFunc", ErrMissingEasing)
	case easing.Custom:
		if r.custom == nil {
			return nil, ruleErrorf("EasingFunc", ErrMissingCustomEasing)
		}
		return r.custom, nil
	}
	fn, err := easing.Lookup(r.easing)
	if err != nil {
		return nil, ruleErrorf("EasingFunc", fmt.Errorf("%w: %w", ErrUnknownEasing, err))
	}

	return fn, nil
}

// Value is from + (to-from)·ease(t).
func (r *Rule) Value(t float64) (float64, error) {
	fn, err := r.EasingFunc()
	if err != nil {
		return 0, err
	}
	from, err := r.From()
	if err != nil {
		return 0, err
	}
	to, err := r.To()
	if err != nil {
		return 0, err
	}

	return from + (to-from)*fn(t), nil
}

// Transform builds the single-operation transform of this rule at t.
func (r *Rule) Transform(t float64) (*transform.Transform3D, error) {
	kind, err := r.Type()
	if err != nil {
		return nil, err
	}
	axis, err := r.Direction()
	if err != nil {
		return nil, err
	}
	v, err := r.Value(t)
	if err != nil {
		return nil, err
	}
	m := transform.New()
	if err = m.Apply(kind, v, axis); err != nil {
		return nil, ruleErrorf("Transform", err)
	}

	return m, nil
}
