// SPDX-License-Identifier: MIT

package transform

import "fmt"

// Axis selects a direction for translate/scale or a rotation axis.
// AxisNone means "unspecified": uniform for Scale, z for Rotate, and a
// no-op for Translate.
type Axis string

const (
	AxisNone Axis = ""
	AxisX    Axis = "x"
	AxisY    Axis = "y"
	AxisZ    Axis = "z"
)

// ParseAxis validates s as an Axis.
func ParseAxis(s string) (Axis, error) {
	switch a := Axis(s); a {
	case AxisNone, AxisX, AxisY, AxisZ:
		return a, nil
	}

	return AxisNone, fmt.Errorf("ParseAxis(%q): %w", s, ErrUnknownAxis)
}

// Kind is the single operation a rule contributes.
type Kind string

const (
	KindTranslate Kind = "translate"
	KindRotate    Kind = "rotate"
	KindScale     Kind = "scale"
)

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTranslate, KindRotate, KindScale:
		return k, nil
	}

	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}
