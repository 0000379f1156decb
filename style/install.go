// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/wangfutao/animate.js/keyframe"
)

const opInstall = "InstallKeyframes"

func styleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// InstallKeyframes inserts kfs into reg as "@keyframes <name> {...}".
// An existing rule of the same name is left untouched and nil is returned.
// kfs is rendered in its current order, so callers sort it first.
func InstallKeyframes(reg Registry, name string, kfs *keyframe.Keyframes) error {
	if reg == nil {
		return styleErrorf(opInstall, ErrNilRegistry)
	}
	if v := reflect.ValueOf(reg); v.Kind() == reflect.Ptr && v.IsNil() {
		return styleErrorf(opInstall, ErrNilRegistry)
	}
	if reg.HasKeyframes(name) {
		return nil
	}
	if kfs == nil || kfs.IsEmpty() {
		return styleErrorf(opInstall, ErrEmptyKeyframes)
	}
	if err := reg.InsertKeyframes(name, KeyframesRule(name, kfs)); err != nil {
		return styleErrorf(opInstall, err)
	}

	return nil
}

// KeyframesRule renders the rule text without installing it.
func KeyframesRule(name string, kfs *keyframe.Keyframes) string {
	var b strings.Builder
	b.WriteString("@keyframes ")
	b.WriteString(name)
	b.WriteString(" {")
	for _, f := range kfs.All() {
		b.WriteString(Percent(f.Progress))
		b.WriteString(" { transform: ")
		b.WriteString(f.Transform.CSS())
		b.WriteString(" } ")
	}
	b.WriteString("}")

	return b.String()
}

// percentPrecision keeps six decimals in a percentage.
const percentPrecision = 1e6

// Percent formats a normalized progress as a CSS percentage rounded to six
// decimals. -0 prints as 0%.
func Percent(progress float64) string {
	p := math.Round(progress*100*percentPrecision) / percentPrecision
	if p == 0 {
		p = 0
	}

	return strconv.FormatFloat(p, 'g', -1, 64) + "%"
}
