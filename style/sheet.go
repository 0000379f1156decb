// SPDX-License-Identifier: MIT

package style

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is the stylesheet collaborator: a keyed store of @keyframes rules.
type Registry interface {
	HasKeyframes(name string) bool
	InsertKeyframes(name, css string) error
}

// Rule is one installed @keyframes rule.
type Rule struct {
	Name string
	CSS  string
}

// Sheet is an in-memory Registry. The zero value is ready to use.
type Sheet struct {
	mu    sync.RWMutex
	rules []Rule
	index map[string]int
}

var _ Registry = (*Sheet)(nil)

// NewSheet returns an empty Sheet.
func NewSheet() *Sheet { return &Sheet{} }

// HasKeyframes reports whether a rule named name is installed.
func (s *Sheet) HasKeyframes(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[name]

	return ok
}

// InsertKeyframes appends a rule. Names are unique (ErrDuplicateRule).
func (s *Sheet) InsertKeyframes(name, css string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("Sheet.InsertKeyframes: %w", ErrEmptyName)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("Sheet.InsertKeyframes(%q): %w", name, ErrDuplicateRule)
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	s.index[name] = len(s.rules)
	s.rules = append(s.rules, Rule{Name: name, CSS: css})

	return nil
}

// Rule returns the installed rule named name.
func (s *Sheet) Rule(name string) (Rule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return Rule{}, false
	}

	return s.rules[i], true
}

// Rules returns the installed rules in insertion order.
func (s *Sheet) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)

	return out
}

// Len is the number of installed rules.
func (s *Sheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.rules)
}
