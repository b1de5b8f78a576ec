// Package sheet holds compiled style rules for a render context.
//
// A Sheet is the server-side stand-in for a live document style sheet: an
// ordered list of rule strings plus the nonce that emitted style elements
// must carry.
package sheet

import (
	"strings"
	"sync"
)

// Sheet is an append-only list of compiled rules. It is safe for
// concurrent use.
type Sheet struct {
	mu    sync.Mutex
	key   string
	nonce string
	rules []string
}

// New creates an empty sheet for the given cache key.
func New(key, nonce string) *Sheet {
	return &Sheet{key: key, nonce: nonce}
}

// Key returns the cache key the sheet was created for.
func (s *Sheet) Key() string {
	return s.key
}

// Nonce returns the CSP nonce for emitted style elements.
func (s *Sheet) Nonce() string {
	return s.nonce
}

// Insert appends rules in order.
func (s *Sheet) Insert(rules ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rules...)
}

// Rules returns a copy of the inserted rules.
func (s *Sheet) Rules() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of inserted rules.
func (s *Sheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// String returns all rules concatenated.
func (s *Sheet) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.rules, "")
}

// Flush removes every rule.
func (s *Sheet) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = nil
}
