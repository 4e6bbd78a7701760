// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"strings"
)

// ValidationMessage describes a single violation found while
// validating an instance. Two messages are considered equal when
// their Type, Code, Path, and Arguments match; the rendered Message
// text is informational only.
type ValidationMessage struct {
	// Type is the keyword that produced the message, such as
	// "minItems" or "required".
	Type string `json:"type"`
	// Code is the short error code key of the keyword.
	Code string `json:"code"`
	// Path is the pointer-like location of the failing value within
	// the instance, such as "$.items[3].name".
	Path string `json:"path"`
	// Arguments holds keyword-specific values, such as the limit
	// that was exceeded.
	Arguments []string `json:"arguments"`
	// Message is the rendered human-readable text.
	Message string `json:"message"`
}

// messageKey is the identity of a message for set membership.
type messageKey struct {
	typ  string
	code string
	path string
	args string
}

// key returns the identity of m, ignoring the rendered text.
func (m *ValidationMessage) key() messageKey {
	return messageKey{
		typ:  m.Type,
		code: m.Code,
		path: m.Path,
		args: strings.Join(m.Arguments, "\x00"),
	}
}

// MessageSet is an ordered collection of validation messages with
// set semantics: adding a message whose (type, code, path, arguments)
// identity is already present is a no-op, and iteration preserves
// first-insertion order.
type MessageSet struct {
	keys map[messageKey]bool
	msgs []ValidationMessage
}

// NewMessageSet returns an empty message set.
func NewMessageSet() *MessageSet {
	return &MessageSet{}
}

// Add inserts a message into the set.
func (s *MessageSet) Add(m ValidationMessage) {
	key := m.key()
	if s.keys[key] {
		return
	}
	if s.keys == nil {
		s.keys = make(map[messageKey]bool)
	}
	s.keys[key] = true
	s.msgs = append(s.msgs, m)
}

// Merge inserts every message of o into s.
// A nil o is permitted and adds nothing.
func (s *MessageSet) Merge(o *MessageSet) {
	if o == nil {
		return
	}
	for _, m := range o.msgs {
		s.Add(m)
	}
}

// Messages returns the messages in insertion order.
// The returned slice must not be modified.
func (s *MessageSet) Messages() []ValidationMessage {
	if s == nil {
		return nil
	}
	return s.msgs
}

// Len returns the number of distinct messages in the set.
func (s *MessageSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.msgs)
}

// Empty reports whether the set holds no messages.
func (s *MessageSet) Empty() bool {
	return s.Len() == 0
}

// Equal reports whether s and o hold the same messages,
// compared as sets by message identity.
func (s *MessageSet) Equal(o *MessageSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, m := range o.Messages() {
		if !s.keys[m.key()] {
			return false
		}
	}
	return true
}

// String returns a readable rendering of the set, one message per line.
func (s *MessageSet) String() string {
	var sb strings.Builder
	for i, m := range s.Messages() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.Message)
	}
	return sb.String()
}
