// Package patch provides presence-tagged optional fields for partial
// updates. A plain pointer cannot distinguish "key absent" from "key: null",
// and that distinction is load-bearing for PATCH semantics: absent means
// leave the stored value untouched, null means clear it.
package patch

import "encoding/json"

// Field is an optional JSON value that remembers whether the key was
// present in the payload at all.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// which is what flips the set flag.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

// Set reports whether the key appeared in the payload.
func (f Field[T]) Set() bool { return f.set }

// Null reports whether the key was explicitly null.
func (f Field[T]) Null() bool { return f.set && f.null }

// Value returns the decoded value; only meaningful when Set and not Null.
func (f Field[T]) Value() T { return f.value }
