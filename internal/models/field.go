package models

import (
	"bytes"
	"encoding/json"
)

// Field is an optional request value that remembers whether the key was present and whether
// it was an explicit null. An explicit empty string is a value; an absent key is not.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a Field holding an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Interface returns the stored representation: nil for null, the value otherwise.
func (f Field[T]) Interface() interface{} {
	if f.Null {
		return nil
	}
	return f.Value
}

// OrNil is the value when present and non-null, otherwise nil.
func (f Field[T]) OrNil() interface{} {
	if !f.Set {
		return nil
	}
	return f.Interface()
}

// putIfSet copies f into m under key when the request carried it.
func putIfSet[T any](m map[string]interface{}, key string, f Field[T]) {
	if f.Set {
		m[key] = f.Interface()
	}
}
