package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Optional holds a value that may or may not have been provided.
// It is the building block of partial updates: a zero value, false or empty
// string is still a provided value, distinct from Unset.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was provided.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrElse returns the value if provided, otherwise fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.Set
}

// UnmarshalJSON marks the Optional as provided unless the JSON value is null.
// An empty string for a non-string T is treated as not provided, which is
// what form-style clients send for a blank numeric input.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	if bytes.Equal(trimmed, []byte(`""`)) {
		var zero T
		if _, isString := any(zero).(string); !isString {
			*o = Optional[T]{}
			return nil
		}
	}
	var v T
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// MarshalJSON writes the value, or null when unset.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// FlexInt is an integer that also accepts a quoted decimal string in JSON,
// e.g. both 1500 and "1500".
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("%s is not an integer", trimmed)
	}
	*f = FlexInt(n)
	return nil
}

// Int64 returns f as an int64.
func (f FlexInt) Int64() int64 {
	return int64(f)
}
