package npc

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Optional holds a value that may not have been specified yet.
// An absent Optional is different from one that holds the zero value of T.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// OrElse returns the held value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// IsZero reports absence. It drives omitzero (json) and omitempty (yaml),
// so a present empty value is still written out.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON treats null as absent.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML is only invoked for non-null nodes; a null node leaves the
// Optional absent.
func (o *Optional[T]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
