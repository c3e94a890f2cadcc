// Package container shows unbounded and bounded type parameters side by side.
package container

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/olehluchkiv/golectures/internal/animal"
)

// ErrEmptyBarn is returned when Visit finds nothing in the barn.
var ErrEmptyBarn = errors.New("barn is empty")

// Container holds a single value of any type. The zero value is ready to use.
type Container[T any] struct {
	value T
}

func New[T any](v T) *Container[T] {
	return &Container[T]{value: v}
}

func (c *Container[T]) Value() T     { return c.value }
func (c *Container[T]) SetValue(v T) { c.value = v }

// Barn is a Container restricted to animals. Barn[animal.Mammal] accepts dogs
// and cats; handing it a *Bird or *Platypus does not compile.
type Barn[T animal.Animal] struct {
	Container[T]
}

func NewBarn[T animal.Animal](v T) *Barn[T] {
	return &Barn[T]{Container: Container[T]{value: v}}
}

// Visit greets the resident and lets it speak.
func (b *Barn[T]) Visit(w io.Writer) error {
	if isNil(b.value) {
		return ErrEmptyBarn
	}
	fmt.Fprintf(w, "Visiting %s...\n", b.value.Name())
	b.value.Speak(w)
	return nil
}

// isNil catches both a nil interface and a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
