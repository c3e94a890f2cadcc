package animal

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTypeMismatch is returned when an Animal is narrowed to a type it does
// not implement.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError names the variant that was held and the type that was asked for.
type TypeMismatchError struct {
	From Kind
	To   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s is not %s", e.From, e.To)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// Narrow converts a to T, or fails with a *TypeMismatchError.
func Narrow[T any](a Animal) (T, error) {
	var zero T
	if a == nil {
		return zero, &TypeMismatchError{To: typeName[T]()}
	}
	t, ok := a.(T)
	if !ok {
		return zero, &TypeMismatchError{From: a.Kind(), To: typeName[T]()}
	}
	return t, nil
}

func AsEggLayer(a Animal) (EggLayer, error) { return Narrow[EggLayer](a) }
func AsMammal(a Animal) (Mammal, error)     { return Narrow[Mammal](a) }
func AsDog(a Animal) (*Dog, error)          { return Narrow[*Dog](a) }

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
