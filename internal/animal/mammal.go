package animal

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/golectures/internal/validate"
)

// Mammal is a fur-bearing Animal. Platypus is deliberately not one.
type Mammal interface {
	Animal
	FurColor() string

	mammal()
}

type mammalBase struct {
	base
	furColor string
}

func newMammalBase(name string, age int, furColor string) (mammalBase, error) {
	b, err := newBase(name, age)
	if err != nil {
		return mammalBase{}, err
	}
	if err := validate.NonBlank("fur color", furColor); err != nil {
		return mammalBase{}, err
	}
	return mammalBase{base: b, furColor: furColor}, nil
}

func (m *mammalBase) FurColor() string { return m.furColor }
func (m *mammalBase) mammal()          {}

// Dog is a Mammal that can also play fetch.
type Dog struct {
	mammalBase
}

func NewDog(name string, age int, furColor string) (*Dog, error) {
	m, err := newMammalBase(name, age, furColor)
	if err != nil {
		return nil, fmt.Errorf("new dog: %w", err)
	}
	return &Dog{mammalBase: m}, nil
}

func (d *Dog) Kind() Kind { return KindDog }

func (d *Dog) Speak(w io.Writer) { fmt.Fprintln(w, "Woof!") }

func (d *Dog) PlayFetch(w io.Writer) {
	fmt.Fprintf(w, "Played fetch with %s!\n", d.name)
}

// Cat is a Mammal that refuses baths.
type Cat struct {
	mammalBase
}

func NewCat(name string, age int, furColor string) (*Cat, error) {
	m, err := newMammalBase(name, age, furColor)
	if err != nil {
		return nil, fmt.Errorf("new cat: %w", err)
	}
	return &Cat{mammalBase: m}, nil
}

func (c *Cat) Kind() Kind { return KindCat }

func (c *Cat) Speak(w io.Writer) { fmt.Fprintln(w, "Meow!") }

func (c *Cat) BathTime(w io.Writer) {
	fmt.Fprintf(w, "%s hates baths and ran away!\n", c.name)
}
