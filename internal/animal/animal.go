// Package animal is the closed animal family used by the inheritance,
// polymorphism, interfaces and generics lectures.
//
// The family is sealed: only Dog, Cat, Bird and Platypus implement Animal.
// Two independent axes describe each variant. Ancestry is Mammal or Monotreme
// (or neither, for Bird), and capability is EggLayer. Bird and Platypus both
// lay eggs but share no ancestor below Animal.
//
// All output goes to an io.Writer supplied by the caller.
package animal

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/olehluchkiv/golectures/internal/validate"
)

// Kind tags the concrete variant behind an Animal.
type Kind int

const (
	KindDog Kind = iota + 1
	KindCat
	KindBird
	KindPlatypus
)

func (k Kind) String() string {
	switch k {
	case KindDog:
		return "Dog"
	case KindCat:
		return "Cat"
	case KindBird:
		return "Bird"
	case KindPlatypus:
		return "Platypus"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Animal is the behavior every variant shares.
type Animal interface {
	ID() uuid.UUID
	Name() string
	Age() int
	SetName(name string) error
	SetAge(age int) error
	Kind() Kind
	Speak(w io.Writer)
	BathTime(w io.Writer)
	String() string

	sealed()
}

// EggLayer is a capability, independent of ancestry.
type EggLayer interface {
	LayEgg(w io.Writer)
}

// base carries the fields and validated setters every variant embeds.
type base struct {
	id   uuid.UUID
	name string
	age  int
}

func newBase(name string, age int) (base, error) {
	b := base{id: uuid.New()}
	if err := b.SetName(name); err != nil {
		return base{}, err
	}
	if err := b.SetAge(age); err != nil {
		return base{}, err
	}
	return b, nil
}

func (b *base) ID() uuid.UUID { return b.id }
func (b *base) Name() string  { return b.name }
func (b *base) Age() int      { return b.age }

// SetName replaces the name. An empty name is rejected and the old one kept.
func (b *base) SetName(name string) error {
	if err := validate.NonEmpty("name", name); err != nil {
		return err
	}
	b.name = name
	return nil
}

// SetAge replaces the age. A negative age is rejected and the old one kept.
func (b *base) SetAge(age int) error {
	if err := validate.NonNegative("age", age); err != nil {
		return err
	}
	b.age = age
	return nil
}

// BathTime is the default; variants may shadow it.
func (b *base) BathTime(w io.Writer) {
	fmt.Fprintf(w, "%s took a bath\n", b.name)
}

func (b *base) String() string {
	return fmt.Sprintf("%s is %d years old", b.name, b.age)
}

func (b *base) sealed() {}
