package animal

import (
	"fmt"
	"io"

	"github.com/olehluchkiv/golectures/internal/validate"
)

// Monotreme is an egg-laying, fur-bearing Animal. It repeats FurColor
// instead of sharing it with Mammal: taxonomy wins over reuse here.
type Monotreme interface {
	Animal
	EggLayer
	FurColor() string

	monotreme()
}

type monotremeBase struct {
	base
	furColor string
}

func newMonotremeBase(name string, age int, furColor string) (monotremeBase, error) {
	b, err := newBase(name, age)
	if err != nil {
		return monotremeBase{}, err
	}
	if err := validate.NonBlank("fur color", furColor); err != nil {
		return monotremeBase{}, err
	}
	return monotremeBase{base: b, furColor: furColor}, nil
}

func (m *monotremeBase) FurColor() string { return m.furColor }
func (m *monotremeBase) monotreme()       {}

func (m *monotremeBase) LayEgg(w io.Writer) {
	fmt.Fprintf(w, "%s laid an egg!\n", m.name)
}

// PlatypusFur is the fur color every platypus gets.
const PlatypusFur = "Brown"

// Platypus is the only Monotreme.
type Platypus struct {
	monotremeBase
}

func NewPlatypus(name string, age int) (*Platypus, error) {
	m, err := newMonotremeBase(name, age, PlatypusFur)
	if err != nil {
		return nil, fmt.Errorf("new platypus: %w", err)
	}
	return &Platypus{monotremeBase: m}, nil
}

func (p *Platypus) Kind() Kind { return KindPlatypus }

func (p *Platypus) Speak(w io.Writer) { fmt.Fprintln(w, "Quack?") }

// Bird lays eggs without belonging to any fur-bearing branch.
type Bird struct {
	base
}

func NewBird(name string, age int) (*Bird, error) {
	b, err := newBase(name, age)
	if err != nil {
		return nil, fmt.Errorf("new bird: %w", err)
	}
	return &Bird{base: b}, nil
}

func (b *Bird) Kind() Kind { return KindBird }

func (b *Bird) Speak(w io.Writer) { fmt.Fprintln(w, "Tweet!") }

func (b *Bird) LayEgg(w io.Writer) {
	fmt.Fprintf(w, "%s laid an egg!\n", b.name)
}
