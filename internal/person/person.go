// Package person is the encapsulation lecture: unexported fields reachable
// only through accessors, and setters that refuse bad values.
package person

import (
	"fmt"

	"github.com/olehluchkiv/golectures/internal/validate"
)

const (
	MinID = 1000000
	MaxID = 9999999
)

type Person struct {
	name   string
	id     int
	salary float64
}

// New validates every field before building the Person. The ID must be a
// seven-digit number and cannot change afterwards.
func New(name string, id int, salary float64) (*Person, error) {
	p := &Person{}
	if err := p.SetName(name); err != nil {
		return nil, err
	}
	if err := validate.Between("id", id, MinID, MaxID); err != nil {
		return nil, err
	}
	p.id = id
	if err := p.SetSalary(salary); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Person) Name() string    { return p.name }
func (p *Person) ID() int         { return p.id }
func (p *Person) Salary() float64 { return p.salary }

func (p *Person) SetName(name string) error {
	if err := validate.NonBlank("name", name); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Person) SetSalary(salary float64) error {
	if err := validate.NonNegative("salary", salary); err != nil {
		return err
	}
	p.salary = salary
	return nil
}

func (p *Person) String() string {
	return fmt.Sprintf("Name: %s, ID: %d, Salary: $%.2f", p.name, p.id, p.salary)
}
