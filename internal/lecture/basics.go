package lecture

import (
	"errors"

	"github.com/olehluchkiv/golectures/internal/person"
	"github.com/olehluchkiv/golectures/internal/validate"
	"github.com/olehluchkiv/golectures/internal/weekday"
)

type wrapper struct {
	x int
}

func runSemantics(env *Env) error {
	a := 4
	b := a
	b = 5
	env.printf("a = %d, b = %d\n", a, b)

	w1 := &wrapper{x: 4}
	w2 := w1
	w2.x = 5
	env.printf("w1.x = %d, w2.x = %d (same object)\n", w1.x, w2.x)

	x := 44
	byValue(env, x)
	env.printf("After byValue, x = %d\n", x)

	w3 := &wrapper{x: 44}
	byPointer(env, w3)
	env.printf("After byPointer, w3.x = %d\n", w3.x)

	w4 := &wrapper{x: 44}
	reassign(env, w4)
	env.printf("After reassign, w4.x = %d (the pointer itself was copied)\n", w4.x)
	return nil
}

func byValue(env *Env, x int) {
	x = 99
	env.printf("Inside byValue, x = %d\n", x)
}

func byPointer(env *Env, w *wrapper) {
	w.x = 99
	env.printf("Inside byPointer, w.x = %d\n", w.x)
}

func reassign(env *Env, w *wrapper) {
	w = &wrapper{x: 99}
	env.printf("Inside reassign, w.x = %d\n", w.x)
}

func runEnums(env *Env) error {
	today := weekday.Thursday
	env.printf("Today is %s. %s\n", today, weekday.Verdict(today))

	for _, input := range []string{"friday", "Sunday", "Caturday"} {
		d, err := weekday.ParseDay(input)
		if errors.Is(err, weekday.ErrUnknownDay) {
			env.printf("%q: invalid day entered.\n", input)
			continue
		}
		env.printf("%q: %s\n", input, weekday.Verdict(d))
	}

	env.println("The whole week:")
	for _, d := range weekday.All() {
		env.printf("  %-9s weekend=%t\n", d, d.Weekend())
	}
	return nil
}

func runEncapsulation(env *Env) error {
	p, err := person.New("Bob", 1294573, 55000)
	if err != nil {
		return err
	}
	env.println(p)

	if err := p.SetName("Robert"); err != nil {
		return err
	}
	if err := p.SetSalary(60000); err != nil {
		return err
	}
	env.println(p)

	if err := p.SetSalary(-1); errors.Is(err, validate.ErrInvalidArgument) {
		env.printf("Rejected: %v\n", err)
	} else {
		return errors.New("negative salary was accepted")
	}
	env.println("Unchanged:", p)
	return nil
}
