package lecture

import (
	"errors"
	"fmt"

	"github.com/olehluchkiv/golectures/internal/animal"
	"github.com/olehluchkiv/golectures/internal/container"
	"github.com/olehluchkiv/golectures/internal/validate"
)

func runInheritance(env *Env) error {
	koro, err := animal.NewDog("Koro", 5, "White")
	if err != nil {
		return err
	}
	mona, err := animal.NewCat("Mona", 7, "Gray")
	if err != nil {
		return err
	}

	var a1, a2 animal.Animal = koro, mona
	a1.Speak(env.Out)
	a2.Speak(env.Out)
	koro.PlayFetch(env.Out)

	env.println(koro)
	env.println(mona)
	env.printf("%s has %s fur\n", mona.Name(), mona.FurColor())
	return nil
}

func runPolymorphism(env *Env) error {
	specs := []struct {
		kind animal.Kind
		name string
		age  int
	}{
		{animal.KindCat, "Oliver", 17},
		{animal.KindDog, "Abbey", 16},
		{animal.KindCat, "Pepper", 6},
		{animal.KindDog, "Koro", 5},
	}

	var animals []animal.Animal
	for _, s := range specs {
		var (
			a   animal.Animal
			err error
		)
		switch s.kind {
		case animal.KindDog:
			a, err = animal.NewDog(s.name, s.age, "Brown")
		case animal.KindCat:
			a, err = animal.NewCat(s.name, s.age, "Black")
		}
		if err != nil {
			return err
		}
		animals = append(animals, a)
	}

	for _, a := range animals {
		env.println(a)
		a.Speak(env.Out)
		env.println("Bath time!")
		a.BathTime(env.Out)
		env.printf("Hey %s, want to play fetch?\n", a.Name())
		if d, err := animal.AsDog(a); err == nil {
			d.PlayFetch(env.Out)
		} else {
			env.printf("No thanks, %s doesn't like fetch.\n", a.Name())
		}
	}

	first := animals[0]
	if err := first.SetAge(-3); errors.Is(err, validate.ErrInvalidArgument) {
		env.printf("Rejected: %v. %s\n", err, first)
	} else {
		return errors.New("negative age was accepted")
	}
	return nil
}

func runInterfaces(env *Env) error {
	bill, err := animal.NewPlatypus("Bill", 4)
	if err != nil {
		return err
	}
	polly, err := animal.NewBird("Polly", 2)
	if err != nil {
		return err
	}

	for _, layer := range []animal.EggLayer{bill, polly} {
		layer.LayEgg(env.Out)
	}

	koro, err := animal.NewDog("Koro", 3, "White")
	if err != nil {
		return err
	}
	mona, err := animal.NewCat("Mona", 4, "Black")
	if err != nil {
		return err
	}

	for _, a := range []animal.Animal{koro, mona, polly, bill} {
		a.Speak(env.Out)
		layer, err := animal.AsEggLayer(a)
		if err != nil {
			var tm *animal.TypeMismatchError
			if !errors.As(err, &tm) {
				return err
			}
			env.printf("  (%v)\n", err)
			continue
		}
		layer.LayEgg(env.Out)
	}
	return nil
}

func runGenerics(env *Env) error {
	c1 := container.New(1)
	c1.SetValue(2)
	c2 := container.New(1.1)
	c2.SetValue(2.2)
	c3 := container.New("hello")
	c3.SetValue("world")
	env.println(c1.Value(), c2.Value(), c3.Value())

	dog, err := animal.NewDog("Koro", 3, "White")
	if err != nil {
		return err
	}
	cat, err := animal.NewCat("Mona", 5, "Black")
	if err != nil {
		return err
	}
	bird, err := animal.NewBird("Sunny", 1)
	if err != nil {
		return err
	}
	platypus, err := animal.NewPlatypus("Bill", 4)
	if err != nil {
		return err
	}
	printAll(env, []animal.Animal{dog, cat, bird, platypus})

	anyone := container.NewBarn[animal.Animal](dog)
	for _, a := range []animal.Animal{dog, cat, bird, platypus} {
		anyone.SetValue(a)
		if err := anyone.Visit(env.Out); err != nil {
			return err
		}
	}

	mammals := container.NewBarn[animal.Mammal](dog)
	for _, m := range []animal.Mammal{dog, cat} {
		mammals.SetValue(m)
		if err := mammals.Visit(env.Out); err != nil {
			return err
		}
	}
	env.println("(a Barn[Mammal] cannot be given Bill the platypus: it does not compile)")
	return nil
}

func printAll[T any](env *Env, items []T) {
	env.printf("[ ")
	for _, it := range items {
		env.printf("%s ", fmt.Sprint(it))
	}
	env.println("]")
}
