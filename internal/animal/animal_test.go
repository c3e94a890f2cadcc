package animal

import (
	"bytes"
	"errors"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/golectures/internal/validate"
)

// Compile-time shape of the family.
var (
	_ Mammal    = (*Dog)(nil)
	_ Mammal    = (*Cat)(nil)
	_ Monotreme = (*Platypus)(nil)
	_ EggLayer  = (*Bird)(nil)
	_ EggLayer  = (*Platypus)(nil)
	_ Animal    = (*Bird)(nil)
)

func zoo(t *testing.T) []Animal {
	t.Helper()
	dog, err := NewDog("Koro", 3, "White")
	require.NoError(t, err)
	cat, err := NewCat("Mona", 4, "Black")
	require.NoError(t, err)
	bird, err := NewBird("Lufel", 1)
	require.NoError(t, err)
	platypus, err := NewPlatypus("Perry", 7)
	require.NoError(t, err)
	return []Animal{dog, cat, bird, platypus}
}

func TestConstructors_RejectInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		make func() error
	}{
		{"dog empty name", func() error { _, err := NewDog("", 3, "White"); return err }},
		{"dog negative age", func() error { _, err := NewDog("Koro", -1, "White"); return err }},
		{"dog blank fur", func() error { _, err := NewDog("Koro", 3, "  "); return err }},
		{"dog empty fur", func() error { _, err := NewDog("Koro", 3, ""); return err }},
		{"cat empty name", func() error { _, err := NewCat("", 4, "Black"); return err }},
		{"cat blank fur", func() error { _, err := NewCat("Mona", 4, "\t"); return err }},
		{"bird empty name", func() error { _, err := NewBird("", 1); return err }},
		{"bird negative age", func() error { _, err := NewBird("Polly", -1); return err }},
		{"platypus empty name", func() error { _, err := NewPlatypus("", 4); return err }},
		{"platypus negative age", func() error { _, err := NewPlatypus("Bill", -1); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make()
			require.Error(t, err)
			assert.ErrorIs(t, err, validate.ErrInvalidArgument)
		})
	}
}

func TestNewPlatypus_FixedFur(t *testing.T) {
	p, err := NewPlatypus("Bill", 4)
	require.NoError(t, err)
	assert.Equal(t, "Brown", p.FurColor())
	assert.Equal(t, "Bill", p.Name())
	assert.Equal(t, 4, p.Age())
	assert.Equal(t, KindPlatypus, p.Kind())
}

func TestAgeZeroIsValid(t *testing.T) {
	b, err := NewBird("Chick", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Age())
}

func TestSetters_ValidateAndKeepOldValue(t *testing.T) {
	for _, a := range zoo(t) {
		t.Run(a.Kind().String(), func(t *testing.T) {
			oldName, oldAge := a.Name(), a.Age()

			assert.ErrorIs(t, a.SetName(""), validate.ErrInvalidArgument)
			assert.ErrorIs(t, a.SetAge(-5), validate.ErrInvalidArgument)
			assert.Equal(t, oldName, a.Name())
			assert.Equal(t, oldAge, a.Age())

			newName := randomdata.SillyName()
			newAge := randomdata.Number(0, 30)
			require.NoError(t, a.SetName(newName))
			require.NoError(t, a.SetAge(newAge))
			assert.Equal(t, newName, a.Name())
			assert.Equal(t, newAge, a.Age())
		})
	}
}

func TestSetAge_ErrorDetails(t *testing.T) {
	d, err := NewDog("Koro", 3, "White")
	require.NoError(t, err)

	err = d.SetAge(-1)
	var verr *validate.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "age", verr.Field)
}

func TestIdentity(t *testing.T) {
	animals := zoo(t)
	seen := make(map[uuid.UUID]bool)
	for _, a := range animals {
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.False(t, seen[a.ID()], "ids must be unique")
		seen[a.ID()] = true
	}

	a := animals[0]
	id := a.ID()
	require.NoError(t, a.SetName("Renamed"))
	assert.Equal(t, id, a.ID(), "renaming keeps identity")
}

func TestSpeak_DistinctPerVariant(t *testing.T) {
	want := map[Kind]string{
		KindDog:      "Woof!\n",
		KindCat:      "Meow!\n",
		KindBird:     "Tweet!\n",
		KindPlatypus: "Quack?\n",
	}
	for _, a := range zoo(t) {
		var buf bytes.Buffer
		a.Speak(&buf)
		assert.Equal(t, want[a.Kind()], buf.String(), a.Kind().String())
	}
}

func TestBathTime(t *testing.T) {
	for _, a := range zoo(t) {
		var buf bytes.Buffer
		a.BathTime(&buf)
		if a.Kind() == KindCat {
			assert.Equal(t, "Mona hates baths and ran away!\n", buf.String())
		} else {
			assert.Equal(t, a.Name()+" took a bath\n", buf.String())
		}
	}
}

func TestString(t *testing.T) {
	d, err := NewDog("Koro", 5, "White")
	require.NoError(t, err)
	assert.Equal(t, "Koro is 5 years old", d.String())
}

func TestPlayFetch(t *testing.T) {
	d, err := NewDog("Koro", 5, "White")
	require.NoError(t, err)
	var buf bytes.Buffer
	d.PlayFetch(&buf)
	assert.Equal(t, "Played fetch with Koro!\n", buf.String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Dog", KindDog.String())
	assert.Equal(t, "Platypus", KindPlatypus.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
