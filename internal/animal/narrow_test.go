package animal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsEggLayer_DogFails(t *testing.T) {
	dog, err := NewDog("Koro", 3, "White")
	require.NoError(t, err)

	var a Animal = dog
	layer, err := AsEggLayer(a)
	require.Error(t, err)
	assert.Nil(t, layer)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, KindDog, tm.From)
	assert.Equal(t, "EggLayer", tm.To)
	assert.Equal(t, "type mismatch: Dog is not EggLayer", err.Error())
}

func TestAsEggLayer_BirdSucceedsWithoutMutation(t *testing.T) {
	bird, err := NewBird("Polly", 2)
	require.NoError(t, err)

	var a Animal = bird
	layer, err := AsEggLayer(a)
	require.NoError(t, err)

	var buf bytes.Buffer
	layer.LayEgg(&buf)
	assert.Equal(t, "Polly laid an egg!\n", buf.String())
	assert.Equal(t, "Polly", bird.Name())
	assert.Equal(t, 2, bird.Age())
}

func TestAsEggLayer_Platypus(t *testing.T) {
	p, err := NewPlatypus("Bill", 4)
	require.NoError(t, err)

	layer, err := AsEggLayer(p)
	require.NoError(t, err)
	var buf bytes.Buffer
	layer.LayEgg(&buf)
	assert.Equal(t, "Bill laid an egg!\n", buf.String())
}

func TestAsMammal(t *testing.T) {
	for _, a := range zoo(t) {
		m, err := AsMammal(a)
		switch a.Kind() {
		case KindDog, KindCat:
			require.NoError(t, err)
			assert.NotEmpty(t, m.FurColor())
		default:
			assert.ErrorIs(t, err, ErrTypeMismatch, "%s is not a Mammal", a.Kind())
		}
	}
}

func TestAsDog(t *testing.T) {
	animals := zoo(t)

	d, err := AsDog(animals[0])
	require.NoError(t, err)
	assert.Equal(t, "Koro", d.Name())

	_, err = AsDog(animals[1])
	var tm *TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, KindCat, tm.From)
	assert.Equal(t, "Dog", tm.To)
}

func TestNarrow_Monotreme(t *testing.T) {
	animals := zoo(t)

	_, err := Narrow[Monotreme](animals[2])
	assert.ErrorIs(t, err, ErrTypeMismatch, "birds lay eggs but are not monotremes")

	m, err := Narrow[Monotreme](animals[3])
	require.NoError(t, err)
	assert.Equal(t, PlatypusFur, m.FurColor())
}

func TestNarrow_Nil(t *testing.T) {
	_, err := AsEggLayer(nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
