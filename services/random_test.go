package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRandomizerBounds(t *testing.T) {
	r := NewRandomizer(11)
	for i := 0; i < 500; i++ {
		n := r.Between(8, 27)
		assert.GreaterOrEqual(t, n, 8)
		assert.LessOrEqual(t, n, 27)

		d := r.Duration(2*time.Second, 5*time.Second)
		assert.GreaterOrEqual(t, d, 2*time.Second)
		assert.LessOrEqual(t, d, 5*time.Second)
	}
	assert.Equal(t, 3, r.Between(3, 3))
	assert.Equal(t, time.Second, r.Duration(time.Second, time.Second))
}

func TestRandomizerIsDeterministicForASeed(t *testing.T) {
	a, b := NewRandomizer(99), NewRandomizer(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
