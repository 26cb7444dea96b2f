package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_StandardTotal(t *testing.T) {
	c := NewCalculator(100)

	assert.Equal(t, 280.0, c.StandardTotal(4, 70))
	assert.Equal(t, 0.0, c.StandardTotal(0, 70))
	assert.Equal(t, 0.3, c.StandardTotal(3, 0.1))
	assert.Equal(t, 100.05, c.StandardTotal(3, 33.35))
}

func TestCalculator_PrivatisationTotal(t *testing.T) {
	assert.Equal(t, 1000.0, NewCalculator(100).PrivatisationTotal(10))
	assert.Equal(t, 1000.0, NewCalculator(0).PrivatisationTotal(10))
	assert.Equal(t, 1200.0, NewCalculator(120).PrivatisationTotal(10))
}

func TestCalculator_StayTotal(t *testing.T) {
	c := NewCalculator(100)
	assert.Equal(t, 360.0, c.StayTotal(3, 120))
	assert.Equal(t, 120.0, c.StayTotal(0, 120))
}
