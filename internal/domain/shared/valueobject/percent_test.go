package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPercentFromString(t *testing.T) {
	t.Run("valid string", func(t *testing.T) {
		p, err := NewPercentFromString("12.5")
		require.NoError(t, err)
		assert.True(t, p.Value100().Equal(decimal.NewFromFloat(12.5)))
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewPercentFromString("abc")
		assert.Error(t, err)
	})
}

func TestPercentFraction(t *testing.T) {
	p := NewPercentFromFloat(12)
	assert.True(t, p.Fraction().Equal(decimal.NewFromFloat(0.12)))
}

func TestPercentApplyTo(t *testing.T) {
	p := NewPercentFromFloat(10)
	result := p.ApplyTo(decimal.NewFromInt(250))
	assert.True(t, result.Equal(decimal.NewFromInt(25)))
}

func TestPercentAdd(t *testing.T) {
	sum := NewPercentFromFloat(12).Add(NewPercentFromFloat(5)).Add(NewPercentFromFloat(9))
	assert.True(t, sum.Value100().Equal(decimal.NewFromInt(26)))
}

func TestPercentZero(t *testing.T) {
	assert.True(t, ZeroPercent().IsZero())
	assert.False(t, NewPercentFromFloat(-1).IsZero())
	assert.True(t, NewPercentFromFloat(-1).IsNegative())
}

func TestPercentString(t *testing.T) {
	assert.Equal(t, "12.5%", NewPercentFromFloat(12.5).String())
}

func TestPercentScan(t *testing.T) {
	var p Percent
	err := p.Scan("33.3")
	require.NoError(t, err)
	assert.True(t, p.Value100().Equal(decimal.NewFromFloat(33.3)))
}
