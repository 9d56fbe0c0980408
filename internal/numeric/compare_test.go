package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"float less", 1.0, 2.0, 1},
		{"float greater", 3.7, 1.2, -1},
		{"float equal", 2.5, 2.5, 0},
		{"negative floats", -4.5, -0.5, 1},
		{"ints are not comparable", 1, 2, 0},
		{"mixed float and int", 1.0, 2, 0},
		{"mixed int and float", 2, 1.0, 0},
		{"float32 is not the float tag", float32(1), float32(2), 0},
		{"strings", "a", "b", 0},
		{"nil operand", nil, 1.0, 0},
		{"infinity", math.Inf(-1), 0.0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestCompareNaN(t *testing.T) {
	// NaN is neither less nor greater, so it collapses to 0 like equality.
	assert.Equal(t, 0, Compare(math.NaN(), 1.0))
}
