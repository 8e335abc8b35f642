package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	tests := map[string]struct {
		input    float64
		expected float64
	}{
		"positive number": {input: 42, expected: 42},
		"negative number":  {input: -42, expected: 42},
		"zero":              {input: 0, expected: 0},
		"small negative":    {input: -42.42, expected: 42.42},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Abs(tt.input))
		})
	}
}
