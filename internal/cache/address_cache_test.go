package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		address  string
		expected string
	}{
		{address: "Баянгол", expected: "address:баянгол"},
		{address: "  Хан-Уул   дүүрэг ", expected: "address:хан-уул дүүрэг"},
		{address: "", expected: "address:"},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.expected, Key(tt.address))
		})
	}
}
