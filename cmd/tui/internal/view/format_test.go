package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{350, "350"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in))
	}
}

func TestFormatOptional(t *testing.T) {
	empty := ""
	desc := "VIP"

	assert.Equal(t, "-", FormatOptional(nil))
	assert.Equal(t, "-", FormatOptional(&empty))
	assert.Equal(t, "VIP", FormatOptional(&desc))
}
