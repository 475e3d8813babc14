package bankprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskAccountNumber(t *testing.T) {
	tests := map[string]string{
		"0012345678":  "****5678",
		" 98765432 ":  "****5432",
		"1234":        "****",
		"12":          "**",
		"":            "",
		"001-234-567": "****-567",
	}
	for in, want := range tests {
		assert.Equal(t, want, MaskAccountNumber(in), "input %q", in)
	}
}
