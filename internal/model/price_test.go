package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7, "7.00"},
		{1.5, "1.50"},
		{5.25, "5.25"},
		{125.125, "125.12"},
		{0, "0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(tc.in))
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice("125.125")
	require.NoError(t, err)
	assert.Equal(t, 125.125, p)

	_, err = ParsePrice("twelve")
	require.Error(t, err)
}
