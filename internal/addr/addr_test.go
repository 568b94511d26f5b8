package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "0xabc", want: "0xabc"},
		{name: "mixed case", in: "0xFa91b2C3", want: "0xfa91b2c3"},
		{name: "surrounding whitespace", in: "  0xABC\t\n", want: "0xabc"},
		{name: "empty", in: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("0xAbC", " 0xabc "))
	assert.False(t, Equal("0xabc", "0xabd"))
}
