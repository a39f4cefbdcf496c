package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"Hello world", 2},
		{"  leading and trailing  ", 3},
		{"it's well-known", 2},
		{"La vie est belle.", 4},
		{"numbers 42 do not count", 4},
		{"élève naïf", 2},
		{"one,two;three", 3},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, WordCount(tc.in), "input %q", tc.in)
	}
}
