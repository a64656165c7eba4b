package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Company", "Status"},
		[][]string{
			{"Meridian Textiles", "favorite"},
			{"Baltic Freight", "active"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Company")
	assert.Contains(t, lines[1], "Meridian Textiles")
	assert.Contains(t, lines[2], "Baltic Freight")
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable([]string{"Company"}, nil)
	assert.Contains(t, out, "Company")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", pad("ab", 5))
	assert.Equal(t, "abcde", pad("abcde", 5))
	assert.Equal(t, "abcdef", pad("abcdef", 5))
}
