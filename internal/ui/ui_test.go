package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanelAlignsRows(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"Images", "★★★☆☆ Heat", C(fgRed, "x")})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	for _, ln := range lines {
		assert.Equal(t, visibleWidth(lines[0]), visibleWidth(ln), ln)
	}
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
}

func TestBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, "#####.....  50%", Bar(1, 2, 10))
	assert.Equal(t, "..........   0%", Bar(0, 0, 10))
	assert.Equal(t, "########## 100%", Bar(5, 5, 10))
	assert.Equal(t, "##### 100%", Bar(3, 2, 1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestColorDisabled(t *testing.T) {
	SetColorForcing(false, true)
	defer SetColorForcing(false, false)
	assert.Equal(t, "plain", C(fgGreen, "plain"))
}
