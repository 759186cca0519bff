package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAndPlainRow(t *testing.T) {
	t.Parallel()

	c := NewCanvas(10, 2, Background)
	n := c.Text(1, 0, "hi", Pink400, true)
	require.Equal(t, 2, n)
	require.Equal(t, " hi       ", c.PlainRow(0))
	require.True(t, c.At(1, 0).Bold)
	require.Equal(t, "          ", c.PlainRow(1))
	require.Empty(t, c.PlainRow(5))
}

func TestWideGlyphUsesTwoCells(t *testing.T) {
	t.Parallel()

	c := NewCanvas(6, 1, Background)
	require.Equal(t, 2, c.Put(0, 0, "💖", Pink400, false))
	require.Equal(t, "💖    ", c.PlainRow(0))

	// Overwriting the continuation cell blanks the wide glyph.
	c.Put(1, 0, "x", Pink400, false)
	require.Equal(t, " x    ", c.PlainRow(0))
}

func TestWideGlyphClippedAtEdge(t *testing.T) {
	t.Parallel()

	c := NewCanvas(3, 1, Background)
	require.Zero(t, c.Put(2, 0, "💖", Pink400, false))
	require.Equal(t, "   ", c.PlainRow(0))
}

func TestOutOfBoundsWritesAreIgnored(t *testing.T) {
	t.Parallel()

	c := NewCanvas(3, 1, Background)
	c.Put(-1, 0, "a", Pink400, false)
	c.Put(0, 3, "a", Pink400, false)
	c.SetBG(9, 9, Pink400)
	require.Equal(t, "   ", c.PlainRow(0))
	require.Equal(t, " ", c.At(7, 7).Glyph)
}

func TestBox(t *testing.T) {
	t.Parallel()

	c := NewCanvas(4, 3, Background)
	c.Box(0, 0, 4, 3, lipgloss.RoundedBorder(), Gray500)
	require.Equal(t, "╭──╮", c.PlainRow(0))
	require.Equal(t, "│  │", c.PlainRow(1))
	require.Equal(t, "╰──╯", c.PlainRow(2))
}

func TestFillRectBlanksGlyphs(t *testing.T) {
	t.Parallel()

	c := NewCanvas(5, 2, Background)
	c.Text(0, 0, "abcde", Pink400, false)
	c.Put(3, 1, "💖", Pink400, false)
	c.FillRect(1, 0, 3, 2, CardFill)
	require.Equal(t, "a   e", c.PlainRow(0))
	require.Equal(t, "     ", c.PlainRow(1))
	require.Equal(t, CardFill, c.At(2, 1).BG)
	require.Equal(t, Background, c.At(0, 1).BG)
}

func TestStringHasOneLinePerRow(t *testing.T) {
	t.Parallel()

	c := NewCanvas(5, 3, Background)
	c.Text(0, 1, "abc", Pink400, false)
	out := c.String()
	require.Len(t, strings.Split(out, "\n"), 3)
	require.Contains(t, out, "abc")
}

func TestResize(t *testing.T) {
	t.Parallel()

	c := NewCanvas(2, 2, Background)
	c.Text(0, 0, "ab", Pink400, false)
	c.Resize(4, 1)
	require.Equal(t, 4, c.Width())
	require.Equal(t, 1, c.Height())
	require.Equal(t, "    ", c.PlainRow(0))
	c.Resize(-1, 3)
	require.Zero(t, c.Width())
}

func TestFade(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pink400.Hex(), Fade(Pink400, Background, 1).Hex())
	assert.Equal(t, Background.Hex(), Fade(Pink400, Background, 0).Hex())
	assert.Equal(t, Background.Hex(), Fade(Pink400, Background, -3).Hex())
}

func TestGradient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pink500.Hex(), Gradient(0, Pink500, Rose500).Hex())
	assert.Equal(t, Rose500.Hex(), Gradient(1, Pink500, Rose500).Hex())
	assert.Equal(t, Pink500.Hex(), Gradient(0.7, Pink500).Hex())
	assert.Equal(t, "#000000", Gradient(0.5).Hex())
}

func TestRadial(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1, Radial(5, 5, 5, 5, 2, 2), 1e-9)
	assert.InDelta(t, 0.5, Radial(6, 5, 5, 5, 2, 2), 1e-9)
	assert.Zero(t, Radial(9, 5, 5, 5, 2, 2))
	assert.Zero(t, Radial(0, 0, 0, 0, 0, 1))
}

func TestHexFallsBackToBlack(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#000000", Hex("nope").Hex())
	assert.Equal(t, "#f472b6", Hex("#f472b6").Hex())
}

func TestPaintBackdropTintsCorners(t *testing.T) {
	t.Parallel()

	c := NewCanvas(20, 10, Background)
	c.PaintBackdrop(Glows)
	require.NotEqual(t, Background.Hex(), c.At(4, 0).BG.Hex())
}
