package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStyles(t *testing.T) {
	// Given: plain styles
	styles := GetStyles(true)

	// When: rendering the label
	rendered := styles.Label.Render("hello")

	// Then: no escape sequences are emitted
	assert.Equal(t, "hello", rendered)
	assert.NotContains(t, styles.Title.Render("title"), "\x1b[")
}

func TestDefaultStyles_WindowHasBorder(t *testing.T) {
	styles := DefaultStyles()

	assert.True(t, styles.Window.GetBorderTop())
	assert.True(t, styles.Label.GetBold())
}
