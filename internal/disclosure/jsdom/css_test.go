package jsdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnTracks(t *testing.T) {
	assert.Equal(t, 3, columnTracks("320px 320px 320px"))
	assert.Equal(t, 2, columnTracks(" 410.5px  410.5px "))
	assert.Equal(t, 1, columnTracks("none"))
	assert.Equal(t, 1, columnTracks(""))
}

func TestColumnTracks_LineNames(t *testing.T) {
	assert.Equal(t, 2, columnTracks("[a] 100px [b] 100px"))
	assert.Equal(t, 3, columnTracks("[full-start main] 200px 200px [mid] 200px [full-end]"))
	assert.Equal(t, 1, columnTracks("[only]"))
}

func TestClampTransition(t *testing.T) {
	assert.True(t, clampTransition("max-height"))
	assert.False(t, clampTransition("opacity"))
	assert.False(t, clampTransition("transform"))
	assert.False(t, clampTransition(""))
}

func TestCSSPixels(t *testing.T) {
	assert.Equal(t, 16.0, cssPixels("16px"))
	assert.Equal(t, 0.5, cssPixels("0.5px"))
	assert.Equal(t, 0.0, cssPixels("auto"))
	assert.Equal(t, 0.0, cssPixels(""))
}
