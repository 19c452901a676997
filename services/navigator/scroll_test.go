package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollDetector(t *testing.T) {
	t.Run("downward movement past the threshold", func(t *testing.T) {
		d := NewScrollDetector()
		dir, ok := d.Observe(50)
		assert.True(t, ok)
		assert.Equal(t, ScrollDown, dir)
	})

	t.Run("upward movement past the threshold", func(t *testing.T) {
		d := NewScrollDetector()
		d.Observe(100)
		dir, ok := d.Observe(40)
		assert.True(t, ok)
		assert.Equal(t, ScrollUp, dir)
	})

	t.Run("sub-threshold movement yields no event", func(t *testing.T) {
		d := NewScrollDetector()
		d.Observe(100)

		_, ok := d.Observe(103)
		assert.False(t, ok)
		_, ok = d.Observe(97)
		assert.False(t, ok)

		// The anchor did not move, so a cumulative drift still fires.
		dir, ok := d.Observe(106)
		assert.True(t, ok)
		assert.Equal(t, ScrollDown, dir)
	})

	t.Run("negative offsets are ignored", func(t *testing.T) {
		d := NewScrollDetector()
		d.Observe(100)
		_, ok := d.Observe(-20)
		assert.False(t, ok)
	})

	t.Run("restart re-anchors at zero", func(t *testing.T) {
		d := NewScrollDetector()
		d.Observe(500)
		d.Restart()

		dir, ok := d.Observe(10)
		assert.True(t, ok)
		assert.Equal(t, ScrollDown, dir)
	})
}
