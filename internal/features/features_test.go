package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	fs := Defaults()
	require.Len(t, fs, 5)
	assert.Equal(t, "Identify Trendy Topics", fs[0].Title)
	assert.Equal(t, "Track & Manage Impact", fs[4].Title)
	for _, f := range fs {
		assert.NotEmpty(t, f.Summary, f.Title)
		assert.NotContains(t, f.Description, "<", f.Title)
	}

	fs[0].Title = "changed"
	assert.Equal(t, "Identify Trendy Topics", Defaults()[0].Title, "callers get a copy")
}

func TestCarouselRevealsThenShowsFirst(t *testing.T) {
	c := NewCarousel(Defaults())
	assert.Equal(t, 0, c.Revealed())
	_, _, ok := c.Shown()
	assert.False(t, ok)

	for i := 1; i < c.Len(); i++ {
		require.True(t, c.Step(), "step %d", i)
		assert.Equal(t, i, c.Revealed())
		_, _, ok := c.Shown()
		assert.False(t, ok, "nothing shown while revealing")
	}

	assert.False(t, c.Step(), "last step ends the animation")
	assert.True(t, c.Done())
	f, i, ok := c.Shown()
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, "Identify Trendy Topics", f.Title)

	assert.False(t, c.Step())
	_, i, _ = c.Shown()
	assert.Equal(t, 0, i, "extra steps change nothing")
}

func TestCarouselShowRevealsAll(t *testing.T) {
	c := NewCarousel(Defaults())
	require.True(t, c.Step())

	assert.True(t, c.Show(3))
	assert.True(t, c.Done())
	assert.False(t, c.Step())
	f, i, ok := c.Shown()
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, "Let's be heard!", f.Summary)

	assert.False(t, c.Show(-1))
	assert.False(t, c.Show(5))
	_, i, _ = c.Shown()
	assert.Equal(t, 3, i)
}

func TestCarouselNextPrevWrap(t *testing.T) {
	c := NewCarousel(Defaults())

	c.Next()
	_, i, _ := c.Shown()
	assert.Equal(t, 0, i)

	c.Prev()
	_, i, _ = c.Shown()
	assert.Equal(t, 4, i)

	c.Next()
	_, i, _ = c.Shown()
	assert.Equal(t, 0, i)

	c = NewCarousel(Defaults())
	c.Prev()
	_, i, _ = c.Shown()
	assert.Equal(t, 4, i, "prev from nothing shows the last")
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(nil)
	assert.True(t, c.Done())
	assert.False(t, c.Step())
	c.Next()
	c.Prev()
	_, _, ok := c.Shown()
	assert.False(t, ok)
}
