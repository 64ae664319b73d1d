package albumart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTransmit_SingleChunk(t *testing.T) {
	out := transmitPNG([]byte("small"), 7)

	assert.True(t, strings.HasPrefix(out, escStart+"a=t,f=100,i=7,q=2,m=0;"), out)
	assert.True(t, strings.HasSuffix(out, escEnd))
	assert.Equal(t, 1, strings.Count(out, escStart))
}

func TestTransmit_Chunked(t *testing.T) {
	data := make([]byte, 4000) // 5336 base64 chars
	out := transmitPNG(data, 42)

	assert.Equal(t, 2, strings.Count(out, escStart))
	assert.Contains(t, out, "i=42,q=2,m=1;")
	assert.Contains(t, out, escStart+"m=0;")
}

func TestPlaceAndDelete(t *testing.T) {
	place := Place(3, 2, 5, 16, 8)
	assert.Contains(t, place, "\x1b[2;5H")
	assert.Contains(t, place, "a=p,i=3,p=1,c=16,r=8,C=1,q=2;")
	assert.True(t, strings.HasPrefix(place, "\x1b[s"))
	assert.True(t, strings.HasSuffix(place, "\x1b[u"))

	assert.Equal(t, escStart+"a=d,d=i,i=3,q=2;"+escEnd, Delete(3))
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "   \n   ", Placeholder(3, 2))
	assert.Empty(t, Placeholder(0, 2))
	assert.Empty(t, Placeholder(2, 0))
}

func TestRenderer_Prepare(t *testing.T) {
	r := New(4, 2)
	data := pngBytes(t, 128, 128)

	out, err := r.Prepare("http://covers/a.png", data)
	require.NoError(t, err)
	assert.Contains(t, out, "a=t,f=100")
	assert.NotContains(t, out, "a=d", "first cover has nothing to delete")
	assert.Equal(t, "http://covers/a.png", r.Current())
	assert.NotEmpty(t, r.Place(1, 1))

	again, err := r.Prepare("http://covers/a.png", data)
	require.NoError(t, err)
	assert.Empty(t, again, "same cover is not uploaded twice")

	next, err := r.Prepare("http://covers/b.png", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(next, escStart+"a=d"), "previous cover is deleted first")
	assert.Equal(t, "http://covers/b.png", r.Current())
}

func TestRenderer_PrepareInvalid(t *testing.T) {
	r := New(4, 2)
	_, err := r.Prepare("http://covers/bad", []byte("not an image"))
	require.Error(t, err)
	assert.Empty(t, r.Current())
	assert.Empty(t, r.Place(1, 1))
}

func TestRenderer_Clear(t *testing.T) {
	r := New(4, 2)
	assert.Empty(t, r.Clear())

	_, err := r.Prepare("http://covers/a.png", pngBytes(t, 16, 16))
	require.NoError(t, err)
	assert.Contains(t, r.Clear(), "a=d")
	assert.Empty(t, r.Current())
}

func TestEnabled(t *testing.T) {
	for _, k := range []string{"CONTOUR_PROFILE", "KITTY_WINDOW_ID", "GHOSTTY_RESOURCES_DIR", "TERM_PROGRAM", "KONSOLE_VERSION"} {
		t.Setenv(k, "")
	}
	t.Setenv("TERM", "xterm-256color")

	assert.False(t, Enabled("none"))
	assert.True(t, Enabled("kitty"))
	assert.False(t, Enabled("auto"))

	t.Setenv("TERM", "xterm-kitty")
	assert.True(t, Enabled("auto"))

	t.Setenv("CONTOUR_PROFILE", "default")
	assert.False(t, Enabled("auto"))
}

func TestKittySupported_Konsole(t *testing.T) {
	for _, k := range []string{"CONTOUR_PROFILE", "KITTY_WINDOW_ID", "GHOSTTY_RESOURCES_DIR", "TERM_PROGRAM"} {
		t.Setenv(k, "")
	}
	t.Setenv("TERM", "xterm-256color")

	t.Setenv("KONSOLE_VERSION", "211201")
	assert.False(t, KittySupported())
	t.Setenv("KONSOLE_VERSION", "220401")
	assert.True(t, KittySupported())
}
