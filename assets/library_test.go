package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 0, color.NRGBA{R: 255, A: 255})
	img.Set(3, 1, color.NRGBA{G: 255, A: 10})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMaskFromFrame(t *testing.T) {
	lib := NewLibrary(fstest.MapFS{"objects/saw.png": {Data: pngBytes(t)}})

	m := lib.Mask("objects", "saw")
	require.NotNil(t, m)
	assert.Equal(t, 4, m.W)
	assert.Equal(t, 2, m.H)
	assert.True(t, m.Solid(1, 0))
	assert.True(t, m.Solid(3, 1))
	assert.False(t, m.Solid(0, 0))
	assert.Same(t, m, lib.Mask("objects", "saw"))
}

func TestMissingAssetsResolveToNil(t *testing.T) {
	lib := NewLibrary(fstest.MapFS{"objects/broken.png": {Data: []byte("not a png")}})
	assert.Nil(t, lib.Mask("objects", "saw"))
	assert.Nil(t, lib.Mask("objects", "broken"))
	assert.Nil(t, NewLibrary(nil).Mask("player", "idle_0"))
}

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"objects", "objects"},
		{"assets/objects", "objects"},
		{"/home/me/game/assets/player", "player"},
		{"/tmp/zombie", "zombie"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			assert.Equal(t, c.want, cleanAssetPath(c.in))
		})
	}
}
