package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCampaignLevels(t *testing.T) {
	for _, name := range Order {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			require.NoError(t, err)
			assert.Equal(t, name, lvl.Name)
			assert.Greater(t, lvl.Timer, 0)

			players := 0
			for _, e := range lvl.Entities {
				if e.Type == "player" {
					players++
				}
			}
			assert.Equal(t, 1, players, "exactly one player spawn")
		})
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	_, err := LoadLevelFromFS("map99")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestDecodeRejectsBoundless(t *testing.T) {
	_, err := Decode([]byte(`{"name":"x","width":0,"height":10}`))
	assert.Error(t, err)
}

func TestNext(t *testing.T) {
	next, ok := Next("map1")
	assert.True(t, ok)
	assert.Equal(t, "map2", next)

	_, ok = Next("map3")
	assert.False(t, ok)
}
