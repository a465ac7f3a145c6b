package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHazardThrottle(t *testing.T) {
	h := &Hazard{Damage: 35, Interval: 300}
	hits := 0
	for now := int64(0); now < 1000; now += 16 {
		if h.TryAttack(now) {
			hits++
		}
	}
	assert.Equal(t, 4, hits)

	fresh := &Hazard{Interval: 300}
	assert.True(t, fresh.TryAttack(5), "first contact always lands")
	assert.False(t, fresh.TryAttack(304))
	assert.True(t, fresh.TryAttack(305))
}

func TestHardenedHit(t *testing.T) {
	cases := []struct {
		name   string
		amount int
		hits   int
	}{
		{"single damage", 1, 16},
		{"double damage", 2, 8},
		{"uneven", 3, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := &Hardened{Health: 16}
			broke := 0
			for i := 1; i <= c.hits; i++ {
				if h.Hit(c.amount) {
					broke = i
				}
			}
			assert.Equal(t, c.hits, broke)
			assert.False(t, h.Hit(c.amount), "a broken target stays broken")
		})
	}
}

func TestPlayerCarry(t *testing.T) {
	cases := []struct {
		name       string
		health     int
		score      int
		wantHealth int
		wantScore  int
	}{
		{"kept", 40, 900, 40, 900},
		{"dead carries full health", 0, 10, 100, 10},
		{"overheal clamps", 150, 0, 100, 0},
		{"negative score", 60, -5, 60, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &Player{}
			p.KeepHealth(c.health, 100)
			p.KeepScore(c.score)
			assert.Equal(t, c.wantHealth, p.Health)
			assert.Equal(t, c.wantScore, p.Score)
		})
	}
}

func TestDeadCauseOnlyWhenDead(t *testing.T) {
	p := &Player{Health: 10}
	p.SetDeadCause("acid")
	assert.Empty(t, p.DeadCause)

	p.Hurt(35)
	p.SetDeadCause("acid")
	assert.Equal(t, "acid", p.DeadCause)
}

func TestSoundQueueDrain(t *testing.T) {
	q := &SoundQueue{}
	q.Play("gun")
	q.PlayOnce("saw")
	q.Stop("laser")

	got := q.Drain()
	assert.Len(t, got, 3)
	assert.True(t, got[1].Once)
	assert.True(t, got[2].Stop)
	assert.Nil(t, q.Drain())
}
