package system

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shifty/ecs"
	"github.com/milk9111/shifty/prefabs"
)

// Zombie behavior states as named by the script.
const (
	behaviorWandering = "wandering"
	behaviorChasing   = "chasing"
	behaviorAttacking = "attacking"
)

// zombieSense is what the script sees of one zombie and the player.
type zombieSense struct {
	DX, DY       float64
	HasPlayer    bool
	DetectRadius float64
	AttackLeft   float64
	AttackRight  float64
}

func (s zombieSense) object() tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"dx":            &tengo.Float{Value: s.DX},
		"dy":            &tengo.Float{Value: s.DY},
		"has_player":    boolObject(s.HasPlayer),
		"detect_radius": &tengo.Float{Value: s.DetectRadius},
		"attack_left":   &tengo.Float{Value: s.AttackLeft},
		"attack_right":  &tengo.Float{Value: s.AttackRight},
	}}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

const zombieDispatch = `
if __phase == "update" {
	update(__engine, __state, __current_state)
}
`

// zombieBrain runs the compiled zombie script. Each zombie keeps its own
// script state map for the lifetime of the level.
type zombieBrain struct {
	compiled *tengo.Compiled
	states   map[ecs.Entity]*tengo.Map
	pending  string
}

func newZombieBrain(src []byte) (*zombieBrain, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + zombieDispatch))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("zombie script: %w", err)
	}
	return &zombieBrain{compiled: compiled, states: make(map[ecs.Entity]*tengo.Map)}, nil
}

// loadZombieBrain prefers the script on disk and falls back to the embedded
// copy when the override is missing or does not compile.
func loadZombieBrain() *zombieBrain {
	src, err := prefabs.LoadScript(prefabs.ZombieScript)
	if err == nil {
		brain, cerr := newZombieBrain(src)
		if cerr == nil {
			return brain
		}
		err = cerr
	}
	log.Error("zombie script unusable, using the built-in one", "error", err)

	src, err = prefabs.EmbeddedScript(prefabs.ZombieScript)
	if err != nil {
		panic(fmt.Sprintf("system: embedded %s: %v", prefabs.ZombieScript, err))
	}
	brain, err := newZombieBrain(src)
	if err != nil {
		panic(err)
	}
	return brain
}

// decide runs one update phase for e and returns the state it picked, or
// current when the script left it alone.
func (b *zombieBrain) decide(e ecs.Entity, current string, sense zombieSense) (string, error) {
	b.pending = ""
	state, ok := b.states[e]
	if !ok {
		state = &tengo.Map{Value: map[string]tengo.Object{}}
		b.states[e] = state
	}

	engine := &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"sense": sense.object(),
		"transition": &tengo.UserFunction{Name: "transition", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			name, _ := tengo.ToString(args[0])
			name = strings.TrimSpace(name)
			if name == "" {
				return tengo.FalseValue, nil
			}
			b.pending = name
			return tengo.TrueValue, nil
		}},
	}}

	for name, value := range map[string]any{
		"__phase":         "update",
		"__engine":        engine,
		"__state":         state,
		"__current_state": current,
	} {
		if err := b.compiled.Set(name, value); err != nil {
			return current, err
		}
	}
	if err := b.compiled.Run(); err != nil {
		return current, err
	}
	if b.pending == "" {
		return current, nil
	}
	return b.pending, nil
}

func (b *zombieBrain) forget(e ecs.Entity) {
	delete(b.states, e)
}
