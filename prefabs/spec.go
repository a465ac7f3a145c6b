package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Vec is a YAML [x, y] pair.
type Vec [2]float64

func (v Vec) V() cp.Vector { return cp.Vector{X: v[0], Y: v[1]} }

// Range is an inclusive [min, max] millisecond window.
type Range [2]int64

type PhysicsSpec struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Deadband         float64 `yaml:"deadband"`
	ScreenWidth      float64 `yaml:"screen_width"`
	FloorLimit       float64 `yaml:"floor_limit"`
}

type PlayerSpec struct {
	Health       int     `yaml:"health"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
	Jump         float64 `yaml:"jump"`
	JumpCut      float64 `yaml:"jump_cut"`
	SlideFrames  int     `yaml:"slide_frames"`
	SpikeBounce  float64 `yaml:"spike_bounce"`
	AcidSink     float64 `yaml:"acid_sink"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ExplosionAt  Vec     `yaml:"explosion_offset"`
}

type GunSpec struct {
	Cooldown          float64 `yaml:"cooldown"`
	CooldownCost      float64 `yaml:"cooldown_cost"`
	CooldownRegen     float64 `yaml:"cooldown_regen"`
	MinToShoot        float64 `yaml:"min_to_shoot"`
	RateMillis        int64   `yaml:"rate_ms"`
	BarrelRight       Vec     `yaml:"barrel_right"`
	BarrelWalkRight   Vec     `yaml:"barrel_walk_right"`
	BarrelLeft        Vec     `yaml:"barrel_left"`
	BarrelWalkLeft    Vec     `yaml:"barrel_walk_left"`
	GunSoundChannels  int     `yaml:"gun_sound_channels"`
	UpgradedDamage    int     `yaml:"upgraded_damage"`
	UpgradedHazardHit int     `yaml:"upgraded_hazard_hit"`
}

type BulletSpec struct {
	Speed          float64 `yaml:"speed"`
	Damage         int     `yaml:"damage"`
	HazardHit      int     `yaml:"hazard_hit"`
	LifetimeMillis int64   `yaml:"lifetime_ms"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
}

type ZombieSpec struct {
	Health           int     `yaml:"health"`
	Damage           int     `yaml:"damage"`
	Acceleration     float64 `yaml:"acceleration"`
	Friction         float64 `yaml:"friction"`
	MaxSpeed         float64 `yaml:"max_speed"`
	DetectRadius     float64 `yaml:"detect_radius"`
	AttackLeft       float64 `yaml:"attack_distance_left"`
	AttackRight      float64 `yaml:"attack_distance_right"`
	Knockback        float64 `yaml:"knockback"`
	TargetInterval   Range   `yaml:"target_interval_ms"`
	MoanChance       float64 `yaml:"moan_chance"`
	WallTargetMargin int     `yaml:"wall_target_margin"`
	XPDropOffset     Vec     `yaml:"xp_drop_offset"`
	SplatOffset      Vec     `yaml:"splat_offset"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
}

type HazardSpec struct {
	IntervalMillis int64   `yaml:"interval_ms"`
	AcidDamage     int     `yaml:"acid_damage"`
	SpikesDamage   int     `yaml:"spikes_damage"`
	SawDamage      int     `yaml:"saw_damage"`
	SawHealth      int     `yaml:"saw_health"`
	SawSpeed       float64 `yaml:"saw_speed"`
	SawKnockback   Vec     `yaml:"saw_knockback"`
	SawCircleRatio float64 `yaml:"saw_circle_ratio"`
	SawRotateMs    int64   `yaml:"saw_rotate_ms"`
	LaserDamage    int     `yaml:"laser_damage"`
}

type LaserSpec struct {
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletDamage      int     `yaml:"bullet_damage"`
	BulletSize        float64 `yaml:"bullet_size"`
	Frequency         Range   `yaml:"frequency_ms"`
	FireChance        float64 `yaml:"fire_chance"`
	MachineHealth     int     `yaml:"machine_health"`
	BulletOffsetRight Vec     `yaml:"bullet_offset_right"`
	BulletOffsetLeft  Vec     `yaml:"bullet_offset_left"`
	ExplosionOffset   Vec     `yaml:"explosion_offset"`
}

type ItemSpec struct {
	HealthPack  int     `yaml:"health_pack"`
	XPSeconds   int     `yaml:"xp_seconds"`
	BobRange    float64 `yaml:"bob_range"`
	BobSpeed    float64 `yaml:"bob_speed"`
	CoinFrameMs int64   `yaml:"coin_frame_ms"`
	CoinFrames  int     `yaml:"coin_frames"`
}

type PointsSpec struct {
	Coin          int `yaml:"coin"`
	XP            int `yaml:"xp"`
	Zombie        int `yaml:"zombie"`
	Saw           int `yaml:"saw"`
	LaserMachine  int `yaml:"laser_machine"`
	Key           int `yaml:"key"`
	DoorSwitch    int `yaml:"door_switch"`
	NextLevel     int `yaml:"next_level"`
	GameCompleted int `yaml:"game_completed"`
}

type EffectSpec struct {
	FlashMillis          int64 `yaml:"flash_ms"`
	FlashFrames          int   `yaml:"flash_frames"`
	ExplosionMillis      int64 `yaml:"explosion_ms"`
	ExplosionFrameMillis int64 `yaml:"explosion_frame_ms"`
	ExplosionFrames      int   `yaml:"explosion_frames"`
	SplatVariants        int   `yaml:"splat_variants"`
}

// ClipSpec is one animation clip: frame count and ms between frames.
type ClipSpec struct {
	Frames   int   `yaml:"frames"`
	Interval int64 `yaml:"interval_ms"`
}

type AnimationSpec struct {
	PlayerIdle      ClipSpec `yaml:"player_idle"`
	PlayerRun       ClipSpec `yaml:"player_run"`
	PlayerJump      ClipSpec `yaml:"player_jump"`
	PlayerJumpShoot ClipSpec `yaml:"player_jump_shoot"`
	PlayerShoot     ClipSpec `yaml:"player_shoot"`
	PlayerRunShoot  ClipSpec `yaml:"player_run_shoot"`
	PlayerSlide     ClipSpec `yaml:"player_slide"`
	ZombieIdle      ClipSpec `yaml:"zombie_idle"`
	ZombieWalk      ClipSpec `yaml:"zombie_walk"`
	ZombieAttack    ClipSpec `yaml:"zombie_attack"`
	BulletSpin      ClipSpec `yaml:"bullet_spin"`
}

type CameraSpec struct {
	MarginX float64 `yaml:"margin_x"`
	MarginY float64 `yaml:"margin_y"`
}

type TimerSpec struct {
	TickMillis     int64 `yaml:"tick_ms"`
	DefaultSeconds int   `yaml:"default_seconds"`
}

// Tuning is every gameplay constant, loaded from tuning.yaml.
type Tuning struct {
	Physics   PhysicsSpec   `yaml:"physics"`
	Player    PlayerSpec    `yaml:"player"`
	Gun       GunSpec       `yaml:"gun"`
	Bullet    BulletSpec    `yaml:"bullet"`
	Zombie    ZombieSpec    `yaml:"zombie"`
	Hazard    HazardSpec    `yaml:"hazard"`
	Laser     LaserSpec     `yaml:"laser"`
	Item      ItemSpec      `yaml:"item"`
	Points    PointsSpec    `yaml:"points"`
	Effect    EffectSpec    `yaml:"effect"`
	Animation AnimationSpec `yaml:"animation"`
	Camera    CameraSpec    `yaml:"camera"`
	Timer     TimerSpec     `yaml:"timer"`
}

const TuningFile = "tuning.yaml"

// LoadTuning reads tuning.yaml, preferring prefabs/tuning.yaml on disk.
func LoadTuning() (*Tuning, error) {
	spec, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// MustDefaultTuning returns the embedded tuning and panics if it is broken.
func MustDefaultTuning() *Tuning {
	data, err := PrefabsFS.ReadFile(TuningFile)
	if err != nil {
		panic(fmt.Sprintf("prefabs: embedded %s: %v", TuningFile, err))
	}
	var spec Tuning
	if err := yaml.Unmarshal(data, &spec); err != nil {
		panic(fmt.Sprintf("prefabs: unmarshal embedded %s: %v", TuningFile, err))
	}
	if err := spec.Validate(); err != nil {
		panic(err)
	}
	return &spec
}

// Validate rejects values that would stall or break the simulation.
func (t *Tuning) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrInvalidTuning)
	}
	checks := []struct {
		ok   bool
		what string
	}{
		{t.Physics.TerminalVelocity > 0, "physics.terminal_velocity must be > 0"},
		{t.Physics.ScreenWidth > 0, "physics.screen_width must be > 0"},
		{t.Player.Health > 0, "player.health must be > 0"},
		{t.Player.Width > 0 && t.Player.Height > 0, "player size must be > 0"},
		{t.Zombie.Width > 0 && t.Zombie.Height > 0, "zombie size must be > 0"},
		{t.Bullet.LifetimeMillis > 0, "bullet.lifetime_ms must be > 0"},
		{t.Gun.RateMillis >= 0, "gun.rate_ms must be >= 0"},
		{t.Zombie.TargetInterval[0] <= t.Zombie.TargetInterval[1], "zombie.target_interval_ms min > max"},
		{t.Laser.Frequency[0] <= t.Laser.Frequency[1], "laser.frequency_ms min > max"},
		{t.Hazard.SawHealth > 0 && t.Laser.MachineHealth > 0, "hardened health must be > 0"},
		{t.Timer.TickMillis > 0, "timer.tick_ms must be > 0"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidTuning, c.what)
		}
	}
	return nil
}
