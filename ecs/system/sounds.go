package system

// Clip names the audio collaborator resolves.
const (
	SoundPlayerJump    = "player_jump"
	SoundPlayerHit     = "player_hit"
	SoundGun           = "gun"
	SoundBurn          = "burn"
	SoundHealthPickup  = "health_pickup"
	SoundXPPickup      = "xp_pickup"
	SoundCoinPickup    = "coin_pickup"
	SoundKeyPickup     = "key_pickup"
	SoundZombieHit     = "zombie_hit"
	SoundZombieDie     = "zombie_die"
	SoundZombieMoan    = "zombie_moan"
	SoundSaw           = "saw"
	SoundLaser         = "laser"
	SoundLaserGun      = "laser_gun"
	SoundExplosion     = "explosion"
	SoundGameOver      = "game_over"
	SoundHighScore     = "high_score"
	SoundSwitchPress   = "door_switch_press"
	SoundSwitchFail    = "door_switch_fail"
	SoundDoorOpen      = "door_open"
	SoundLeverPull     = "lever_pull"
	SoundLevelComplete = "level_complete"
)

// Death causes shown on the game over screen.
const (
	CauseAcid     = "acid"
	CauseSpikes   = "spikes"
	CauseZombies  = "zombies"
	CauseSaw      = "saw"
	CauseLaser    = "laser"
	CauseLaserGun = "laser gun"
)
