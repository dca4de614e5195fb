// Package config centralizes all tunable game parameters.
package config

import "time"

// View resolution - the logical playfield in viewport units.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 1200 // Logical viewport width
	ViewHeight = 800  // Logical viewport height, fed to the collision thresholds
)

// Max render resolution - caps how many terminal cells the playfield uses.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)

// Spawning
const (
	SpawnIntervalBase = 800 * time.Millisecond
	SpawnIntervalStep = 50 * time.Millisecond // Subtracted per level
	SpawnIntervalMin  = 400 * time.Millisecond
	WaveSpawnY        = -50.0 // Just above the top of the viewport
)

// Waves
const (
	WaveBaseSpeed     = 2.0
	WaveSpeedPerLevel = 0.5
	WaveHalfHeight    = 60.0 // Collision band half-height around the player
	WaveDrawHeight    = 64.0 // Rendered thickness of a wave band
	WaveExitMargin    = 50.0 // Distance below the viewport before a wave counts as passed
)

// Player
const (
	PlayerAnchor = 0.7  // Fraction of the viewport height where the player sits
	PlayerSize   = 80.0 // Rendered width and height of the player block
)

// Scoring and difficulty
const (
	ScorePerWave      = 10
	PointsPerLevel    = 100
	IntensityPerLevel = 0.3
	MaxIntensity      = 3.0
	StartIntensity    = 1.0 // Value set by a fresh start, before the first tick recomputes it
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Server tick rate
const (
	ServerTickRate = 60
	ServerTickTime = time.Second / ServerTickRate
)
