package config

import "time"

// Tuning holds every gameplay constant. Durations are simulated time.
type Tuning struct {
	NightDuration time.Duration // Real length of a night
	ClockMax      float64       // In-game clock value at the end of a night

	TickInterval      time.Duration
	PingSweepInterval time.Duration

	DoorBlockDuration time.Duration // Longest a door can be held shut
	DoorBlockCooldown time.Duration
	LureCooldown      time.Duration
	LureDuration      time.Duration
	ShockCooldown     time.Duration

	CameraRebootTime     time.Duration
	CameraAutoRepairTime time.Duration

	BreachWarningTime time.Duration

	StartPower   float64
	PassiveDrain float64 // Per second
	CameraDrain  float64 // Per sweep
	LureCost     float64
	ShockCost    float64
	DoorDrain    float64 // Per second held
	AbilityDrain float64 // Lump drain of the power_drain ability

	AbilityRange int           // Hops from control at which one-shot abilities fire
	BaseHopTime  time.Duration // Hop time of a speed-1 subject

	TotalNights int
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		NightDuration: 420 * time.Second,
		ClockMax:      360,

		TickInterval:      250 * time.Millisecond,
		PingSweepInterval: 3500 * time.Millisecond,

		DoorBlockDuration: 2 * time.Second,
		DoorBlockCooldown: 5 * time.Second,
		LureCooldown:      8 * time.Second,
		LureDuration:      15 * time.Second,
		ShockCooldown:     12 * time.Second,

		CameraRebootTime:     3 * time.Second,
		CameraAutoRepairTime: 20 * time.Second,

		BreachWarningTime: 3 * time.Second,

		StartPower:   100,
		PassiveDrain: 0.05,
		CameraDrain:  0.02,
		LureCost:     3,
		ShockCost:    5,
		DoorDrain:    2,
		AbilityDrain: 10,

		AbilityRange: 3,
		BaseHopTime:  time.Minute,

		TotalNights: 5,
	}
}
