package ebiten

import (
	"image/color"
	"math"
	"time"
)

// pulse returns base scaled between lo and hi brightness on a sine wave with
// the given period.
func pulse(base color.RGBA, period time.Duration, lo, hi float64) color.Color {
	phase := float64(time.Now().UnixMilli()%period.Milliseconds()) / float64(period.Milliseconds())
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0
	brightness := lo + (hi-lo)*v

	return color.RGBA{
		uint8(float64(base.R) * brightness),
		uint8(float64(base.G) * brightness),
		uint8(float64(base.B) * brightness),
		base.A,
	}
}

// breachPulse speeds up as the breach timer runs out.
func breachPulse(remaining time.Duration) color.Color {
	period := 900 * time.Millisecond
	if remaining < time.Second {
		period = 300 * time.Millisecond
	}
	return pulse(colorBreachBg, period, 0.45, 1.0)
}
