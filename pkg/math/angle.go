package math

import "github.com/chewxy/math32"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates from a to b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// WrapAngle wraps an angle into (-Pi, Pi].
func WrapAngle(a float32) float32 {
	for a > math32.Pi {
		a -= 2 * math32.Pi
	}
	for a <= -math32.Pi {
		a += 2 * math32.Pi
	}
	return a
}

// DampFactor returns the exponential smoothing factor 1-exp(-rate*dt).
// Blending with this factor gives frame-rate independent easing toward
// a moving target.
func DampFactor(rate, dt float32) float32 {
	return 1 - math32.Exp(-rate*dt)
}
