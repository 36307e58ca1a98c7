package motion

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("motion: invalid config")
	ErrNilBody       = errors.New("motion: body is nil")
)

// Config holds the tuning of a Mover. It is copied into the mover at
// construction and never changes afterwards.
type Config struct {
	DefaultDirection Direction
	JumpCurve        Curve

	// MaxSpeed caps horizontal speed, in position units per tick.
	MaxSpeed float64
	// GroundMaxAcceleration is the acceleration cap used on the ground and
	// restored on landing.
	GroundMaxAcceleration float64
	// AirMaxAcceleration replaces the cap while airborne and steering
	// against the current speed.
	AirMaxAcceleration     float64
	AccelerationMultiplier float64
	// JumpRate advances normalized jump time per second.
	JumpRate float64
	// FallForce is the vertical force per second added while falling.
	FallForce float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		DefaultDirection:       Right,
		JumpCurve:              DefaultJumpCurve(),
		MaxSpeed:               0.08,
		GroundMaxAcceleration:  0.16,
		AirMaxAcceleration:     0.4,
		AccelerationMultiplier: 2,
		JumpRate:               4,
		FallForce:              -500,
	}
}

// LongFallSpeed is the speed a landing after a long fall is capped to.
func (c Config) LongFallSpeed() float64 {
	return c.MaxSpeed / 4
}

// Validate reports the first setting that would break the mover's bounds.
func (c Config) Validate() error {
	switch {
	case !c.DefaultDirection.Valid():
		return fmt.Errorf("%w: default direction %v", ErrInvalidConfig, c.DefaultDirection)
	case c.JumpCurve == nil:
		return fmt.Errorf("%w: jump curve is nil", ErrInvalidConfig)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %v must be positive", ErrInvalidConfig, c.MaxSpeed)
	case c.GroundMaxAcceleration <= 0:
		return fmt.Errorf("%w: ground max acceleration %v must be positive", ErrInvalidConfig, c.GroundMaxAcceleration)
	case c.AirMaxAcceleration < c.GroundMaxAcceleration:
		return fmt.Errorf("%w: air max acceleration %v below ground %v", ErrInvalidConfig, c.AirMaxAcceleration, c.GroundMaxAcceleration)
	case c.AccelerationMultiplier <= 0:
		return fmt.Errorf("%w: acceleration multiplier %v must be positive", ErrInvalidConfig, c.AccelerationMultiplier)
	case c.JumpRate <= 0:
		return fmt.Errorf("%w: jump rate %v must be positive", ErrInvalidConfig, c.JumpRate)
	case c.FallForce > 0:
		return fmt.Errorf("%w: fall force %v must point down", ErrInvalidConfig, c.FallForce)
	}
	return nil
}
