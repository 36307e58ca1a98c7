package motion

import (
	"math"
	"testing"
)

func TestKeyframesEvaluate(t *testing.T) {
	linear := NewKeyframes(
		Keyframe{Time: 1, Value: 1, InTangent: 1},
		Keyframe{Time: 0, Value: 0, OutTangent: 1},
	)
	flat := NewKeyframes(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 1, Value: 1},
	)

	cases := []struct {
		name  string
		curve Keyframes
		t     float64
		want  float64
	}{
		{"linear_mid", linear, 0.5, 0.5},
		{"linear_quarter", linear, 0.25, 0.25},
		{"before_first", linear, -1, 0},
		{"after_last", linear, 2, 1},
		{"smoothstep_mid", flat, 0.5, 0.5},
		{"smoothstep_quarter", flat, 0.25, 0.15625},
		{"empty", nil, 0.5, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.curve.Evaluate(c.t); math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Evaluate(%v) = %v, want %v", c.t, got, c.want)
			}
		})
	}
}

func TestDefaultJumpCurveHitsKeys(t *testing.T) {
	curve := DefaultJumpCurve()
	for _, k := range curve {
		if got := curve.Evaluate(k.Time); math.Abs(got-k.Value) > 1e-9 {
			t.Fatalf("Evaluate(%v) = %v, want key value %v", k.Time, got, k.Value)
		}
	}
	if curve.Evaluate(0.2) <= 0 || curve.Evaluate(0.95) <= 0 {
		t.Fatalf("default jump curve should push upwards for the whole jump")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"bad_direction", func(c *Config) { c.DefaultDirection = 0 }, false},
		{"nil_curve", func(c *Config) { c.JumpCurve = nil }, false},
		{"zero_speed", func(c *Config) { c.MaxSpeed = 0 }, false},
		{"air_below_ground", func(c *Config) { c.AirMaxAcceleration = 0.1 }, false},
		{"zero_multiplier", func(c *Config) { c.AccelerationMultiplier = 0 }, false},
		{"zero_jump_rate", func(c *Config) { c.JumpRate = 0 }, false},
		{"upward_fall_force", func(c *Config) { c.FallForce = 1 }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection(" Left "); err != nil || d != Left {
		t.Fatalf("expected left, got %v %v", d, err)
	}
	if d, err := ParseDirection("RIGHT"); err != nil || d != Right {
		t.Fatalf("expected right, got %v %v", d, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Fatalf("expected error for unknown direction")
	}
}
