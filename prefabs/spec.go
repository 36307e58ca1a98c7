package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/platformer/motion"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrNoSolids = errors.New("prefabs: level has no solids")

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decode(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

func decode(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

// MoverSpec is the YAML form of a character's movement tuning.
type MoverSpec struct {
	Name                   string      `yaml:"name"`
	Direction              string      `yaml:"direction"`
	MaxSpeed               float64     `yaml:"max_speed"`
	GroundMaxAcceleration  float64     `yaml:"ground_max_acceleration"`
	AirMaxAcceleration     float64     `yaml:"air_max_acceleration"`
	AccelerationMultiplier float64     `yaml:"acceleration_multiplier"`
	JumpRate               float64     `yaml:"jump_rate"`
	FallForce              float64     `yaml:"fall_force"`
	JumpCurve              CurveSpec   `yaml:"jump_curve"`
	Physics                PhysicsSpec `yaml:"physics"`
	Sprite                 MoverSprite `yaml:"sprite"`
}

// CurveSpec picks a jump curve: a tengo script when Script is set,
// otherwise Keys. Both empty means the stock curve.
type CurveSpec struct {
	Script string    `yaml:"script"`
	Keys   []KeySpec `yaml:"keys"`
}

type KeySpec struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in_tangent"`
	OutTangent float64 `yaml:"out_tangent"`
}

type PhysicsSpec struct {
	Gravity         float64 `yaml:"gravity"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Mass            float64 `yaml:"mass"`
	Friction        float64 `yaml:"friction"`
	LongFallSeconds float64 `yaml:"long_fall_seconds"`
}

type MoverSprite struct {
	Color *YAMLColor `yaml:"color"`
}

// DefaultMoverSpec mirrors motion.DefaultConfig plus a unit-sized body.
func DefaultMoverSpec() MoverSpec {
	cfg := motion.DefaultConfig()
	return MoverSpec{
		Name:                   "player",
		Direction:              cfg.DefaultDirection.String(),
		MaxSpeed:               cfg.MaxSpeed,
		GroundMaxAcceleration:  cfg.GroundMaxAcceleration,
		AirMaxAcceleration:     cfg.AirMaxAcceleration,
		AccelerationMultiplier: cfg.AccelerationMultiplier,
		JumpRate:               cfg.JumpRate,
		FallForce:              cfg.FallForce,
		Physics: PhysicsSpec{
			Gravity:         -20,
			Width:           0.8,
			Height:          1,
			Mass:            1,
			LongFallSeconds: 0.6,
		},
	}
}

// LoadMoverSpec reads filename over DefaultMoverSpec, so omitted keys keep
// their stock value.
func LoadMoverSpec(filename string) (MoverSpec, error) {
	spec := DefaultMoverSpec()
	if err := decode(filename, &spec); err != nil {
		return MoverSpec{}, err
	}
	return spec, nil
}

// Config builds the motion config, compiling the jump curve script if one
// is named.
func (s MoverSpec) Config() (motion.Config, error) {
	dir, err := motion.ParseDirection(s.Direction)
	if err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	curve, err := s.JumpCurve.Curve()
	if err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: %s: jump curve: %w", s.Name, err)
	}
	cfg := motion.Config{
		DefaultDirection:       dir,
		JumpCurve:              curve,
		MaxSpeed:               s.MaxSpeed,
		GroundMaxAcceleration:  s.GroundMaxAcceleration,
		AirMaxAcceleration:     s.AirMaxAcceleration,
		AccelerationMultiplier: s.AccelerationMultiplier,
		JumpRate:               s.JumpRate,
		FallForce:              s.FallForce,
	}
	if err := cfg.Validate(); err != nil {
		return motion.Config{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return cfg, nil
}

func (c CurveSpec) Curve() (motion.Curve, error) {
	if c.Script != "" {
		src, err := LoadScript(c.Script)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", c.Script, err)
		}
		return NewScriptCurve(src)
	}
	if len(c.Keys) == 0 {
		return motion.DefaultJumpCurve(), nil
	}
	keys := make([]motion.Keyframe, 0, len(c.Keys))
	for _, k := range c.Keys {
		keys = append(keys, motion.Keyframe{
			Time:       k.Time,
			Value:      k.Value,
			InTangent:  k.InTangent,
			OutTangent: k.OutTangent,
		})
	}
	return motion.NewKeyframes(keys...), nil
}

// LevelSpec is static geometry plus spawn and kill settings.
type LevelSpec struct {
	Name   string     `yaml:"name"`
	SpawnX float64    `yaml:"spawn_x"`
	SpawnY float64    `yaml:"spawn_y"`
	KillY  float64    `yaml:"kill_y"`
	Solids []BoxSpec  `yaml:"solids"`
	Signs  []SignSpec `yaml:"signs"`
}

// BoxSpec is an axis-aligned box given by its bottom-left corner.
type BoxSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type SignSpec struct {
	Box     BoxSpec `yaml:",inline"`
	Message string  `yaml:"message"`
}

func LoadLevelSpec(filename string) (LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return LevelSpec{}, err
	}
	if len(spec.Solids) == 0 {
		return LevelSpec{}, fmt.Errorf("%w: %s", ErrNoSolids, filename)
	}
	for i, b := range spec.Solids {
		if b.W <= 0 || b.H <= 0 {
			return LevelSpec{}, fmt.Errorf("prefabs: %s: solid %d has non-positive size", filename, i)
		}
	}
	return spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
