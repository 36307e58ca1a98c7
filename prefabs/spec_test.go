package prefabs

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/motion"
	"gopkg.in/yaml.v3"
)

func withDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedPlayerSpecBuildsDefaultConfig(t *testing.T) {
	withDir(t, t.TempDir())

	spec, err := LoadMoverSpec("player.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	def := motion.DefaultConfig()
	if cfg.MaxSpeed != def.MaxSpeed || cfg.GroundMaxAcceleration != def.GroundMaxAcceleration ||
		cfg.AirMaxAcceleration != def.AirMaxAcceleration || cfg.JumpRate != def.JumpRate ||
		cfg.FallForce != def.FallForce || cfg.DefaultDirection != def.DefaultDirection {
		t.Fatalf("embedded player.yaml drifted from defaults: %+v", cfg)
	}
	for _, x := range []float64{0, 0.3, 0.7, 1} {
		if got, want := cfg.JumpCurve.Evaluate(x), def.JumpCurve.Evaluate(x); math.Abs(got-want) > 1e-9 {
			t.Fatalf("curve(%v) = %v, want %v", x, got, want)
		}
	}
	if spec.Sprite.Color == nil {
		t.Fatalf("expected sprite color")
	}
	if spec.Physics.LongFallSeconds <= 0 || spec.Physics.Gravity >= 0 {
		t.Fatalf("unexpected physics block %+v", spec.Physics)
	}
}

func TestDiskOverrideKeepsOmittedDefaults(t *testing.T) {
	dir := t.TempDir()
	withDir(t, dir)
	src := "name: quick\nmax_speed: 0.12\ndirection: left\n"
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadMoverSpec("prefabs/player.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg, err := spec.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.MaxSpeed != 0.12 || cfg.DefaultDirection != motion.Left {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if cfg.JumpRate != 4 || spec.Physics.Height != 1 {
		t.Fatalf("omitted keys should keep defaults, got jump rate %v height %v", cfg.JumpRate, spec.Physics.Height)
	}
}

func TestMoverSpecConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*MoverSpec)
		want   error
	}{
		{"bad_direction", func(s *MoverSpec) { s.Direction = "up" }, nil},
		{"zero_speed", func(s *MoverSpec) { s.MaxSpeed = 0 }, motion.ErrInvalidConfig},
		{"air_below_ground", func(s *MoverSpec) { s.AirMaxAcceleration = 0.1 }, motion.ErrInvalidConfig},
		{"missing_script", func(s *MoverSpec) { s.JumpCurve.Script = "nope.tengo" }, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := DefaultMoverSpec()
			c.mutate(&spec)
			_, err := spec.Config()
			if err == nil {
				t.Fatalf("expected error")
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestCurveSpecScript(t *testing.T) {
	withDir(t, t.TempDir())

	curve, err := CurveSpec{Script: "floaty.tengo"}.Curve()
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if got := curve.Evaluate(0); math.Abs(got-9) > 1e-9 {
		t.Fatalf("curve(0) = %v, want 9", got)
	}
	if got := curve.Evaluate(1); math.Abs(got-2) > 1e-9 {
		t.Fatalf("curve(1) = %v, want 2", got)
	}
}

func TestLoadLevelSpec(t *testing.T) {
	withDir(t, t.TempDir())

	level, err := LoadLevelSpec("level.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(level.Solids) == 0 || len(level.Signs) == 0 {
		t.Fatalf("expected solids and signs, got %+v", level)
	}
	if level.KillY >= level.SpawnY {
		t.Fatalf("kill height must be below spawn")
	}
	if level.Signs[0].Message == "" || level.Signs[0].Box.W <= 0 {
		t.Fatalf("sign not decoded: %+v", level.Signs[0])
	}

	dir := t.TempDir()
	withDir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "level.yaml"), []byte("name: empty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevelSpec("level.yaml"); !errors.Is(err, ErrNoSolids) {
		t.Fatalf("expected ErrNoSolids, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: `"#ff8000"`, want: color.NRGBA{R: 255, G: 128, A: 255}},
		{in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{in: `red`, want: color.NRGBA{R: 255, A: 255}},
		{in: `"#12345"`, wantErr: true},
		{in: `"#gg0000"`, wantErr: true},
		{in: `[1, 2]`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			r, g, b, a := got.RGBA()
			wr, wg, wb, wa := c.want.RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				t.Fatalf("got %v, want %v", got.Color, c.want)
			}
		})
	}
}
