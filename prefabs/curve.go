package prefabs

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/motion"
)

var ErrCurveResult = errors.New("prefabs: curve script must assign a number to v")

// ScriptCurve evaluates a tengo script as a jump curve. The script reads
// the normalized jump time from t and assigns the vertical velocity to v.
type ScriptCurve struct {
	compiled *tengo.Compiled
	failed   bool
}

var _ motion.Curve = (*ScriptCurve)(nil)

// NewScriptCurve compiles src and checks it yields a finite number across
// the whole jump.
func NewScriptCurve(src []byte) (*ScriptCurve, error) {
	script := tengo.NewScript(src)
	if err := script.Add("t", 0.0); err != nil {
		return nil, err
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	c := &ScriptCurve{compiled: compiled}
	for _, t := range []float64{0, 0.5, 1} {
		if _, err := c.eval(t); err != nil {
			return nil, fmt.Errorf("t=%v: %w", t, err)
		}
	}
	return c, nil
}

func (c *ScriptCurve) eval(t float64) (float64, error) {
	if err := c.compiled.Set("t", t); err != nil {
		return 0, err
	}
	if err := c.compiled.Run(); err != nil {
		return 0, err
	}
	if !c.compiled.IsDefined("v") {
		return 0, ErrCurveResult
	}
	var v float64
	switch o := c.compiled.Get("v").Object().(type) {
	case *tengo.Float:
		v = o.Value
	case *tengo.Int:
		v = float64(o.Value)
	default:
		return 0, ErrCurveResult
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrCurveResult
	}
	return v, nil
}

// Evaluate returns 0 when the script fails at runtime; the failure is logged
// once.
func (c *ScriptCurve) Evaluate(t float64) float64 {
	v, err := c.eval(t)
	if err != nil {
		if !c.failed {
			log.Printf("prefabs: curve script: %v", err)
			c.failed = true
		}
		return 0
	}
	return v
}
