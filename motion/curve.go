package motion

import "sort"

// Curve maps normalized jump progress in [0,1] to a vertical velocity.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain func to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Evaluate(t float64) float64 {
	return f(t)
}

// Keyframe is one control point of a Keyframes curve. Tangents are slopes
// (value per unit of time) on either side of the key.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Keyframes is a cubic Hermite curve through keys sorted by Time. Outside
// the key range it holds the first/last value.
type Keyframes []Keyframe

// NewKeyframes copies and sorts keys by time.
func NewKeyframes(keys ...Keyframe) Keyframes {
	out := append(Keyframes(nil), keys...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func (k Keyframes) Evaluate(t float64) float64 {
	n := len(k)
	if n == 0 {
		return 0
	}
	if t <= k[0].Time {
		return k[0].Value
	}
	if t >= k[n-1].Time {
		return k[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return k[i].Time > t })
	a, b := k[i-1], k[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}

	s := (t - a.Time) / span
	s2 := s * s
	s3 := s2 * s
	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*a.Value + h10*span*a.OutTangent + h01*b.Value + h11*span*b.InTangent
}

// DefaultJumpCurve starts strong and eases off towards the apex.
func DefaultJumpCurve() Keyframes {
	return NewKeyframes(
		Keyframe{Time: 0, Value: 9, OutTangent: 0},
		Keyframe{Time: 0.7, Value: 6, InTangent: -8, OutTangent: -8},
		Keyframe{Time: 1, Value: 2, InTangent: -14},
	)
}
