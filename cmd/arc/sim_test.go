package main

import (
	"testing"

	"github.com/milk9111/platformer/prefabs"
)

func TestSimulateArc(t *testing.T) {
	spec := prefabs.DefaultMoverSpec()

	full, err := simulateArc(spec, maxSimTicks)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if full.Ticks >= maxSimTicks {
		t.Fatalf("mover never landed")
	}
	if full.JumpTick != 1 {
		t.Fatalf("jump event should arrive one step after take-off, got tick %d", full.JumpTick)
	}
	if full.Apex.Y <= 0 || full.Apex.X <= 0 {
		t.Fatalf("expected a forward arc, apex %+v", full.Apex)
	}
	if full.LandSpeed <= 0 {
		t.Fatalf("expected an impact speed on landing")
	}

	// the curve drives the body for 1/JumpRate seconds and stays positive
	curveTicks := int(60 / spec.JumpRate)
	for i := 1; i < curveTicks; i++ {
		if full.Points[i].Y <= full.Points[i-1].Y {
			t.Fatalf("expected a steady rise while the curve drives the jump, tick %d", i)
		}
	}

	short, err := simulateArc(spec, 3)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if short.Apex == full.Apex {
		t.Fatalf("releasing jump early should change the arc")
	}
}

func TestSimulateArcRejectsBadSpec(t *testing.T) {
	spec := prefabs.DefaultMoverSpec()
	spec.MaxSpeed = -1
	if _, err := simulateArc(spec, 10); err == nil {
		t.Fatalf("expected config error")
	}
}
