package ragdoll

import (
	"math"
	"testing"
)

func TestGetObservationShapeAndOrder(t *testing.T) {
	c := NewCore()
	obs := c.GetObservation()

	if got, want := obs.Obs.Len(), len(bodySpecs)*5; got != want {
		t.Fatalf("observation length = %d, want %d", got, want)
	}

	for i, s := range bodySpecs {
		base := i * 5
		if got := obs.Obs.AtVec(base); math.Abs(got-s.X) > poseEpsilon {
			t.Errorf("body %d (%s) x = %v, want %v", i, s.Name, got, s.X)
		}
		if got := obs.Obs.AtVec(base + 2); math.Abs(got-s.Angle) > poseEpsilon {
			t.Errorf("body %d (%s) angle = %v, want %v", i, s.Name, got, s.Angle)
		}
		// velocities are zero at spawn, no solver step has run yet
		if got := obs.Obs.AtVec(base + 3); got != 0 {
			t.Errorf("body %d (%s) vx = %v, want 0 at spawn", i, s.Name, got)
		}
	}
}

func TestGetObservationDoesNotMutateState(t *testing.T) {
	c := NewCore()
	before := c.state

	_ = c.GetObservation()
	_ = c.GetObservation()

	if before != c.state {
		t.Errorf("GetObservation mutated GameState: before=%+v after=%+v", before, c.state)
	}
}

func TestGetObservationDistanceScaling(t *testing.T) {
	c := NewCore()
	c.TeleportTorsoX(50)

	obs := c.GetObservation()
	if math.Abs(obs.Distance-5) > poseEpsilon {
		t.Errorf("Distance = %v, want 5 (50/10)", obs.Distance)
	}
}
