package ragdoll

import "gonum.org/v1/gonum/mat"

// State Exporter. Produces a fixed-shape observation on demand, with no
// mutation. The 60-float block is carried as a *mat.VecDense rather than
// a bare []float64.

// Observation is the fixed-width record a caller reads game state through.
// Units are not renormalised; callers perform their own scaling.
type Observation struct {
	// Obs holds 12 body parts (construction order, see bodySpecs) × 5
	// scalars each: worldCenter.x, worldCenter.y, angle, linearVelocity.x,
	// linearVelocity.y. A missing body (pre-reset) contributes five
	// zeros.
	Obs *mat.VecDense

	Distance float64 // torso.worldCenter.x / 10, or 0 if no torso
	Time     float64 // ScoreTime / 10

	// GameEnded mirrors GameState.GameEnded, OR'd with the distance
	// bounds below so a caller always observes termination even if the
	// core's own state machine hasn't flipped GameEnded yet.
	GameEnded bool
	Success   bool // Distance > SuccessDistance

	Fallen     bool
	Jumped     bool
	JumpLanded bool
}

// GetObservation reads the current state into an Observation. It never
// mutates the Core.
func (c *Core) GetObservation() Observation {
	data := make([]float64, len(bodySpecs)*5)
	for i, s := range bodySpecs {
		body := c.bodies[s.Name]
		if body == nil {
			continue // leaves this part's five scalars at zero
		}
		center := body.GetWorldCenter()
		vel := body.GetLinearVelocity()
		base := i * 5
		data[base+0] = center.X
		data[base+1] = center.Y
		data[base+2] = body.GetAngle()
		data[base+3] = vel.X
		data[base+4] = vel.Y
	}

	var distance float64
	if torso := c.bodies["torso"]; torso != nil {
		distance = torso.GetWorldCenter().X / 10
	}

	return Observation{
		Obs:      mat.NewVecDense(len(data), data),
		Distance: distance,
		Time:     c.state.ScoreTime / 10,
		GameEnded: c.state.GameEnded ||
			distance < DistanceLowerBound ||
			distance > DistanceUpperBound,
		Success:    distance > SuccessDistance,
		Fallen:     c.state.Fallen,
		Jumped:     c.state.Jumped,
		JumpLanded: c.state.JumpLanded,
	}
}
