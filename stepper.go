package ragdoll

// Stepper. Advances the simulation exactly one fixed tick per call, in a
// strict order: score-time, head torque, control translation, solver
// advance, score update, termination check. Apply forces, call
// world.Step, then derive game state from the post-solve body
// transforms.

// Step advances the simulation by one tick. dt is the physics timestep
// and defaults to FixedTimeStep when <= 0; timeDt is the separate
// score-time delta and defaults to whatever dt resolved to when <= 0.
// Step always succeeds.
func (c *Core) Step(dt, timeDt float64) bool {
	if dt <= 0 {
		dt = FixedTimeStep
	}
	if timeDt <= 0 {
		timeDt = dt
	}

	if !c.state.GameEnded {
		c.state.ScoreTime += timeDt
	}

	if !c.state.Fallen {
		if head := c.bodies["head"]; head != nil {
			torque := HeadTorqueGain * (head.GetAngle() + HeadTorqueOffset)
			head.ApplyTorque(torque, true)
		}
	}

	c.translateControls()

	c.world.Step(dt, VelocityIterations, PositionIterations)

	if !c.state.JumpLanded && !c.state.GameEnded {
		if torso := c.bodies["torso"]; torso != nil {
			c.setScore(roundHalfAwayFromZero(torso.GetWorldCenter().X) / 10)
		}
	}

	if c.state.JumpLanded && !c.state.GameEnded {
		c.state.GameEnded = true
	} else if !c.state.JumpLanded && !c.state.GameEnded && c.state.Fallen {
		c.state.GameEnded = true
	}

	return true
}
