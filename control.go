package ragdoll

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r1"
)

// Control Translator. Runs once per Step, before the solver advances.
// Hip-limit reconfiguration is an overwrite on every call, not a stack:
// the default-limits branch runs on every step in which neither O nor P
// is held, so a manual limit change between steps is always transient.

func (c *Core) translateControls() {
	k := c.keys

	var rightHip, leftHip, rightShoulder, leftShoulder float64
	switch {
	case k.Q:
		rightHip, leftHip, rightShoulder, leftShoulder = 2.5, -2.5, -2.0, 2.0
	case k.W:
		rightHip, leftHip, rightShoulder, leftShoulder = -2.5, 2.5, 2.0, -2.0
	}
	c.setMotorSpeed("rightHip", rightHip)
	c.setMotorSpeed("leftHip", leftHip)
	c.setMotorSpeed("rightShoulder", rightShoulder)
	c.setMotorSpeed("leftShoulder", leftShoulder)

	var rightKnee, leftKnee float64
	var leftHipLimits, rightHipLimits r1.Interval
	switch {
	case k.O:
		rightKnee, leftKnee = 2.5, -2.5
		leftHipLimits = r1.Interval{Min: -1.0, Max: 1.0}
		rightHipLimits = r1.Interval{Min: -1.3, Max: 0.7}
	case k.P:
		rightKnee, leftKnee = -2.5, 2.5
		leftHipLimits = r1.Interval{Min: -1.5, Max: 0.5}
		rightHipLimits = r1.Interval{Min: -0.8, Max: 1.2}
	default:
		leftHipLimits = r1.Interval{Min: defaultHipLimits["leftHip"][0], Max: defaultHipLimits["leftHip"][1]}
		rightHipLimits = r1.Interval{Min: defaultHipLimits["rightHip"][0], Max: defaultHipLimits["rightHip"][1]}
	}
	c.setMotorSpeed("rightKnee", rightKnee)
	c.setMotorSpeed("leftKnee", leftKnee)
	c.setJointLimits("leftHip", leftHipLimits)
	c.setJointLimits("rightHip", rightHipLimits)
}

// setMotorSpeed commands a joint's motor speed. A missing joint (e.g.
// before the first Reset) is a no-op, logged at Warn level on every
// dropped command so the condition isn't completely invisible in practice.
func (c *Core) setMotorSpeed(name string, speed float64) {
	j := c.joints[name]
	if j == nil {
		slog.Warn("control translator: joint missing, speed command dropped", "joint", name)
		return
	}
	j.SetMotorSpeed(speed)
}

// setJointLimits overwrites a joint's angular limits.
func (c *Core) setJointLimits(name string, limits r1.Interval) {
	j := c.joints[name]
	if j == nil {
		slog.Warn("control translator: joint missing, limit update dropped", "joint", name)
		return
	}
	j.SetLimits(limits.Min, limits.Max)
}
