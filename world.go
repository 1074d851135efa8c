package ragdoll

import (
	"log/slog"

	"github.com/ByteArena/box2d"
)

// World Builder. Constructs the physics world, the ground, and the
// ragdoll's bodies and joints from the constant tables in bodytable.go
// and jointtable.go, using a lazy-create-then-rebuild shape: the world
// and ground are built once, the ragdoll itself is torn down and rebuilt
// on every reset.

// createWorld builds the Box2D world and its three ground segments. It
// runs exactly once per Core, on the first Reset.
func (c *Core) createWorld() {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, GravityY))
	world.SetAllowSleeping(AllowSleep)
	c.world = world
	c.world.SetContactListener(&contactMonitor{core: c})

	c.ground = make([]*box2d.B2Body, 0, len(groundX))
	for _, x := range groundX {
		def := box2d.NewB2BodyDef()
		def.Type = 0 // static
		def.Position = box2d.MakeB2Vec2(x, GroundY)
		def.UserData = trackTag
		body := c.world.CreateBody(def)

		shape := box2d.NewB2PolygonShape()
		shape.SetAsBox(GroundHalfWidth, GroundHalfHeight)

		fixture := box2d.MakeB2FixtureDef()
		fixture.Shape = shape
		fixture.Friction = GroundFriction
		fixture.Density = GroundDensity
		filter := box2d.MakeB2Filter()
		filter.CategoryBits = GroundCategoryBits
		filter.MaskBits = GroundMaskBits
		fixture.Filter = filter
		body.CreateFixtureFromDef(&fixture)

		c.ground = append(c.ground, body)
	}

	c.worldReady = true
}

// buildBodies constructs the twelve body parts in bodySpecs order and
// indexes them by name. Called on every reset.
func (c *Core) buildBodies() {
	c.bodies = make(map[string]*box2d.B2Body, len(bodySpecs))

	for _, s := range bodySpecs {
		def := box2d.NewB2BodyDef()
		def.Type = 2 // dynamic
		def.Position = box2d.MakeB2Vec2(s.X, s.Y)
		def.Angle = s.Angle
		def.UserData = s.Name
		body := c.world.CreateBody(def)

		shape := box2d.NewB2PolygonShape()
		shape.SetAsBox(s.HalfWidth, s.HalfHeight)

		fixture := box2d.MakeB2FixtureDef()
		fixture.Shape = shape
		fixture.Density = s.Density
		fixture.Friction = s.Friction
		filter := box2d.MakeB2Filter()
		filter.CategoryBits = RagdollCategoryBits
		filter.MaskBits = RagdollMaskBits
		fixture.Filter = filter
		body.CreateFixtureFromDef(&fixture)

		c.bodies[s.Name] = body
	}
}

// buildJoints constructs the eleven revolute joints in jointSpecs order,
// transforming each world anchor into its body's local frame at
// construction time. Called on every reset, after buildBodies.
func (c *Core) buildJoints() {
	c.joints = make(map[string]*box2d.B2RevoluteJoint, len(jointSpecs))

	for _, s := range jointSpecs {
		bodyA, bodyB := c.bodies[s.BodyA], c.bodies[s.BodyB]
		if bodyA == nil || bodyB == nil {
			slog.Warn("world builder: joint references missing body, skipping",
				"joint", s.Name, "bodyA", s.BodyA, "bodyB", s.BodyB)
			continue
		}

		def := box2d.MakeB2RevoluteJointDef()
		def.BodyA = bodyA
		def.BodyB = bodyB
		def.LocalAnchorA = bodyA.GetLocalPoint(s.WorldAnchorA)
		def.LocalAnchorB = bodyB.GetLocalPoint(s.WorldAnchorB)
		def.ReferenceAngle = s.ReferenceAngle
		def.EnableLimit = true
		def.LowerAngle = s.LowerAngle
		def.UpperAngle = s.UpperAngle
		def.EnableMotor = s.EnableMotor
		def.MotorSpeed = 0
		def.MaxMotorTorque = s.MaxMotorTorque

		joint, ok := c.world.CreateJoint(&def).(*box2d.B2RevoluteJoint)
		if !ok {
			panic("world builder: solver returned a non-revolute joint for " + s.Name)
		}
		c.joints[s.Name] = joint
	}
}

// destroyRagdoll tears down the current bodies and joints, retaining the
// world and ground. Safe to call before any bodies have been built.
func (c *Core) destroyRagdoll() {
	for _, j := range c.joints {
		c.world.DestroyJoint(j)
	}
	c.joints = nil

	for _, b := range c.bodies {
		c.world.DestroyBody(b)
	}
	c.bodies = nil
}
