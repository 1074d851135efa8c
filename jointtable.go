package ragdoll

import "github.com/ByteArena/box2d"

// jointSpec is the spawn-time definition of one hinge constraint between
// two named body parts. WorldAnchorA/B are given in world space; the
// World Builder transforms them into each body's local frame at
// construction time.
type jointSpec struct {
	Name                       string
	BodyA, BodyB               string
	WorldAnchorA, WorldAnchorB box2d.B2Vec2
	LowerAngle, UpperAngle     float64
	ReferenceAngle             float64
	EnableMotor                bool
	MaxMotorTorque             float64
}

// jointSpecs lists the eleven joints in construction order. Some solvers
// are order-sensitive, so this order is load-bearing, not incidental.
var jointSpecs = []jointSpec{
	{
		Name: "neck", BodyA: "head", BodyB: "torso",
		WorldAnchorA: box2d.MakeB2Vec2(3.5885141908, -4.5262242236),
		WorldAnchorB: box2d.MakeB2Vec2(3.5887333416, -4.5264346585),
		LowerAngle: -0.5, UpperAngle: 0.0, ReferenceAngle: -1.308996406363529,
		EnableMotor: false, MaxMotorTorque: 0,
	},
	{
		Name: "rightShoulder", BodyA: "rightArm", BodyB: "torso",
		WorldAnchorA: box2d.MakeB2Vec2(2.2284768218, -4.0864687322),
		WorldAnchorB: box2d.MakeB2Vec2(2.2289299939, -4.0870755594),
		LowerAngle: -0.5, UpperAngle: 1.5, ReferenceAngle: -0.785390706546396,
		EnableMotor: true, MaxMotorTorque: 1000,
	},
	{
		Name: "leftShoulder", BodyA: "leftArm", BodyB: "torso",
		WorldAnchorA: box2d.MakeB2Vec2(3.6241979857, -3.5334881618),
		WorldAnchorB: box2d.MakeB2Vec2(3.6241778782, -3.5339504345),
		LowerAngle: -2.0, UpperAngle: 0.0, ReferenceAngle: -2.094383118168290,
		EnableMotor: true, MaxMotorTorque: 1000,
	},
	{
		Name: "leftHip", BodyA: "leftThigh", BodyB: "torso",
		WorldAnchorA: box2d.MakeB2Vec2(2.0030339754, 0.2373716062),
		WorldAnchorB: box2d.MakeB2Vec2(2.0033671814, 0.2380259039),
		LowerAngle: -1.5, UpperAngle: 0.5, ReferenceAngle: 0.725847750894404,
		EnableMotor: true, MaxMotorTorque: 6000,
	},
	{
		Name: "rightHip", BodyA: "rightThigh", BodyB: "torso",
		WorldAnchorA: box2d.MakeB2Vec2(1.2475900729, -0.0110466429),
		WorldAnchorB: box2d.MakeB2Vec2(1.2470052824, -0.0116353472),
		LowerAngle: -1.3, UpperAngle: 0.7, ReferenceAngle: -2.719359381718199,
		EnableMotor: true, MaxMotorTorque: 6000,
	},
	{
		Name: "leftElbow", BodyA: "leftForearm", BodyB: "leftArm",
		WorldAnchorA: box2d.MakeB2Vec2(5.5253753328, -1.6385620493),
		WorldAnchorB: box2d.MakeB2Vec2(5.5253753295, -1.6385620366),
		LowerAngle: -0.1, UpperAngle: 0.5, ReferenceAngle: 2.094383118168290,
		EnableMotor: false, MaxMotorTorque: 0,
	},
	{
		Name: "rightElbow", BodyA: "rightForearm", BodyB: "rightArm",
		WorldAnchorA: box2d.MakeB2Vec2(-0.0060908591, -2.8004758839),
		WorldAnchorB: box2d.MakeB2Vec2(-0.0060908612, -2.8004758929),
		LowerAngle: -0.1, UpperAngle: 0.5, ReferenceAngle: 1.296819901227469,
		EnableMotor: false, MaxMotorTorque: 0,
	},
	{
		Name: "leftKnee", BodyA: "leftCalf", BodyB: "leftThigh",
		WorldAnchorA: box2d.MakeB2Vec2(3.3843234120, 3.5168931241),
		WorldAnchorB: box2d.MakeB2Vec2(3.3844684377, 3.5174122998),
		LowerAngle: -1.6, UpperAngle: 0.0, ReferenceAngle: -0.395311376411983,
		EnableMotor: true, MaxMotorTorque: 3000,
	},
	{
		Name: "rightKnee", BodyA: "rightCalf", BodyB: "rightThigh",
		WorldAnchorA: box2d.MakeB2Vec2(1.4982369235, 4.1756003060),
		WorldAnchorB: box2d.MakeB2Vec2(1.4982043533, 4.1749352067),
		LowerAngle: -1.3, UpperAngle: 0.3, ReferenceAngle: 2.289340624715868,
		EnableMotor: true, MaxMotorTorque: 3000,
	},
	{
		// Ankle motor torque ceiling (2000) is retained even though the
		// motor is disabled and the value is never applied.
		Name: "leftAnkle", BodyA: "leftFoot", BodyB: "leftCalf",
		WorldAnchorA: box2d.MakeB2Vec2(3.3123225078, 7.9477048539),
		WorldAnchorB: box2d.MakeB2Vec2(3.3123224825, 7.9477048363),
		LowerAngle: -0.5, UpperAngle: 0.5, ReferenceAngle: -1.724432758501023,
		EnableMotor: false, MaxMotorTorque: 2000,
	},
	{
		Name: "rightAnkle", BodyA: "rightFoot", BodyB: "rightCalf",
		WorldAnchorA: box2d.MakeB2Vec2(-1.6562855402, 6.9615514526),
		WorldAnchorB: box2d.MakeB2Vec2(-1.6557266705, 6.9614938270),
		LowerAngle: -0.5, UpperAngle: 0.5, ReferenceAngle: -1.570804582594276,
		EnableMotor: false, MaxMotorTorque: 2000,
	},
}

// defaultHipLimits are the hip joint limits in effect whenever neither
// the O-group nor the P-group control is held.
var defaultHipLimits = map[string][2]float64{
	"leftHip":  {-1.5, 0.5},
	"rightHip": {-1.3, 0.7},
}
