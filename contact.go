package ragdoll

import "github.com/ByteArena/box2d"

// Contact Monitor. Implements box2d.B2ContactListenerInterface and drives
// the jump/landing/fall state machine from new contact-begin events: a
// tag lookup on both bodies of the contact, extended with a
// world-manifold max-X read for the jump and landing thresholds.
type contactMonitor struct {
	core *Core
}

// contactSource is the subset of box2d.B2ContactInterface the monitor
// actually reads. Declaring it narrowly lets the jump/landing/fallback
// logic be exercised with a lightweight test double instead of a
// contact generated by a stepped world.
type contactSource interface {
	GetFixtureA() *box2d.B2Fixture
	GetFixtureB() *box2d.B2Fixture
	GetManifold() *box2d.B2Manifold
	GetWorldManifold(wm *box2d.B2WorldManifold)
}

// BeginContact inspects a new contact's two bodies, identifies which one
// (if either) is a ragdoll part touching the track, and advances the
// jump/fall/landing state machine accordingly.
func (m *contactMonitor) BeginContact(contact box2d.B2ContactInterface) {
	m.handleContact(contact)
}

func (m *contactMonitor) handleContact(contact contactSource) {
	state := &m.core.state
	if state.GameEnded {
		return
	}

	bodyA := contact.GetFixtureA().GetBody()
	bodyB := contact.GetFixtureB().GetBody()
	tagA, _ := bodyA.GetUserData().(string)
	tagB, _ := bodyB.GetUserData().(string)

	var partName string
	var partBody *box2d.B2Body
	switch {
	case tagA == trackTag && tagB != trackTag:
		partName, partBody = tagB, bodyB
	case tagB == trackTag && tagA != trackTag:
		partName, partBody = tagA, bodyA
	default:
		// Neither or both fixtures are track: not a ragdoll-vs-ground
		// contact, ignore.
		return
	}

	maxX := contactMaxX(contact, partBody)

	switch {
	case footParts[partName]:
		if state.Fallen {
			return
		}
		if !state.Jumped && maxX*WorldScale > SandPitX-JumpArmOffset {
			state.Jumped = true
		}
		if state.Jumped && !state.JumpLanded && maxX*WorldScale > SandPitX {
			state.JumpLanded = true
			m.core.setScore(roundHalfAwayFromZero(maxX) / 10)
		}

	case upperBodyFallParts[partName]:
		if !state.Fallen {
			state.Fallen = true
		}
		if state.Jumped && !state.JumpLanded {
			state.JumpLanded = true
		}
		m.core.setScore(roundHalfAwayFromZero(maxX) / 10)

	default:
		// Torso, thighs and calves touching the track are ignored by
		// design; the torso deliberately does not trigger a fall.
	}
}

// EndContact, PreSolve and PostSolve complete the listener interface;
// none of this core's state machine depends on them.
func (m *contactMonitor) EndContact(contact box2d.B2ContactInterface) {}
func (m *contactMonitor) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {
}
func (m *contactMonitor) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {
}

// contactMaxX returns the greatest world-space X among the contact's
// manifold points, falling back to the part body's world centre X when
// the manifold carries no points.
func contactMaxX(contact contactSource, partBody *box2d.B2Body) float64 {
	manifold := contact.GetManifold()
	if manifold == nil || manifold.PointCount == 0 {
		return partBody.GetWorldCenter().X
	}

	var wm box2d.B2WorldManifold
	contact.GetWorldManifold(&wm)

	maxX := wm.Points[0].X
	for i := 1; i < int(manifold.PointCount); i++ {
		if wm.Points[i].X > maxX {
			maxX = wm.Points[i].X
		}
	}
	return maxX
}
