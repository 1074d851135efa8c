package ragdoll

import (
	"testing"

	"github.com/ByteArena/box2d"
)

// fakeContact stands in for a solver-produced contact: fixed fixtures
// plus a hand-set manifold/world-manifold, so the jump/landing
// thresholds and the empty-manifold fallback can be driven directly
// without stepping a real world 1000 units.
type fakeContact struct {
	fixtureA, fixtureB *box2d.B2Fixture
	manifold           *box2d.B2Manifold
	worldManifold      box2d.B2WorldManifold
}

func (f *fakeContact) GetFixtureA() *box2d.B2Fixture { return f.fixtureA }
func (f *fakeContact) GetFixtureB() *box2d.B2Fixture { return f.fixtureB }
func (f *fakeContact) GetManifold() *box2d.B2Manifold { return f.manifold }
func (f *fakeContact) GetWorldManifold(wm *box2d.B2WorldManifold) { *wm = f.worldManifold }

// newTaggedFixture builds a minimal dynamic body with a box fixture,
// tagged by name, in a standalone world — enough to exercise tag lookup
// and GetWorldCenter without the full ragdoll.
func newTaggedFixture(world *box2d.B2World, tag string, x float64) *box2d.B2Fixture {
	def := box2d.NewB2BodyDef()
	def.Type = 2
	def.Position = box2d.MakeB2Vec2(x, 0)
	def.UserData = tag
	body := world.CreateBody(def)

	shape := box2d.NewB2PolygonShape()
	shape.SetAsBox(0.5, 0.5)

	fixtureDef := box2d.MakeB2FixtureDef()
	fixtureDef.Shape = shape
	fixtureDef.Density = 1

	return body.CreateFixtureFromDef(&fixtureDef)
}

// singlePointManifold returns a one-point manifold/world-manifold pair
// reporting x as the contact's world-space X.
func singlePointManifold(x float64) (*box2d.B2Manifold, box2d.B2WorldManifold) {
	manifold := &box2d.B2Manifold{PointCount: 1}
	var wm box2d.B2WorldManifold
	wm.Points[0] = box2d.MakeB2Vec2(x, 0)
	return manifold, wm
}

func TestFootAndFallPartsAreDisjoint(t *testing.T) {
	for name := range footParts {
		if upperBodyFallParts[name] {
			t.Errorf("%q is in both footParts and upperBodyFallParts", name)
		}
	}
}

func TestTorsoAndLegsAreNotFallTriggers(t *testing.T) {
	ignored := []string{"torso", "leftThigh", "rightThigh", "leftCalf", "rightCalf"}
	for _, name := range ignored {
		if upperBodyFallParts[name] {
			t.Errorf("%q must not trigger a fall on track contact", name)
		}
		if footParts[name] {
			t.Errorf("%q must not be treated as a foot", name)
		}
	}
}

func TestContactMonitorIgnoresContactsOnceGameEnded(t *testing.T) {
	c := NewCore()
	c.state.GameEnded = true
	before := c.state

	m := &contactMonitor{core: c}
	// BeginContact's first line must return immediately once GameEnded is
	// set; nothing else in GameState should move as a result of calling
	// it with a nil contact, which would otherwise panic deref'ing it.
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("BeginContact panicked on a GameEnded core: %v", r)
			}
		}()
		m.BeginContact(nil)
	}()

	if before != c.state {
		t.Errorf("GameState changed despite GameEnded being true: before=%+v after=%+v", before, c.state)
	}
}

// jumpArm threshold: maxX*WorldScale > SandPitX-JumpArmOffset, i.e. maxX > 989.
func TestJumpArmsAboveThresholdNotBelow(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	track := newTaggedFixture(&world, trackTag, 0)
	foot := newTaggedFixture(&world, "leftFoot", 0)

	below := NewCore()
	m := &contactMonitor{core: below}
	manifold, wm := singlePointManifold(988.99)
	m.handleContact(&fakeContact{fixtureA: track, fixtureB: foot, manifold: manifold, worldManifold: wm})
	if below.state.Jumped {
		t.Errorf("Jumped = true at maxX=988.99 (%v px), want false", 988.99*WorldScale)
	}

	above := NewCore()
	m = &contactMonitor{core: above}
	manifold, wm = singlePointManifold(989.01)
	m.handleContact(&fakeContact{fixtureA: track, fixtureB: foot, manifold: manifold, worldManifold: wm})
	if !above.state.Jumped {
		t.Errorf("Jumped = false at maxX=989.01 (%v px), want true", 989.01*WorldScale)
	}
	if above.state.JumpLanded {
		t.Errorf("JumpLanded = true on a jump-arming contact alone")
	}
}

// Landing threshold: maxX*WorldScale > SandPitX, i.e. maxX > 1000, and
// only once Jumped is already true.
func TestLandingCompletesJumpAboveThresholdNotBelow(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	track := newTaggedFixture(&world, trackTag, 0)
	foot := newTaggedFixture(&world, "rightFoot", 0)

	arm := func(c *Core) {
		m := &contactMonitor{core: c}
		manifold, wm := singlePointManifold(995) // arms the jump, doesn't land
		m.handleContact(&fakeContact{fixtureA: track, fixtureB: foot, manifold: manifold, worldManifold: wm})
	}

	below := NewCore()
	arm(below)
	m := &contactMonitor{core: below}
	manifold, wm := singlePointManifold(999.99)
	m.handleContact(&fakeContact{fixtureA: track, fixtureB: foot, manifold: manifold, worldManifold: wm})
	if below.state.JumpLanded {
		t.Errorf("JumpLanded = true at maxX=999.99 (%v px), want false", 999.99*WorldScale)
	}

	above := NewCore()
	arm(above)
	m = &contactMonitor{core: above}
	manifold, wm = singlePointManifold(1000.01)
	m.handleContact(&fakeContact{fixtureA: track, fixtureB: foot, manifold: manifold, worldManifold: wm})
	if !above.state.JumpLanded {
		t.Errorf("JumpLanded = false at maxX=1000.01 (%v px), want true", 1000.01*WorldScale)
	}
	wantScore := roundHalfAwayFromZero(1000.01) / 10
	if above.state.Score != wantScore {
		t.Errorf("Score after landing = %v, want %v", above.state.Score, wantScore)
	}
	if above.state.HighScore < wantScore {
		t.Errorf("HighScore = %v, want >= %v", above.state.HighScore, wantScore)
	}
}

func TestContactMaxXFallsBackToBodyCenterOnEmptyManifold(t *testing.T) {
	world := box2d.MakeB2World(box2d.MakeB2Vec2(0, 0))
	foot := newTaggedFixture(&world, "leftFoot", 42)
	body := foot.GetBody()

	for _, manifold := range []*box2d.B2Manifold{nil, {PointCount: 0}} {
		got := contactMaxX(&fakeContact{manifold: manifold}, body)
		if got != body.GetWorldCenter().X {
			t.Errorf("contactMaxX with empty manifold = %v, want body centre %v", got, body.GetWorldCenter().X)
		}
	}
}
