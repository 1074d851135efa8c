package ragdoll

import (
	"github.com/ByteArena/box2d"
	"gonum.org/v1/gonum/stat/distuv"
)

// KeyState is the four-button control input.
type KeyState struct {
	Q, W, O, P bool
}

// GameState is the episode-scoped bookkeeping record. It is reset to
// zero on every Reset, except HighScore, which persists.
type GameState struct {
	ScoreTime float64
	Score     float64
	HighScore float64

	GameEnded  bool
	Fallen     bool
	Jumped     bool
	JumpLanded bool
}

// Core is the headless ragdoll physics core: a single state machine
// wrapping the World Builder, Control Translator, Stepper, Contact
// Monitor and State Exporter. It exposes four operations — Reset,
// SetAction, Step and GetObservation — plus the test-only TeleportTorsoX
// hook, and is safe to run on its
// own goroutine; it owns no shared state with any other Core instance.
type Core struct {
	world       box2d.B2World
	worldReady  bool
	ground      []*box2d.B2Body
	bodies      map[string]*box2d.B2Body
	joints      map[string]*box2d.B2RevoluteJoint

	keys  KeyState
	state GameState

	// firstClick is the click-to-start gate a windowed build would check
	// before advancing the stepper. This core has no window to click on,
	// so it is always true and nothing reads it. It is a Core field, not
	// part of GameState; Reset sets it to true.
	firstClick bool

	seed uint32
	rng  distuv.Uniform
}

// NewCore builds a Core and performs the initial reset using the
// default mixer seed.
func NewCore() *Core {
	c := &Core{}
	c.Reset(nil)
	return c
}

// Reset rebuilds the ragdoll to its spawn pose. HighScore survives;
// every other piece of GameState, the key state, and (if seed is
// non-nil) the re-seedable generator do not. Reset always succeeds: its
// bool return exists so callers can treat every mutator uniformly, even
// though nothing here can actually fail.
func (c *Core) Reset(seed *uint32) bool {
	if !c.worldReady {
		c.createWorld()
		c.rng = newReseedableRNG(DefaultSeed)
	} else {
		c.destroyRagdoll()
	}

	if seed != nil {
		c.seed = *seed
		c.rng = newReseedableRNG(c.seed)
	}

	c.buildBodies()
	c.buildJoints()

	c.state = GameState{HighScore: c.state.HighScore}
	c.keys = KeyState{}
	c.firstClick = true

	return true
}

// SetAction overwrites the current key state. Like Reset, it always
// succeeds.
func (c *Core) SetAction(q, w, o, p bool) bool {
	c.keys = KeyState{Q: q, W: w, O: o, P: p}
	return true
}

// setScore assigns the current score and raises HighScore along with it
// whenever the new score beats the previous best, so HighScore never
// falls behind Score regardless of which caller last wrote it.
func (c *Core) setScore(score float64) {
	c.state.Score = score
	if score > c.state.HighScore {
		c.state.HighScore = score
	}
}

// TeleportTorsoX is a test-only hook that relocates the torso along the
// X axis without going through the solver. It exists to exercise the
// distance-bound termination path in GetObservation without needing a
// real fall or jump-landing transition.
func (c *Core) TeleportTorsoX(x float64) error {
	torso := c.bodies["torso"]
	if torso == nil {
		return &Error{Op: "TeleportTorsoX", Err: errUnknownBody}
	}
	torso.SetTransform(box2d.MakeB2Vec2(x, torso.GetPosition().Y), torso.GetAngle())
	return nil
}
