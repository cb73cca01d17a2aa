package physics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"voxelfield/internal/engine"
)

var (
	ErrNotSetUp         = errors.New("physics: world not set up; call Setup before creating bodies")
	ErrFiniteStaticMass = errors.New("physics: static body requires infinite mass")
	ErrInvalidShape     = errors.New("physics: collision shape bound does not enclose its primitive")
)

// Static marks a body the solver must never move.
type Static struct{}

// ContactEvent reports two colliders touching. A has the lower entity ID.
type ContactEvent struct {
	A, B   engine.Entity
	Point  rl.Vector3
	Normal rl.Vector3 // pushes A out of B
	Depth  float32
}

// ContactChannel is the world resource contacts are written to.
type ContactChannel = *engine.EventChannel[ContactEvent]

// Setup registers the collider tag and body component tables and makes sure
// the contact channel exists. It must run before the first collidable entity
// is built; running it again is harmless.
func Setup(w *engine.World) ContactChannel {
	engine.Register[ObjectType](w)
	engine.Register[CollisionShape](w)
	engine.Register[BodyPose](w)
	engine.Register[RigidBody](w)
	engine.Register[Mass](w)
	engine.Register[Static](w)
	return *engine.EnsureResource(w, func() ContactChannel {
		return engine.NewEventChannel[ContactEvent]()
	})
}

// IsSetUp reports whether Setup has run on w.
func IsSetUp(w *engine.World) bool {
	return engine.Registered[ObjectType](w) && engine.HasResource[ContactChannel](w)
}

// Contacts returns the world's contact channel.
func Contacts(w *engine.World) (ContactChannel, bool) {
	ch, ok := engine.Resource[ContactChannel](w)
	if !ok {
		return nil, false
	}
	return *ch, true
}

// StaticBody stages a static rigid body: shape, pose, body, mass, the shape's
// collider tag and the Static marker. Either all attach or none do.
type StaticBody struct {
	Shape CollisionShape
	Pose  BodyPose
	Body  RigidBody
	Mass  Mass
}

// WithStaticRigidBody returns the bundle for a static body.
func WithStaticRigidBody(shape CollisionShape, pose BodyPose, body RigidBody, mass Mass) StaticBody {
	return StaticBody{Shape: shape, Pose: pose, Body: body, Mass: mass}
}

func (s StaticBody) Stage(b *engine.Builder) error {
	if !IsSetUp(b.World()) {
		return ErrNotSetUp
	}
	if !s.Mass.IsInfinite() {
		return ErrFiniteStaticMass
	}
	if !s.Shape.Valid() {
		return ErrInvalidShape
	}
	b.With(
		engine.Component(s.Shape),
		engine.Component(s.Pose),
		engine.Component(s.Body),
		engine.Component(s.Mass),
		engine.Component(s.Shape.Tag),
		engine.Component(Static{}),
	)
	return nil
}
