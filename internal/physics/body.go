package physics

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrInvalidMass = errors.New("physics: mass must be positive and finite")

// BodyPose is the reference frame of a rigid body. It is independent of the
// entity's visual Transform.
type BodyPose struct {
	Position rl.Vector3
	Rotation rl.Quaternion
}

func NewBodyPose(pos rl.Vector3, rot rl.Quaternion) BodyPose {
	return BodyPose{Position: pos, Rotation: rot}
}

// AxisAligned reports whether the pose carries no rotation.
func (p BodyPose) AxisAligned() bool {
	return p.Rotation == rl.QuaternionIdentity()
}

// OriginPose sits at (0,0,0) with no rotation.
func OriginPose() BodyPose {
	return NewBodyPose(rl.Vector3Zero(), rl.QuaternionIdentity())
}

// RigidBody holds dynamics state and surface response.
type RigidBody struct {
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // degrees per second on each axis
	Restitution     float32    // 0 = no bounce, 1 = perfect bounce
	Friction        float32    // 0 = ice, 1 = stops immediately
}

// NewRigidBody returns a body at rest with default surface response.
func NewRigidBody() RigidBody {
	return RigidBody{
		Velocity:        rl.Vector3{},
		AngularVelocity: rl.Vector3{},
		Restitution:     0,
		Friction:        0.5,
	}
}

// AtRest reports whether both velocities are zero.
func (r RigidBody) AtRest() bool {
	return r.Velocity == (rl.Vector3{}) && r.AngularVelocity == (rl.Vector3{})
}

// Mass is either a positive finite value or infinite. Infinite mass has a
// zero inverse, so forces never move the body.
type Mass struct {
	value    float32
	infinite bool
}

func NewMass(m float32) (Mass, error) {
	if m <= 0 || math32.IsInf(m, 0) || math32.IsNaN(m) {
		return Mass{}, fmt.Errorf("%w: got %v", ErrInvalidMass, m)
	}
	return Mass{value: m}, nil
}

func InfiniteMass() Mass {
	return Mass{infinite: true}
}

func (m Mass) IsInfinite() bool {
	return m.infinite
}

// Value returns +Inf for infinite mass.
func (m Mass) Value() float32 {
	if m.infinite {
		return math32.Inf(1)
	}
	return m.value
}

// Inverse returns 1/m, or 0 for infinite mass.
func (m Mass) Inverse() float32 {
	if m.infinite || m.value == 0 {
		return 0
	}
	return 1 / m.value
}

func (m Mass) String() string {
	if m.infinite {
		return "infinite"
	}
	return fmt.Sprintf("%g", m.value)
}
