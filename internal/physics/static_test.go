package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxelfield/internal/engine"
)

func boxShape() CollisionShape {
	return NewSimpleWithType(FullResolution, Discrete, NewCuboid(1, 1, 1), Box)
}

func TestSetupRegistersBeforeBodies(t *testing.T) {
	w := engine.NewWorld()
	assert.False(t, IsSetUp(w))

	ch := Setup(w)
	require.NotNil(t, ch)
	assert.True(t, IsSetUp(w))
	assert.True(t, engine.Registered[ObjectType](w))

	again := Setup(w)
	assert.Same(t, ch, again, "Setup must not replace the channel")
}

func TestStaticBodyRequiresSetup(t *testing.T) {
	w := engine.NewWorld()

	_, err := w.Create().
		With(engine.Component(engine.NewTransform())).
		WithBundle(WithStaticRigidBody(boxShape(), OriginPose(), NewRigidBody(), InfiniteMass())).
		Build()
	assert.ErrorIs(t, err, ErrNotSetUp)
	assert.Equal(t, 0, w.Len())
	assert.Equal(t, 0, engine.Count[engine.Transform](w))
}

func TestStaticBodyAttachesEverything(t *testing.T) {
	w := engine.NewWorld()
	Setup(w)

	e, err := w.Create().
		WithBundle(WithStaticRigidBody(boxShape(), OriginPose(), NewRigidBody(), InfiniteMass())).
		Build()
	require.NoError(t, err)

	tag, ok := engine.Get[ObjectType](w, e)
	require.True(t, ok)
	assert.Equal(t, Box, tag)
	m, _ := engine.Get[Mass](w, e)
	assert.True(t, m.IsInfinite())
	assert.True(t, engine.Has[CollisionShape](w, e))
	assert.True(t, engine.Has[BodyPose](w, e))
	assert.True(t, engine.Has[RigidBody](w, e))
	assert.True(t, engine.Has[Static](w, e))
}

func TestStaticBodyRejectsFiniteMass(t *testing.T) {
	w := engine.NewWorld()
	Setup(w)
	m, _ := NewMass(1)

	_, err := w.Create().
		WithBundle(WithStaticRigidBody(boxShape(), OriginPose(), NewRigidBody(), m)).
		Build()
	assert.ErrorIs(t, err, ErrFiniteStaticMass)
	assert.Equal(t, 0, w.Len())
}

func TestDetectContactsHonorsTags(t *testing.T) {
	w := engine.NewWorld()
	ch := Setup(w)
	reader := ch.Register()

	build := func(tag ObjectType, x float32) engine.Entity {
		shape := NewSimpleWithType(FullResolution, Discrete, NewCuboid(1, 1, 1), tag)
		pose := NewBodyPose(rl.Vector3{X: x}, rl.QuaternionIdentity())
		e, err := w.Create().
			WithBundle(WithStaticRigidBody(shape, pose, NewRigidBody(), InfiniteMass())).
			Build()
		require.NoError(t, err)
		return e
	}

	a := build(Box, 0)
	build(Box, 1)
	other := build(ObjectType(1), 1.5)
	build(ObjectType(1), 40)

	n := DetectContacts(w)
	events := ch.Read(reader)
	require.Equal(t, n, len(events))

	// Box/Box overlap is suppressed; both boxes touch the foreign tag.
	require.Len(t, events, 2)
	assert.Equal(t, a, events[0].A)
	assert.Equal(t, other, events[0].B)
	for _, ev := range events {
		assert.Less(t, ev.A.ID, ev.B.ID)
		assert.Greater(t, ev.Depth, float32(0))
	}
}

func buildTagged(t *testing.T, w *engine.World, tag ObjectType, pose BodyPose) engine.Entity {
	t.Helper()
	shape := NewSimpleWithType(FullResolution, Discrete, NewCuboid(1, 1, 1), tag)
	e, err := w.Create().
		WithBundle(WithStaticRigidBody(shape, pose, NewRigidBody(), InfiniteMass())).
		Build()
	require.NoError(t, err)
	return e
}

func TestDetectContactsUnrotatedPairUsesBounds(t *testing.T) {
	w := engine.NewWorld()
	ch := Setup(w)
	reader := ch.Register()

	a := buildTagged(t, w, Box, OriginPose())
	b := buildTagged(t, w, ObjectType(1), NewBodyPose(rl.Vector3{X: 1.5}, rl.QuaternionIdentity()))

	require.Equal(t, 1, DetectContacts(w))
	events := ch.Read(reader)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, a, ev.A)
	assert.Equal(t, b, ev.B)
	assert.InDelta(t, 0.5, ev.Depth, 1e-6)
	assert.Equal(t, rl.Vector3{X: -1}, ev.Normal, "A is pushed away from B")
	assert.Equal(t, rl.Vector3{X: 0.5}, ev.Point)
}

func TestDetectContactsRotatedPair(t *testing.T) {
	w := engine.NewWorld()
	ch := Setup(w)
	reader := ch.Register()

	turned := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, 45*rl.Deg2rad)
	buildTagged(t, w, Box, OriginPose())
	buildTagged(t, w, ObjectType(1), NewBodyPose(rl.Vector3{X: 2.2}, turned))
	buildTagged(t, w, ObjectType(1), NewBodyPose(rl.Vector3{X: -2.6}, turned))

	// The box at 2.2 reaches back to 2.2-sqrt(2) < 1; the one at -2.6 stops short.
	require.Equal(t, 1, DetectContacts(w))
	events := ch.Read(reader)
	require.Len(t, events, 1)
	assert.Greater(t, events[0].Depth, float32(0))
	assert.Less(t, events[0].Normal.X, float32(0))
}

func TestDetectContactsSameTagLattice(t *testing.T) {
	w := engine.NewWorld()
	ch := Setup(w)
	reader := ch.Register()

	for i := 0; i < 8; i++ {
		_, err := w.Create().
			WithBundle(WithStaticRigidBody(boxShape(), OriginPose(), NewRigidBody(), InfiniteMass())).
			Build()
		require.NoError(t, err)
	}

	assert.Equal(t, 0, DetectContacts(w))
	assert.Empty(t, ch.Read(reader))
}

func TestDetectContactsWithoutSetup(t *testing.T) {
	assert.Equal(t, 0, DetectContacts(engine.NewWorld()))
}
