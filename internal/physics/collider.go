package physics

import "fmt"

// Collider decides whether two collision categories produce contacts.
type Collider[T any] interface {
	ShouldGenerateContacts(other T) bool
}

// ObjectType is the collision category attached to every collidable entity.
type ObjectType uint8

const (
	Box ObjectType = iota
)

var _ Collider[ObjectType] = Box

// DefaultObjectType is the category used when none is given.
func DefaultObjectType() ObjectType {
	return Box
}

// ShouldGenerateContacts is symmetric: only differing categories touch, so
// a field of same-category static bodies produces no contacts among itself.
func (o ObjectType) ShouldGenerateContacts(other ObjectType) bool {
	return o != other
}

func (o ObjectType) String() string {
	switch o {
	case Box:
		return "Box"
	}
	return fmt.Sprintf("ObjectType(%d)", uint8(o))
}
