package world

import (
	"log"

	"voxelfield/internal/components"
	"voxelfield/internal/engine"
)

// InitCamera creates the single camera rig: a perspective lens at the
// identity transform, tagged for fly control.
func InitCamera(w *engine.World, proj components.Projection) (engine.Entity, error) {
	e, err := w.Create().With(
		engine.Component(components.NewCamera(proj)),
		engine.Component(engine.NewTransform()),
		engine.Component(engine.NewGlobalTransform()),
		engine.Component(components.FlyControlTag{}),
		engine.Component(components.NewFlyControl()),
	).Build()
	if err != nil {
		return engine.Entity{}, err
	}
	log.Printf("World: camera %d ready (fov %.0f, aspect %.2f)", e.ID, proj.FovY, proj.Aspect)
	return e, nil
}

// MainCamera returns the first camera flagged as main.
func MainCamera(w *engine.World) (engine.Entity, bool) {
	for _, e := range engine.With[components.Camera](w) {
		if c, _ := engine.Get[components.Camera](w, e); c.IsMain {
			return e, true
		}
	}
	return engine.Entity{}, false
}
