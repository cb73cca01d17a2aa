package engine

import "testing"

type position struct{ X, Y, Z float32 }
type velocity struct{ DX float32 }
type marker struct{}

func TestNewWorldEmpty(t *testing.T) {
	w := NewWorld()

	if w.Len() != 0 {
		t.Errorf("Expected 0 entities, got %d", w.Len())
	}
	if len(w.Entities()) != 0 {
		t.Error("Entities should be empty for a new world")
	}
}

func TestEntityUniqueHandles(t *testing.T) {
	w := NewWorld()
	e1, _ := w.Create().Build()
	e2, _ := w.Create().Build()
	e3, _ := w.Create().Build()

	if e1 == e2 || e2 == e3 || e1 == e3 {
		t.Error("Entities should have unique handles")
	}
	if e1.IsZero() {
		t.Error("Built entity should not be the zero handle")
	}
	if w.Len() != 3 {
		t.Errorf("Expected 3 entities, got %d", w.Len())
	}
}

func TestEntityDestroyRecyclesSlot(t *testing.T) {
	w := NewWorld()
	e, _ := w.Create().With(Component(position{X: 1})).Build()

	if !w.Destroy(e) {
		t.Fatal("Destroy should succeed for a live entity")
	}
	if w.Alive(e) {
		t.Error("Destroyed entity should not be alive")
	}
	if Has[position](w, e) {
		t.Error("Destroyed entity should lose its components")
	}
	if w.Destroy(e) {
		t.Error("Destroying twice should fail")
	}

	reused, _ := w.Create().Build()
	if reused.ID != e.ID {
		t.Errorf("Expected slot %d to be reused, got %d", e.ID, reused.ID)
	}
	if reused.Gen == e.Gen {
		t.Error("Reused slot should carry a new generation")
	}
	if w.Alive(e) {
		t.Error("Stale handle should not resolve after reuse")
	}
}

func TestZeroEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	w.Create().Build()

	if w.Alive(Entity{}) {
		t.Error("Zero entity should never be alive")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	w := NewWorld()
	e, _ := w.Create().Build()

	if err := Add(w, e, position{X: 1, Y: 2, Z: 3}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	got, ok := Get[position](w, e)
	if !ok || got.Y != 2 {
		t.Errorf("Get returned %v, %v", got, ok)
	}

	Mut[position](w, e).Y = 5
	if got, _ := Get[position](w, e); got.Y != 5 {
		t.Errorf("Mut should update in place, got %v", got)
	}

	if !Remove[position](w, e) {
		t.Error("Remove should report success")
	}
	if Has[position](w, e) {
		t.Error("Component should be gone after Remove")
	}
}

func TestTableSwapRemoveKeepsIndex(t *testing.T) {
	w := NewWorld()
	var es []Entity
	for i := 0; i < 4; i++ {
		e, _ := w.Create().With(Component(velocity{DX: float32(i)})).Build()
		es = append(es, e)
	}

	Remove[velocity](w, es[1])

	for i, e := range es {
		v, ok := Get[velocity](w, e)
		if i == 1 {
			if ok {
				t.Error("Removed component should not resolve")
			}
			continue
		}
		if !ok || v.DX != float32(i) {
			t.Errorf("Entity %d: expected DX %d, got %v (%v)", i, i, v, ok)
		}
	}
	if Count[velocity](w) != 3 {
		t.Errorf("Expected 3 velocities, got %d", Count[velocity](w))
	}
}

func TestAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	e, _ := w.Create().Build()
	w.Destroy(e)

	if err := Add(w, e, marker{}); err != ErrDeadEntity {
		t.Errorf("Expected ErrDeadEntity, got %v", err)
	}
}

func TestEachVisitsAll(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.Create().With(Component(velocity{DX: 1})).Build()
	}
	w.Create().With(Component(marker{})).Build()

	var sum float32
	Each(w, func(e Entity, v *velocity) {
		sum += v.DX
	})
	if sum != 5 {
		t.Errorf("Expected sum 5, got %v", sum)
	}
	if len(With[velocity](w)) != 5 {
		t.Errorf("Expected 5 entities with velocity, got %d", len(With[velocity](w)))
	}
	if With[position](w) != nil {
		t.Error("With should be nil for an unknown type")
	}
}
