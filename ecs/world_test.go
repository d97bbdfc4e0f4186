package ecs

import "testing"

type pingEvent struct{ n int }

func (pingEvent) Type() EventType { return "ping" }

type countingSystem struct{ calls int }

func (s *countingSystem) Update(world *World, dt float64) { s.calls++ }

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	w.AddComponent(e.ID, 1, "first")
	w.AddComponent(e.ID, 1, "second")

	comp, ok := w.GetComponent(e.ID, 1)
	if !ok {
		t.Fatalf("Expected component to exist")
	}
	if comp.(string) != "second" {
		t.Errorf("Expected replaced component 'second', got %v", comp)
	}
	if w.HasComponent(e.ID, 2) {
		t.Errorf("Expected component 2 to be absent")
	}

	// Unknown entities are ignored
	w.AddComponent(e.ID+1000, 1, "ghost")
	if w.HasComponent(e.ID+1000, 1) {
		t.Errorf("Expected component on unknown entity to be dropped")
	}
}

func TestWorldTagsOrdered(t *testing.T) {
	w := NewWorld()
	var ids []EntityID
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		w.TagEntity(e.ID, "cave")
		ids = append(ids, e.ID)
	}

	tagged := w.GetEntitiesWithTag("cave")
	if len(tagged) != len(ids) {
		t.Fatalf("Expected %d tagged entities, got %d", len(ids), len(tagged))
	}
	for i, e := range tagged {
		if e.ID != ids[i] {
			t.Errorf("Expected entity %d at position %d, got %d", ids[i], i, e.ID)
		}
		if !e.HasTag("cave") {
			t.Errorf("Expected entity %d to carry the tag", e.ID)
		}
	}
	if first := w.FirstWithTag("cave"); first == nil || first.ID != ids[0] {
		t.Errorf("Expected FirstWithTag to return the oldest entity")
	}
	if w.FirstWithTag("missing") != nil {
		t.Errorf("Expected nil for unknown tag")
	}
}

func TestWorldEventsAndSystems(t *testing.T) {
	w := NewWorld()
	var got []int
	w.Subscribe("ping", func(e Event) { got = append(got, e.(pingEvent).n) })
	w.Subscribe("ping", func(e Event) { got = append(got, -e.(pingEvent).n) })

	w.EmitEvent(pingEvent{n: 3})
	if len(got) != 2 || got[0] != 3 || got[1] != -3 {
		t.Errorf("Expected handlers to run in subscription order, got %v", got)
	}

	sys := &countingSystem{}
	w.AddSystem(sys)
	w.Update(1.0 / 60.0)
	w.Update(1.0 / 60.0)
	if sys.calls != 2 {
		t.Errorf("Expected 2 system updates, got %d", sys.calls)
	}
}
