package systems

import (
	"fmt"
	"log"

	"ebiten-caves/components"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
)

// Tags used to find the viewer's entities
const (
	TagCave   = "cave"
	TagCamera = "camera"
)

// CaveSystem owns the generator and keeps the cave entity up to date
type CaveSystem struct {
	source  generation.CaveSource
	pending []RegenerateRequestEvent
	lastErr error
}

// NewCaveSystem creates a cave system and subscribes it to regenerate requests
func NewCaveSystem(world *ecs.World, source generation.CaveSource) *CaveSystem {
	s := &CaveSystem{source: source}
	world.Subscribe(EventRegenerateRequest, func(e ecs.Event) {
		s.pending = append(s.pending, e.(RegenerateRequestEvent))
	})
	return s
}

// Update handles the regenerate requests queued since the last frame
func (s *CaveSystem) Update(world *ecs.World, dt float64) {
	if len(s.pending) == 0 {
		return
	}

	// Only the newest request matters; earlier ones would be overwritten anyway
	req := s.pending[len(s.pending)-1]
	s.pending = s.pending[:0]

	s.Regenerate(world, req)
}

// Regenerate builds a new cave and replaces the components on the cave entity
func (s *CaveSystem) Regenerate(world *ecs.World, req RegenerateRequestEvent) (*generation.Cave, error) {
	if req.Seed != "" {
		s.source.SetSeed(req.Seed)
	} else if req.RandomSeed {
		s.source.UseRandomSeed()
	}

	cave, err := s.source.Generate()
	if err != nil {
		s.lastErr = err
		log.Printf("Cave generation failed: %v", err)
		GetMessageLog().AddTyped("Error: "+err.Error(), MessageTypeError)
		return nil, err
	}
	s.lastErr = nil

	entity := world.FirstWithTag(TagCave)
	if entity == nil {
		entity = world.CreateEntity()
		world.TagEntity(entity.ID, TagCave)
	}

	world.AddComponent(entity.ID, components.MapComponentID, cave.Map)
	world.AddComponent(entity.ID, components.FloorMeshID, cave.Floor)
	world.AddComponent(entity.ID, components.WallMeshID, cave.Walls)
	world.AddComponent(entity.ID, components.CaveInfoID, cave.Info())

	GetMessageLog().AddTyped(fmt.Sprintf("Seed %q", cave.Seed), MessageTypeSeed)
	GetMessageLog().Add(fmt.Sprintf("%d rooms, %d triangles, %d outlines",
		len(cave.Rooms), cave.Floor.TriangleCount(), len(cave.Outlines)))

	world.EmitEvent(CaveGeneratedEvent{EntityID: entity.ID, Cave: cave})
	return cave, nil
}

// LastError returns the error from the most recent generation, if any
func (s *CaveSystem) LastError() error {
	return s.lastErr
}

// TakeError returns the error from the most recent generation and clears it
func (s *CaveSystem) TakeError() error {
	err := s.lastErr
	s.lastErr = nil
	return err
}

// GetCaveMap returns the grid of the current cave, or nil
func GetCaveMap(world *ecs.World) *components.MapComponent {
	entity := world.FirstWithTag(TagCave)
	if entity == nil {
		return nil
	}
	comp, exists := world.GetComponent(entity.ID, components.MapComponentID)
	if !exists {
		return nil
	}
	return comp.(*components.MapComponent)
}

// GetCaveInfo returns the diagnostics of the current cave, or nil
func GetCaveInfo(world *ecs.World) *components.CaveInfoComponent {
	entity := world.FirstWithTag(TagCave)
	if entity == nil {
		return nil
	}
	comp, exists := world.GetComponent(entity.ID, components.CaveInfoID)
	if !exists {
		return nil
	}
	return comp.(*components.CaveInfoComponent)
}

// ReplayRequest asks for the cave on screen again. Before the first cave it
// falls back to the generator's seed setting.
func ReplayRequest(world *ecs.World) RegenerateRequestEvent {
	if info := GetCaveInfo(world); info != nil {
		return RegenerateRequestEvent{Seed: info.Seed}
	}
	return RegenerateRequestEvent{}
}
