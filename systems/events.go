package systems

import (
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
)

// Event type constants
const (
	EventRegenerateRequest ecs.EventType = "regenerate_request"
	EventCaveGenerated     ecs.EventType = "cave_generated"
	EventCameraMove        ecs.EventType = "camera_move"
	EventCameraUpdate      ecs.EventType = "camera_update"
)

// RegenerateRequestEvent asks the cave system for a new cave. An empty Seed
// with RandomSeed false reuses the generator's current seed setting.
type RegenerateRequestEvent struct {
	Seed       string
	RandomSeed bool
}

// Type returns the event type
func (e RegenerateRequestEvent) Type() ecs.EventType {
	return EventRegenerateRequest
}

// CaveGeneratedEvent is emitted after the cave entity's components are replaced
type CaveGeneratedEvent struct {
	EntityID ecs.EntityID
	Cave     *generation.Cave
}

// Type returns the event type
func (e CaveGeneratedEvent) Type() ecs.EventType {
	return EventCaveGenerated
}

// CameraMoveEvent pans the camera in world units and scales its zoom.
// A ZoomFactor of 0 leaves the zoom alone.
type CameraMoveEvent struct {
	DX, DZ     float64
	ZoomFactor float64
}

// Type returns the event type
func (e CameraMoveEvent) Type() ecs.EventType {
	return EventCameraMove
}

// CameraUpdateEvent is emitted when the camera position or zoom changes
type CameraUpdateEvent struct {
	CameraID ecs.EntityID
	X, Z     float64
	Zoom     float64
}

// Type returns the event type
func (e CameraUpdateEvent) Type() ecs.EventType {
	return EventCameraUpdate
}
