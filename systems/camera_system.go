package systems

import (
	"math"

	"ebiten-caves/components"
	"ebiten-caves/config"
	"ebiten-caves/ecs"
)

// CameraSystem pans and zooms the viewer camera and refits it to each new cave
type CameraSystem struct {
	moves []CameraMoveEvent
}

// NewCameraSystem creates a new camera system
func NewCameraSystem(world *ecs.World) *CameraSystem {
	s := &CameraSystem{}
	world.Subscribe(EventCameraMove, func(e ecs.Event) {
		s.moves = append(s.moves, e.(CameraMoveEvent))
	})
	world.Subscribe(EventCaveGenerated, func(e ecs.Event) {
		s.fitToCave(world, e.(CaveGeneratedEvent))
	})
	return s
}

// CreateCamera adds the camera entity to the world
func CreateCamera(world *ecs.World) *ecs.Entity {
	entity := world.CreateEntity()
	world.TagEntity(entity.ID, TagCamera)
	world.AddComponent(entity.ID, components.Camera, components.NewCameraComponent(config.DefaultZoom))
	return entity
}

// GetCamera returns the camera component, or nil
func GetCamera(world *ecs.World) (*ecs.Entity, *components.CameraComponent) {
	entity := world.FirstWithTag(TagCamera)
	if entity == nil {
		return nil, nil
	}
	comp, exists := world.GetComponent(entity.ID, components.Camera)
	if !exists {
		return entity, nil
	}
	return entity, comp.(*components.CameraComponent)
}

// Update applies the camera moves queued since the last frame
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	if len(s.moves) == 0 {
		return
	}
	moves := s.moves
	s.moves = nil

	entity, camera := GetCamera(world)
	if camera == nil {
		return
	}

	oldX, oldZ, oldZoom := camera.X, camera.Z, camera.Zoom
	for _, m := range moves {
		camera.X += m.DX
		camera.Z += m.DZ
		if m.ZoomFactor != 0 {
			camera.Zoom = clampZoom(camera.Zoom * m.ZoomFactor)
		}
	}

	if oldX != camera.X || oldZ != camera.Z || oldZoom != camera.Zoom {
		world.EmitEvent(CameraUpdateEvent{
			CameraID: entity.ID,
			X:        camera.X,
			Z:        camera.Z,
			Zoom:     camera.Zoom,
		})
	}
}

// fitToCave centres the camera on the origin and picks the largest zoom that
// shows the whole map in the window
func (s *CameraSystem) fitToCave(world *ecs.World, e CaveGeneratedEvent) {
	_, camera := GetCamera(world)
	if camera == nil || e.Cave == nil {
		return
	}

	min, max := e.Cave.Floor.Bounds()
	if e.Cave.Floor.VertexCount() == 0 {
		min, max = e.Cave.Walls.Bounds()
	}
	width := max.X - min.X
	depth := max.Z - min.Z

	camera.X = (min.X + max.X) / 2
	camera.Z = (min.Z + max.Z) / 2
	camera.Zoom = config.DefaultZoom
	if width > 0 && depth > 0 {
		camera.Zoom = clampZoom(math.Min(
			float64(config.WindowWidth)/width,
			float64(config.WindowHeight)/depth,
		) * 0.95)
	}
}

func clampZoom(zoom float64) float64 {
	return math.Max(config.MinZoom, math.Min(config.MaxZoom, zoom))
}
