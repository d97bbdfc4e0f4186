package components

import (
	"ebiten-caves/ecs"
)

// Define component IDs for the cave viewer
const (
	MapComponentID ecs.ComponentID = iota
	FloorMeshID                    // Marching-squares surface mesh
	WallMeshID                     // Extruded wall mesh
	CaveInfoID                     // Seed, rooms and outlines of the current cave
	Camera                         // Camera component for viewport management
)
