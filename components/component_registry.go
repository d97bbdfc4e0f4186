package components

import (
	"sort"

	"ebiten-caves/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Map":      MapComponentID,
	"Floor":    FloorMeshID,
	"Walls":    WallMeshID,
	"CaveInfo": CaveInfoID,
	"Camera":   Camera,
}

// GetComponentName returns the registered name of a component ID, or "" if unknown
func GetComponentName(id ecs.ComponentID) string {
	for name, compID := range componentNameMap {
		if compID == id {
			return name
		}
	}
	return ""
}

// AllComponentIDs returns every registered component ID in ascending order
func AllComponentIDs() []ecs.ComponentID {
	ids := make([]ecs.ComponentID, 0, len(componentNameMap))
	for _, id := range componentNameMap {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
