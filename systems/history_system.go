package systems

import (
	"fmt"

	"ebiten-caves/ecs"
)

// Seeds kept for back/forward navigation
const maxHistory = 64

// HistorySystem remembers the seeds of generated caves so the viewer can step
// back to an earlier cave and forward again
type HistorySystem struct {
	seeds  []string
	cursor int // Index of the cave on screen, -1 when empty
}

// NewHistorySystem creates a history and subscribes it to generated caves
func NewHistorySystem(world *ecs.World) *HistorySystem {
	s := &HistorySystem{cursor: -1}
	world.Subscribe(EventCaveGenerated, func(e ecs.Event) {
		if ev := e.(CaveGeneratedEvent); ev.Cave != nil {
			s.record(ev.Cave.Seed)
		}
	})
	return s
}

// record adds seed after the cursor, dropping any forward entries. Revisiting
// the seed under the cursor is not a new entry.
func (s *HistorySystem) record(seed string) {
	if s.cursor >= 0 && s.seeds[s.cursor] == seed {
		return
	}
	s.seeds = append(s.seeds[:s.cursor+1], seed)
	if len(s.seeds) > maxHistory {
		s.seeds = s.seeds[len(s.seeds)-maxHistory:]
	}
	s.cursor = len(s.seeds) - 1
}

// Back regenerates the previous cave. It returns false at the oldest entry.
func (s *HistorySystem) Back(world *ecs.World) bool {
	return s.step(world, -1)
}

// Forward regenerates the next cave after a Back. It returns false at the newest entry.
func (s *HistorySystem) Forward(world *ecs.World) bool {
	return s.step(world, 1)
}

func (s *HistorySystem) step(world *ecs.World, delta int) bool {
	next := s.cursor + delta
	if next < 0 || next >= len(s.seeds) {
		return false
	}
	s.cursor = next
	GetMessageLog().Add(fmt.Sprintf("History %d/%d", s.cursor+1, len(s.seeds)))
	world.EmitEvent(RegenerateRequestEvent{Seed: s.seeds[s.cursor]})
	return true
}

// Seeds returns the remembered seeds, oldest first
func (s *HistorySystem) Seeds() []string {
	return s.seeds
}

// Cursor returns the index of the current cave in Seeds, or -1
func (s *HistorySystem) Cursor() int {
	return s.cursor
}
