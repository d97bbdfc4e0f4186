package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/render"
	"ebiten-caves/sound"
	"ebiten-caves/systems"
)

// Zoom multiplier per key press or wheel notch
const zoomStep = 1.1

// CaveScreen is the main viewer screen: it turns input into events, runs the
// world and draws the cave with any open overlay on top
type CaveScreen struct {
	*BaseScreen
	world        *ecs.World
	renderSystem *render.RenderSystem
	caveSystem   *systems.CaveSystem
	screenStack  *ScreenStack
	seedScreen   *SeedScreen
	audioSystem  *sound.AudioSystem
	history      *systems.HistorySystem
}

// NewCaveScreen creates a new cave screen
func NewCaveScreen(world *ecs.World, renderSystem *render.RenderSystem, caveSystem *systems.CaveSystem) *CaveScreen {
	return &CaveScreen{
		BaseScreen:   NewBaseScreen(),
		world:        world,
		renderSystem: renderSystem,
		caveSystem:   caveSystem,
		screenStack:  NewScreenStack(),
	}
}

// SetAudioSystem connects the chime player so the mute key can reach it
func (s *CaveScreen) SetAudioSystem(audioSystem *sound.AudioSystem) {
	s.audioSystem = audioSystem
}

// SetHistorySystem enables stepping back and forward through generated caves
func (s *CaveScreen) SetHistorySystem(history *systems.HistorySystem) {
	s.history = history
}

// Update handles viewer updates
func (s *CaveScreen) Update() error {
	// Update the screen stack first to handle modal input
	if s.screenStack.Peek() != nil {
		if err := s.screenStack.Update(); err != nil {
			return err
		}
		s.checkSeedScreen()
		return nil
	}

	s.handleInput()

	// Update all systems; regenerate requests and camera moves are applied here
	s.world.Update(1.0 / 60.0)

	if err := s.caveSystem.TakeError(); err != nil {
		s.screenStack.Push(NewErrorScreen(err))
	}

	return nil
}

// handleInput turns key presses into world events
func (s *CaveScreen) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.world.EmitEvent(systems.RegenerateRequestEvent{RandomSeed: true})
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.world.EmitEvent(systems.ReplayRequest(s.world))
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		seed := ""
		if info := systems.GetCaveInfo(s.world); info != nil {
			seed = info.Seed
		}
		s.seedScreen = NewSeedScreen(seed)
		s.screenStack.Push(s.seedScreen)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.screenStack.Push(NewCaveInfoScreen(s.world))
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		s.screenStack.Push(NewLogScreen())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.renderSystem.ToggleRooms()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		s.renderSystem.ToggleWalls()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		if s.history != nil && !s.history.Back(s.world) {
			systems.GetMessageLog().Add("No earlier cave")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		if s.history != nil && !s.history.Forward(s.world) {
			systems.GetMessageLog().Add("No later cave")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if s.audioSystem != nil {
			if s.audioSystem.ToggleMute() {
				systems.GetMessageLog().AddTyped("Sound off", systems.MessageTypeSystem)
			} else {
				systems.GetMessageLog().AddTyped("Sound on", systems.MessageTypeSystem)
			}
		}
	}

	_, camera := systems.GetCamera(s.world)
	if camera == nil {
		return
	}

	// Keep the on-screen pan speed the same at every zoom
	step := config.PanSpeed * config.DefaultZoom / camera.Zoom
	move := systems.CameraMoveEvent{}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.DX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.DX += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.DZ += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.DZ -= step
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		move.ZoomFactor = zoomStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		move.ZoomFactor = 1 / zoomStep
	}
	if _, wheel := ebiten.Wheel(); wheel > 0 {
		move.ZoomFactor = zoomStep
	} else if wheel < 0 {
		move.ZoomFactor = 1 / zoomStep
	}

	if move != (systems.CameraMoveEvent{}) {
		s.world.EmitEvent(move)
	}
}

// checkSeedScreen turns a closed seed prompt into a regenerate request
func (s *CaveScreen) checkSeedScreen() {
	if s.seedScreen == nil || s.screenStack.Peek() == s.seedScreen {
		return
	}
	seed, random, ok := s.seedScreen.Result()
	s.seedScreen = nil
	if !ok {
		return
	}
	if random {
		s.world.EmitEvent(systems.RegenerateRequestEvent{RandomSeed: true})
	} else {
		s.world.EmitEvent(systems.RegenerateRequestEvent{Seed: seed})
	}
}

// Draw draws the cave, the HUD and any overlay
func (s *CaveScreen) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(s.world, screen)
	render.DrawHUD(s.world, screen)

	if s.screenStack.Peek() != nil {
		s.screenStack.Draw(screen)
	}
}

// Layout implements the Screen interface
func (s *CaveScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
