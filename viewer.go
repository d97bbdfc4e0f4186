package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"ebiten-caves/config"
	"ebiten-caves/ecs"
	"ebiten-caves/generation"
	"ebiten-caves/render"
	"ebiten-caves/screens"
	"ebiten-caves/sound"
	"ebiten-caves/systems"
)

// CaveViewer implements ebiten.Game interface.
type CaveViewer struct {
	world        *ecs.World
	renderSystem *render.RenderSystem
	caveSystem   *systems.CaveSystem
	cameraSystem *systems.CameraSystem
	audioSystem  *sound.AudioSystem
	caveScreen   *screens.CaveScreen
}

// NewCaveViewer creates a viewer with its first cave already generated
func NewCaveViewer(cfg config.CaveConfig) (*CaveViewer, error) {
	// Initialize ECS world
	world := ecs.NewWorld()

	gen, err := generation.NewCaveGenerator(cfg)
	if err != nil {
		return nil, err
	}

	caveSystem := systems.NewCaveSystem(world, gen)
	cameraSystem := systems.NewCameraSystem(world)
	historySystem := systems.NewHistorySystem(world)
	renderSystem := render.NewRenderSystem(cfg.SquareSize)
	audioSystem := sound.NewAudioSystem(world)

	// Register systems with the world that need to be updated during the loop
	world.AddSystem(caveSystem)
	world.AddSystem(cameraSystem)
	world.AddSystem(audioSystem)

	systems.CreateCamera(world)

	v := &CaveViewer{
		world:        world,
		renderSystem: renderSystem,
		caveSystem:   caveSystem,
		cameraSystem: cameraSystem,
		audioSystem:  audioSystem,
		caveScreen:   screens.NewCaveScreen(world, renderSystem, caveSystem),
	}

	// Connect the audio system to the screen for the mute key
	v.caveScreen.SetAudioSystem(audioSystem)
	v.caveScreen.SetHistorySystem(historySystem)

	if _, err := caveSystem.Regenerate(world, systems.RegenerateRequestEvent{}); err != nil {
		return nil, err
	}

	systems.GetMessageLog().AddTyped("Space: new cave  Enter: replay  [ ]: history  S: seed  Tab: info  L: log", systems.MessageTypeSystem)
	systems.GetMessageLog().AddTyped("Arrows: pan  +/-: zoom  R: rooms  W: walls  M: mute", systems.MessageTypeSystem)

	return v, nil
}

// Update updates the viewer state.
func (v *CaveViewer) Update() error {
	return v.caveScreen.Update()
}

// Draw draws the viewer screen.
func (v *CaveViewer) Draw(screen *ebiten.Image) {
	v.caveScreen.Draw(screen)

	// Print FPS for debugging
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()), config.WindowWidth-90, 0)
}

// Layout implements ebiten.Game's Layout.
func (v *CaveViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.caveScreen.Layout(outsideWidth, outsideHeight)
}

func runViewer(cfg config.CaveConfig) error {
	viewer, err := NewCaveViewer(cfg)
	if err != nil {
		return err
	}
	windowWidth, windowHeight := config.GetWindowSize()
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Caves")
	defer viewer.audioSystem.Close()
	return ebiten.RunGame(viewer)
}
