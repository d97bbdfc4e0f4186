package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-caves/render"
)

// Seed prompt options
const (
	seedOptionUse = iota
	seedOptionRandom
	seedOptionCancel
)

// Longest seed the prompt accepts
const maxSeedLength = 48

// SeedScreen lets the user type a seed or ask for a random one. When it closes,
// Result reports what was chosen.
type SeedScreen struct {
	*BaseScreen
	input          []rune
	selectedOption int
	options        []string
	chosen         bool
	random         bool
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewSeedScreen creates a seed prompt prefilled with the current seed
func NewSeedScreen(current string) *SeedScreen {
	return &SeedScreen{
		BaseScreen:     NewBaseScreen(),
		input:          []rune(current),
		selectedOption: seedOptionUse,
		options: []string{
			"Use this seed",
			"Random seed",
			"Cancel",
		},
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Update handles typing and option selection
func (s *SeedScreen) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if len(s.input) < maxSeedLength {
			s.input = append(s.input, r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}

	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch s.selectedOption {
		case seedOptionUse:
			if len(s.input) == 0 {
				return nil
			}
			s.chosen = true
		case seedOptionRandom:
			s.chosen = true
			s.random = true
		}
		return ErrCloseScreen
	}

	return nil
}

// Result returns the chosen seed. ok is false if the prompt was cancelled.
func (s *SeedScreen) Result() (seed string, random bool, ok bool) {
	return string(s.input), s.random, s.chosen
}

// Draw renders the prompt in the middle of the screen
func (s *SeedScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := screenWidth / 2
	centerY := screenHeight / 2

	overlay := ebiten.NewImage(screenWidth, screenHeight)
	overlay.Fill(color.RGBA{0, 0, 0, 180})
	screen.DrawImage(overlay, nil)

	title := "Seed: " + string(s.input) + "_"
	render.DrawColoredText(screen, title, s.titleColor, centerX-(len(title)*6)/2, centerY-60, screenWidth)

	// Draw options
	optionSpacing := 30
	startY := centerY - (len(s.options)*optionSpacing)/2

	for i, option := range s.options {
		textColor := s.optionColor
		if i == s.selectedOption {
			textColor = s.selectedColor
			option = "> " + option
		}
		render.DrawColoredText(screen, option, textColor, centerX-(len(option)*6)/2, startY+i*optionSpacing, screenWidth)
	}
}

// Layout implements the Screen interface
func (s *SeedScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
