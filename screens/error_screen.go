package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrorScreen reports a failed generation until dismissed
type ErrorScreen struct {
	*BaseScreen
	err error
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{
		BaseScreen: NewBaseScreen(),
		err:        err,
	}
}

// Update closes the screen on Escape
func (s *ErrorScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrCloseScreen
	}
	return nil
}

// Draw draws the error message
func (s *ErrorScreen) Draw(screen *ebiten.Image) {
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	text := "Cave generation failed:\n\n" + s.err.Error() + "\n\nPress Escape to continue"
	ebitenutil.DebugPrintAt(screen, text, screenWidth/2-150, screenHeight/2-30)
}

// Layout implements the Screen interface
func (s *ErrorScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
