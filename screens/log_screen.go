package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/render"
	"ebiten-caves/systems"
)

// LogScreen shows the full message log in a modal window
type LogScreen struct {
	*BaseScreen
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewLogScreen creates a new log screen
func NewLogScreen() *LogScreen {
	return &LogScreen{
		BaseScreen:   NewBaseScreen(),
		scrollOffset: 0,
		width:        600,
		height:       400,
		background:   color.RGBA{0, 0, 0, 255}, // Solid black
		textColor:    color.White,
	}
}

// Update handles input for the log screen
func (s *LogScreen) Update() error {
	// Handle scrolling through messages with arrow keys
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyL) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *LogScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *LogScreen) scrollDown() {
	if s.scrollOffset < len(systems.GetMessageLog().Messages)-1 {
		s.scrollOffset++
	}
}

// Draw renders the log screen
func (s *LogScreen) Draw(screen *ebiten.Image) {
	// Calculate center position
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := (screenWidth - s.width) / 2
	y := (screenHeight - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	modal.Fill(s.background)

	// Draw frame
	vector.StrokeRect(modal, 1, 1, float32(s.width-2), float32(s.height-2), 2, s.textColor, false)

	// Draw title
	title := "MESSAGE LOG"
	titleX := (s.width - len(title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, title, titleX, 4)

	messages := systems.GetMessageLog().Messages
	startY := 30
	lineHeight := 16
	maxLines := (s.height - startY - 24) / lineHeight

	// Calculate visible range
	startIdx := s.scrollOffset
	if startIdx > len(messages)-maxLines {
		startIdx = len(messages) - maxLines
		if startIdx < 0 {
			startIdx = 0
		}
	}

	// Draw visible messages
	for i := 0; i < maxLines && startIdx+i < len(messages); i++ {
		msg := messages[startIdx+i]
		render.DrawColoredText(modal, msg.Text, msg.GetColor(), 10, startY+i*lineHeight, s.width-20)
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		scrollBarHeight := float32(maxLines) / float32(len(messages)) * float32(s.height-startY)
		scrollBarY := float32(startY) + float32(startIdx)/float32(len(messages))*float32(s.height-startY)
		vector.DrawFilledRect(modal, float32(s.width-10), scrollBarY, 5, scrollBarHeight, s.textColor, false)
	}

	// Draw controls
	ebitenutil.DebugPrintAt(modal, "Up/Down: Scroll  ESC: Close", 10, s.height-20)

	// Draw the modal to the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}

// Layout implements the Screen interface
func (s *LogScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
