package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"ebiten-caves/components"
	"ebiten-caves/generation"
	"ebiten-caves/systems"
)

// Lines reserved below the map for the status bar
const statusLines = 1

var (
	defaultStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	wallStyle    = defaultStyle.Foreground(tcell.NewRGBColor(150, 140, 120))
	statusStyle  = defaultStyle.Foreground(tcell.ColorWhite)
	errorStyle   = defaultStyle.Foreground(tcell.ColorRed)
)

// Preview draws caves as text in a terminal. Row y=0 is drawn at the bottom
// so the picture matches the graphical viewer.
type Preview struct {
	screen    tcell.Screen
	source    generation.CaveSource
	cave      *generation.Cave
	roomOf    map[components.Coord]int // Bordered cell -> room index
	palette   []tcell.Color
	showRooms bool
	offsetX   int
	offsetY   int
	lastErr   error
}

// NewPreview creates a preview on an initialised screen
func NewPreview(screen tcell.Screen, source generation.CaveSource) *Preview {
	return &Preview{screen: screen, source: source, showRooms: true}
}

// Cave returns the cave being shown
func (p *Preview) Cave() *generation.Cave {
	return p.cave
}

// Regenerate replaces the shown cave. An empty seed picks a random one.
func (p *Preview) Regenerate(seed string) error {
	if seed == "" {
		p.source.UseRandomSeed()
	} else {
		p.source.SetSeed(seed)
	}
	return p.Refresh()
}

// Refresh generates a cave with the source's current seed settings
func (p *Preview) Refresh() error {
	cave, err := p.source.Generate()
	if err != nil {
		p.lastErr = err
		return err
	}
	p.lastErr = nil
	p.cave = cave
	p.offsetX, p.offsetY = 0, 0
	p.indexRooms()
	return nil
}

func (p *Preview) indexRooms() {
	p.roomOf = make(map[components.Coord]int)
	for i, room := range p.cave.Rooms {
		for _, t := range room.Tiles {
			p.roomOf[components.Coord{X: t.X + p.cave.BorderSize, Y: t.Y + p.cave.BorderSize}] = i
		}
	}
	p.palette = make([]tcell.Color, 0, len(p.cave.Rooms))
	for _, c := range systems.RoomPalette(len(p.cave.Rooms)) {
		p.palette = append(p.palette, tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
}

// Draw renders the cave and the status line
func (p *Preview) Draw() {
	p.screen.Clear()
	width, height := p.screen.Size()
	viewH := height - statusLines

	if p.cave != nil {
		m := p.cave.Map
		for sy := 0; sy < viewH; sy++ {
			y := m.Height - 1 - sy - p.offsetY
			if y < 0 {
				break
			}
			for sx := 0; sx < width; sx++ {
				x := sx + p.offsetX
				if x >= m.Width {
					break
				}
				glyph, style := p.cell(x, y)
				p.screen.SetContent(sx, sy, glyph, nil, style)
			}
		}
	}

	p.drawStatus(width, height-1)
	p.screen.Show()
}

// cell picks the rune and style for map cell (x, y)
func (p *Preview) cell(x, y int) (rune, tcell.Style) {
	m := p.cave.Map
	if m.IsWall(x, y) {
		return generation.GlyphAt(m, x, y), wallStyle
	}
	if p.showRooms {
		if i, ok := p.roomOf[components.Coord{X: x, Y: y}]; ok {
			return '·', defaultStyle.Foreground(p.palette[i])
		}
	}
	// Floor carved by a passage belongs to no room
	return generation.GlyphFloor, defaultStyle
}

func (p *Preview) drawStatus(width, y int) {
	text := "space: random  enter: replay  r: rooms  arrows: scroll  q: quit"
	style := statusStyle
	switch {
	case p.lastErr != nil:
		text = "error: " + p.lastErr.Error()
		style = errorStyle
	case p.cave != nil:
		text = fmt.Sprintf("%s  rooms %d  triangles %d  outlines %d  |  %s",
			p.cave.Seed, len(p.cave.Rooms), p.cave.Floor.TriangleCount(), len(p.cave.Outlines), text)
	}
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleKey applies one key press. It returns false when the preview should exit.
func (p *Preview) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if p.cave != nil {
			_ = p.Regenerate(p.cave.Seed)
		}
	case tcell.KeyUp:
		p.scroll(0, -1)
	case tcell.KeyDown:
		p.scroll(0, 1)
	case tcell.KeyLeft:
		p.scroll(-1, 0)
	case tcell.KeyRight:
		p.scroll(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			_ = p.Regenerate("")
		case 'r':
			p.showRooms = !p.showRooms
		}
	}
	return true
}

func (p *Preview) scroll(dx, dy int) {
	if p.cave == nil {
		return
	}
	p.offsetX = clamp(p.offsetX+dx, 0, p.cave.Map.Width-1)
	p.offsetY = clamp(p.offsetY+dy, 0, p.cave.Map.Height-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run draws and handles events until the user quits
func (p *Preview) Run() {
	p.Draw()
	for {
		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			if !p.HandleKey(ev) {
				return
			}
		case nil:
			// Screen finalised
			return
		}
		p.Draw()
	}
}

// RunTerminal opens the terminal, shows a first cave and runs the preview
func RunTerminal(source generation.CaveSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.SetStyle(defaultStyle)

	preview := NewPreview(screen, source)
	if err := preview.Refresh(); err != nil {
		return err
	}
	preview.Run()
	return nil
}
