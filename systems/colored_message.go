package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	// MessageTypeNormal is for statistics and status text (gray)
	MessageTypeNormal MessageType = iota
	// MessageTypeSeed reports the seed a cave was built from (gold)
	MessageTypeSeed
	// MessageTypeError is for generation and config failures (red)
	MessageTypeError
	// MessageTypeSystem is for viewer messages such as key help (purple)
	MessageTypeSystem
)

// ColoredMessage stores a message with its associated color
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor returns the color for the message based on its type
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeSeed:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageTypeError:
		return color.RGBA{255, 100, 100, 255} // Red
	case MessageTypeSystem:
		return color.RGBA{186, 85, 211, 255} // Medium Orchid
	default:
		return color.RGBA{200, 200, 200, 255} // Light Gray
	}
}
