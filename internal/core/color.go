package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorBoard         // Board background dots
	ColorBorder        // Board frame
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorFlash  // Food/HUD highlight right after eating
	ColorDanger // Crashed head, game over banner
	ColorHUD
	ColorAccent // Speed-up tag, win banner
	ColorMuted  // Help line
)

// String returns a short name for the color, used in debug output.
func (c Color) String() string {
	switch c {
	case ColorBoard:
		return "board"
	case ColorBorder:
		return "border"
	case ColorSnakeHead:
		return "head"
	case ColorSnakeBody:
		return "body"
	case ColorFood:
		return "food"
	case ColorFlash:
		return "flash"
	case ColorDanger:
		return "danger"
	case ColorHUD:
		return "hud"
	case ColorAccent:
		return "accent"
	case ColorMuted:
		return "muted"
	default:
		return "default"
	}
}
