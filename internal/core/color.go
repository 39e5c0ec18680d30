package core

// Color is the semantic role of a screen cell.
// The platform layer resolves roles to concrete terminal colors from the theme,
// so the simulation never deals with palettes.
type Color uint8

// Color roles used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorText
	ColorBorder
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorAlert
	ColorDim
)

// String returns the role name, used in tests and debug output.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorBorder:
		return "border"
	case ColorSnakeHead:
		return "head"
	case ColorSnakeBody:
		return "body"
	case ColorFood:
		return "food"
	case ColorAlert:
		return "alert"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
