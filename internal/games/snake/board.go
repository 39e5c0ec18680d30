package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Board is the fixed playing field measured in virtual units.
// Every position on it is a multiple of UnitSize.
type Board struct {
	Width    int
	Height   int
	UnitSize int
}

// DefaultBoard is the board the game ships with: 40×20 cells of 15 units,
// which fits a framed board plus HUD in an 80×24 terminal.
var DefaultBoard = Board{Width: 600, Height: 300, UnitSize: 15}

// Cols returns the number of grid columns.
func (b Board) Cols() int {
	if b.UnitSize <= 0 {
		return 0
	}
	return b.Width / b.UnitSize
}

// Rows returns the number of grid rows.
func (b Board) Rows() int {
	if b.UnitSize <= 0 {
		return 0
	}
	return b.Height / b.UnitSize
}

// Cells returns the total number of grid cells, which is also the snake's capacity.
func (b Board) Cells() int {
	return b.Cols() * b.Rows()
}

// Valid reports whether the board has whole-unit dimensions and room for
// the initial snake.
func (b Board) Valid() bool {
	return b.UnitSize > 0 && b.Cells() >= InitialBodyParts &&
		b.Width%b.UnitSize == 0 && b.Height%b.UnitSize == 0
}

// Wrap moves p back onto the board, entering from the opposite edge.
func (b Board) Wrap(p core.Point) core.Point {
	return core.Point{X: core.Wrap(p.X, b.Width), Y: core.Wrap(p.Y, b.Height)}
}

// Contains reports whether p lies inside the board.
func (b Board) Contains(p core.Point) bool {
	return core.NewRect(0, 0, b.Width, b.Height).Contains(p.X, p.Y)
}

// Cell returns the grid column and row of p.
func (b Board) Cell(p core.Point) (col, row int) {
	return p.X / b.UnitSize, p.Y / b.UnitSize
}

// cellRect is the bounding box of the grid cell whose corner is p.
func (b Board) cellRect(p core.Point) core.Rect {
	return core.Square(p, b.UnitSize)
}
