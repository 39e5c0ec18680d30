package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 1 // Score line above the board frame

// Glyphs used on the board.
const (
	GlyphHead = 'O'
	GlyphBody = 'o'
	GlyphFood = '*'
)

// RequiredSize returns the smallest screen that fits the framed board and HUD.
func RequiredSize(b Board) (w, h int) {
	return b.Cols() + 2, b.Rows() + 2 + hudHeight
}

// Layout locates the board's top-left grid cell on a screen of the given size.
func Layout(b Board, screenW int) (offsetX, offsetY int) {
	w, _ := RequiredSize(b)
	return max((screenW-w)/2, 0) + 1, hudHeight + 1
}

// Render draws the snapshot into dst. It only reads the snapshot.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	needW, needH := RequiredSize(snap.Board)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst,
			"Window too small",
			fmt.Sprintf("Resize to at least %dx%d", needW, needH),
		)
		return
	}

	ox, oy := Layout(snap.Board, dst.Width())
	renderHUD(dst, snap, ox-1)
	dst.DrawBox(core.NewRect(ox-1, oy-1, needW, needH-hudHeight), core.ColorBorder)

	// Food first so the snake stays visible when food spawns under it
	fx, fy := snap.Board.Cell(snap.Food)
	dst.SetColored(ox+fx, oy+fy, GlyphFood, core.ColorFood)

	// Tail to head so the head wins on overlapping segments
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		cx, cy := snap.Board.Cell(snap.Segments[i])
		if i == 0 {
			dst.SetColored(ox+cx, oy+cy, GlyphHead, core.ColorSnakeHead)
		} else {
			dst.SetColored(ox+cx, oy+cy, GlyphBody, core.ColorSnakeBody)
		}
	}

	if snap.GameOver() {
		renderOverlay(dst,
			"YOU DIED",
			fmt.Sprintf("Score: %d", snap.Score),
			"Press SPACE to restart!",
		)
	}
}

// renderHUD draws the status line above the board.
func renderHUD(dst *core.Screen, snap Snapshot, x int) {
	dst.DrawTextColored(x, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)

	length := fmt.Sprintf("Length: %d", snap.Len())
	w, _ := RequiredSize(snap.Board)
	dst.DrawTextColored(x+w-len(length), 0, length, core.ColorDim)
}

// renderOverlay draws a framed, centered message box.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}

	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorAlert)

	for i, l := range lines {
		c := core.ColorText
		if i == 0 {
			c = core.ColorAlert
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, c)
	}
}
