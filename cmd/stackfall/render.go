package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackfall/config"
	"github.com/plus3/stackfall/engine"
	"github.com/plus3/stackfall/input"
	"github.com/plus3/stackfall/settings"
)

const (
	margin     = 20
	panelWidth = 180
)

var (
	backgroundColor = color.RGBA{R: 12, G: 12, B: 18, A: 255}
	wellColor       = color.RGBA{R: 24, G: 24, B: 34, A: 255}
	gridColor       = color.RGBA{R: 40, G: 40, B: 52, A: 255}
	borderColor     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	shadeColor      = color.NRGBA{A: 160}
)

// boardRenderer paints snapshots. It keeps no game state of its own.
type boardRenderer struct {
	cfg   *config.Config
	prefs *settings.Manager
}

func (r *boardRenderer) cellSize() float32 {
	return float32(r.cfg.Window.CellSize)
}

// windowSize fits the well, its margins and the help panel.
func (r *boardRenderer) windowSize() (int, int) {
	cell := r.cfg.Window.CellSize
	w := r.cfg.Board.Cols*cell + 2*margin + panelWidth
	h := r.cfg.Board.Rows*cell + 2*margin
	return w, h
}

func (r *boardRenderer) Draw(screen *ebiten.Image, snap engine.Snapshot) {
	screen.Fill(backgroundColor)

	cell := r.cellSize()
	ox, oy := float32(margin), float32(margin)
	w, h := float32(snap.Cols)*cell, float32(snap.Rows)*cell
	prefs := r.prefs.Get()

	vector.DrawFilledRect(screen, ox, oy, w, h, wellColor, false)

	for row := range snap.Rows {
		for col := range snap.Cols {
			c, layer := snap.At(row, col)
			kind, ok := c.Kind()
			if !ok {
				continue
			}

			x := ox + float32(col)*cell
			y := oy + float32(row)*cell
			fill := r.cfg.Color(kind)

			switch layer {
			case engine.LayerGhost:
				if prefs.ShowGhost {
					ghost := color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 70}
					vector.DrawFilledRect(screen, x+1, y+1, cell-2, cell-2, ghost, false)
				}
			case engine.LayerBoard, engine.LayerActive:
				vector.DrawFilledRect(screen, x+1, y+1, cell-2, cell-2, fill, false)
			}
		}
	}

	if prefs.ShowGrid {
		for col := 1; col < snap.Cols; col++ {
			x := ox + float32(col)*cell
			vector.StrokeLine(screen, x, oy, x, oy+h, 1, gridColor, false)
		}
		for row := 1; row < snap.Rows; row++ {
			y := oy + float32(row)*cell
			vector.StrokeLine(screen, ox, y, ox+w, y, 1, gridColor, false)
		}
	}

	vector.StrokeRect(screen, ox-1, oy-1, w+2, h+2, 2, borderColor, false)

	r.drawHelp(screen, int(ox+w)+margin, margin)

	if snap.GameOver {
		vector.DrawFilledRect(screen, ox, oy, w, h, shadeColor, false)
		cy := int(oy + h/2)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(ox)+10, cy-16)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Press %s to restart", keyNames(r.cfg, input.Restart)), int(ox)+10, cy+4)
	}
}

func (r *boardRenderer) drawHelp(screen *ebiten.Image, x, y int) {
	lines := []string{
		"left    " + keyNames(r.cfg, input.MoveLeft),
		"right   " + keyNames(r.cfg, input.MoveRight),
		"down    " + keyNames(r.cfg, input.SoftDrop),
		"rotate  " + keyNames(r.cfg, input.Rotate),
		"drop    " + keyNames(r.cfg, input.HardDrop),
		"",
		"F1 debug  G ghost  H grid",
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), x, y)
}

func keyNames(cfg *config.Config, a input.Action) string {
	return strings.Join(cfg.KeysFor(a), "/")
}
