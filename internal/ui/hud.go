// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HUDInfo — то, что показывает верхняя панель.
type HUDInfo struct {
	Money       int
	Lives       int
	Wave        int
	Elapsed     float64
	NextWave    float64
	HasNextWave bool
	Selected    string
	Price       int
	Speed       float64
	Debug       bool
}

// Lines — строки панели сверху вниз.
func (i HUDInfo) Lines() []string {
	lines := []string{
		fmt.Sprintf("Money: %d   Lives: %d", i.Money, i.Lives),
		fmt.Sprintf("Wave: %d   Time: %.1fs   Speed: x%g", i.Wave+1, i.Elapsed, i.Speed),
	}
	if i.HasNextWave && i.NextWave > 0 {
		lines = append(lines, fmt.Sprintf("Next wave in %.1fs", i.NextWave))
	} else if !i.HasNextWave {
		lines = append(lines, "Last wave")
	}
	lines = append(lines, fmt.Sprintf("Shooter [T]: %s (%d)", i.Selected, i.Price))
	if i.Debug {
		lines = append(lines, "DEBUG")
	}
	return lines
}

// HUD рисует статистику в левом верхнем углу.
type HUD struct {
	fontFace font.Face
}

func NewHUD(fonts *assets.Fonts) *HUD {
	return &HUD{fontFace: fonts.Regular}
}

func (h *HUD) Draw(screen *ebiten.Image, info HUDInfo) {
	lines := info.Lines()
	vector.DrawFilledRect(screen, 5, 5, 300, float32(len(lines)*lineHeight+10), color.RGBA{0, 0, 0, 140}, false)
	for i, line := range lines {
		text.Draw(screen, line, h.fontFace, 15, 5+(i+1)*lineHeight, config.TextLightColor)
	}
}

// DrawOverlay затемняет экран и пишет по центру заголовок и подсказки.
func DrawOverlay(screen *ebiten.Image, fonts *assets.Fonts, title string, hints ...string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, 160}, false)

	y := b.Dy()/2 - 20
	drawCentered(screen, title, fonts.Title, b.Dx()/2, y, color.White)
	for _, hint := range hints {
		y += lineHeight + 8
		drawCentered(screen, hint, fonts.Regular, b.Dx()/2, y, config.TextLightColor)
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, cx-bounds.Dx()/2, y, clr)
}
