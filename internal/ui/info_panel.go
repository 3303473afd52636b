// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-waypoint-defense/internal/assets"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 20
	columnSpacing  = 220
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel выезжает снизу и показывает выбранного моба или стрелка.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	SellButton   Button

	fontFace      font.Face
	titleFontFace font.Face
	screenHeight  float64
	currentY      float64
	targetY       float64
}

func NewInfoPanel(fonts *assets.Fonts, screenHeight int) *InfoPanel {
	h := float64(screenHeight)
	return &InfoPanel{
		fontFace:      fonts.Regular,
		titleFontFace: fonts.Regular,
		screenHeight:  h,
		currentY:      h,
		targetY:       h,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = p.screenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.screenHeight
}

// Contains сообщает, попадает ли точка экрана в видимую панель.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update двигает панель и прячет её, если сущность исчезла.
func (p *InfoPanel) Update(ecs *entity.ECS) {
	if p.TargetEntity != types.NoEntity && !p.targetExists(ecs) {
		p.Hide()
	}
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= p.screenHeight {
			p.IsVisible = false
			p.TargetEntity = types.NoEntity
		}
	}
}

// SellClicked — попал ли клик в кнопку продажи стрелка.
func (p *InfoPanel) SellClicked(x, y int, ecs *entity.ECS) bool {
	if !p.IsVisible {
		return false
	}
	if _, ok := ecs.Shooters[p.TargetEntity]; !ok {
		return false
	}
	return image.Pt(x, y).In(p.SellButton.Rect)
}

func (p *InfoPanel) targetExists(ecs *entity.ECS) bool {
	if _, ok := ecs.Shooters[p.TargetEntity]; ok {
		return true
	}
	return ecs.MobAlive(p.TargetEntity)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= p.screenHeight {
		return
	}
	width := screen.Bounds().Dx()
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		width-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == types.NoEntity {
		return
	}
	x, y := panelRect.Min.X+15, panelRect.Min.Y+15+lineHeight
	if sh, ok := ecs.Shooters[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("Shooter: %s", sh.DefID), p.titleFontFace, x, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Damage: %d", sh.Damage), p.fontFace, x, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Projectile: %s", sh.Projectile), p.fontFace, x+columnSpacing, y, config.TextLightColor)
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Fire Rate: %.2f/s", 1/sh.Cooldown), p.fontFace, x, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Range: %.0f", sh.Radius), p.fontFace, x+columnSpacing, y, config.TextLightColor)
		p.drawSellButton(screen, panelRect, sh.Refund)
		return
	}
	if mob, ok := ecs.Mobs[p.TargetEntity]; ok {
		text.Draw(screen, fmt.Sprintf("Mob: %s", mob.DefID), p.titleFontFace, x, y, config.TextLightColor)
		y += lineHeight
		if health, ok := ecs.Healths[p.TargetEntity]; ok {
			text.Draw(screen, fmt.Sprintf("Health: %d / %d", health.Value, health.Max), p.fontFace, x, y, config.TextLightColor)
		}
		if m, ok := ecs.Motions[p.TargetEntity]; ok {
			text.Draw(screen, fmt.Sprintf("Speed: %.2f", m.Vel.Len()), p.fontFace, x+columnSpacing, y, config.TextLightColor)
		}
		y += lineHeight
		text.Draw(screen, fmt.Sprintf("Waypoint: %d / %d", mob.Current, mob.Path.Last()), p.fontFace, x, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Reward: %d", mob.Reward), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	}
}

func (p *InfoPanel) drawSellButton(screen *ebiten.Image, panelRect image.Rectangle, refund int) {
	btnWidth := 150
	btnHeight := 40
	p.SellButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-20,
		panelRect.Max.Y-btnHeight-20,
		panelRect.Max.X-20,
		panelRect.Max.Y-20,
	)
	p.SellButton.Text = fmt.Sprintf("Sell +%d", refund)

	btnColor := color.RGBA{R: 180, G: 140, B: 20, A: 255}
	vector.DrawFilledRect(screen, float32(p.SellButton.Rect.Min.X), float32(p.SellButton.Rect.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	textBounds := text.BoundString(p.fontFace, p.SellButton.Text)
	textX := p.SellButton.Rect.Min.X + (btnWidth-textBounds.Dx())/2
	textY := p.SellButton.Rect.Min.Y + (btnHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, p.SellButton.Text, p.fontFace, textX, textY, color.White)
}
