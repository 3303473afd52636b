// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/level"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/waypoint"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderOptions — что рисовать поверх сущностей.
type RenderOptions struct {
	Debug          bool // прицелы, скорости, маршруты, хитбоксы
	ShowHealthBars bool
}

// RenderSystem рисует карту и сущности со сдвигом камеры.
type RenderSystem struct {
	ecs   *entity.ECS
	level *level.Level
	graph *level.Graph
	paths []*waypoint.Path
}

func NewRenderSystem(ecs *entity.ECS, lvl *level.Level, graph *level.Graph, paths []*waypoint.Path) *RenderSystem {
	return &RenderSystem{ecs: ecs, level: lvl, graph: graph, paths: paths}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, offset geom.Vec2, opts RenderOptions) {
	screen.Fill(config.BackgroundColor)
	for _, r := range s.level.Roads {
		fillRect(screen, r, offset, config.RoadColor)
	}
	for _, r := range s.level.Walls {
		fillRect(screen, r, offset, config.WallColor)
	}

	if opts.Debug {
		s.drawGraph(screen, offset)
	}

	for _, id := range entity.SortedIDs(s.ecs.Shooters) {
		sh := s.ecs.Shooters[id]
		p := sh.Pos.Add(offset)
		if opts.Debug {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(sh.Radius), config.RadiusColor, true)
		}
		fillRect(screen, sh.Footprint(), offset, config.WallColor)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(sh.Size[0]), config.ShooterColor, true)
		barrel := p.Add(geom.FromAngle(sh.Angle, config.MuzzleOffset))
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(barrel.X), float32(barrel.Y), float32(sh.Size[1]/2), config.ShooterColor, true)
		if opts.Debug && !sh.Aim.IsZero() {
			aim := p.Add(sh.Aim)
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(aim.X), float32(aim.Y), 1, config.HitBoxColor, true)
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Mobs) {
		mob := s.ecs.Mobs[id]
		m := s.ecs.Motions[id]
		box := mob.HitBox(m.Pos)
		fillRect(screen, box, offset, config.MobColor)
		if opts.Debug {
			strokeRect(screen, box, offset, config.HitBoxColor)
			p := m.Pos.Add(offset)
			v := p.Add(m.Vel.Scale(10))
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(v.X), float32(v.Y), 1, config.TextLightColor, true)
		}
		if opts.ShowHealthBars {
			if h, ok := s.ecs.Healths[id]; ok {
				drawHealthBar(screen, m.Pos.Add(offset), h.Fraction())
			}
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		p := s.ecs.Motions[id].Pos.Add(offset)
		clr := config.BulletColor
		if proj.Kind == defs.ProjectileRocket {
			clr = config.RocketColor
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(proj.HitBox/3), clr, true)
		if opts.Debug {
			strokeRect(screen, geom.RectAt(s.ecs.Motions[id].Pos, proj.HitBox, proj.HitBox), offset, config.HitBoxColor)
		}
	}

	for _, flash := range s.ecs.Flashes {
		p := flash.Pos.Add(offset)
		r := 5 * (1 - flash.Timer/flash.Duration)
		if r > 0 {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(r), config.FlashColor, true)
		}
	}
}

func (s *RenderSystem) drawGraph(screen *ebiten.Image, offset geom.Vec2) {
	for _, n := range s.graph.Nodes {
		strokeRect(screen, n.Rect, offset, config.NodeColor)
		for _, nb := range n.Neighbors {
			if nb.ID < n.ID {
				continue
			}
			a, b := n.Pos.Add(offset), nb.Pos.Add(offset)
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, config.NodeColor, true)
		}
	}
	if len(s.paths) == 0 {
		return
	}
	// Кратчайший маршрут
	best := s.paths[0]
	for i := 0; i+1 < best.Len(); i++ {
		a, b := best.Nodes[i].Pos.Add(offset), best.Nodes[i+1].Pos.Add(offset)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, config.PathColor, true)
	}
}

func fillRect(screen *ebiten.Image, r geom.Rect, offset geom.Vec2, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X+offset.X), float32(r.Y+offset.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, offset geom.Vec2, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X+offset.X), float32(r.Y+offset.Y), float32(r.W), float32(r.H), 1, clr, false)
}

func drawHealthBar(screen *ebiten.Image, center geom.Vec2, pct float64) {
	w := config.HealthBarWidth * pct
	x := center.X - config.HealthBarWidth/2
	y := center.Y - config.HealthBarHeight/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), config.HealthBarHeight, HealthColor(pct), false)
}

// HealthColor: от красного через жёлтый к зелёному.
func HealthColor(pct float64) color.RGBA {
	pct = utils.Clamp(pct, 0, 1)
	from, to, t := config.HealthLow, config.HealthMid, pct/0.5
	if pct > 0.5 {
		from, to, t = config.HealthMid, config.HealthHigh, (pct-0.5)/0.5
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(utils.Lerp(float64(a), float64(b), t)))
	}
	return color.RGBA{lerp(from.R, to.R), lerp(from.G, to.G), lerp(from.B, to.B), 255}
}
