// internal/app/shooter_management.go
package app

import (
	"errors"
	"fmt"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/system"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/pkg/geom"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidPlacement  = errors.New("invalid placement")
)

// PlaceShooter ставит стрелка типа shooterType с центром в pos и списывает
// его цену. Нельзя ставить на дорогу, в стену, за пределы поля и
// внахлёст с другим стрелком.
func (g *Game) PlaceShooter(shooterType string, pos geom.Vec2) (types.EntityID, error) {
	def, err := g.Defs.Shooter(shooterType)
	if err != nil {
		return types.NoEntity, err
	}
	if err := g.CanPlaceShooter(pos); err != nil {
		return types.NoEntity, err
	}
	if g.Money() < def.Price {
		return types.NoEntity, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, def.ID, def.Price, g.Money())
	}

	id := g.ECS.NewEntity()
	g.ECS.Shooters[id] = &component.Shooter{
		DefID:      def.ID,
		Pos:        pos,
		Size:       def.Size,
		Base:       config.ShooterBase,
		Projectile: def.Kind,
		Damage:     def.Damage,
		Cooldown:   def.Cooldown,
		Radius:     def.PerceptionRadius,
		Price:      def.Price,
		Refund:     def.Refund,
	}
	system.AddMoney(g.ECS, g.EventDispatcher, -def.Price)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ShooterPlaced, Data: event.ShooterRef{ID: id, Type: def.ID, X: pos.X, Y: pos.Y, Price: def.Price}})
	return id, nil
}

// CanPlaceShooter проверяет только место, без учёта денег.
func (g *Game) CanPlaceShooter(pos geom.Vec2) error {
	if !g.Level.Bounds.Contains(pos) {
		return fmt.Errorf("%w: %v is outside the field", ErrInvalidPlacement, pos)
	}
	if g.Level.OnRoad(pos) {
		return fmt.Errorf("%w: %v is on a road", ErrInvalidPlacement, pos)
	}
	if g.Level.InWall(pos) {
		return fmt.Errorf("%w: %v is inside a wall", ErrInvalidPlacement, pos)
	}
	footprint := geom.RectAt(pos, config.ShooterBase, config.ShooterBase)
	for id, sh := range g.ECS.Shooters {
		if !g.ECS.IsPending(id) && sh.Footprint().Overlaps(footprint) {
			return fmt.Errorf("%w: overlaps shooter %d", ErrInvalidPlacement, id)
		}
	}
	return nil
}

// RemoveShooterAt убирает стрелка, чьё основание содержит pos, и
// возвращает игроку сумму возврата. Возвращает false, если там никого нет.
func (g *Game) RemoveShooterAt(pos geom.Vec2) bool {
	for id, sh := range g.ECS.Shooters {
		if !sh.Footprint().Contains(pos) || !g.ECS.MarkForRemoval(id) {
			continue
		}
		g.ECS.Flush()
		system.AddMoney(g.ECS, g.EventDispatcher, sh.Refund)
		g.EventDispatcher.Dispatch(event.Event{Type: event.ShooterRemoved, Data: event.ShooterRef{ID: id, Type: sh.DefID, X: sh.Pos.X, Y: sh.Pos.Y, Price: sh.Refund}})
		return true
	}
	return false
}
