// internal/app/snapshot.go
package app

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/types"
)

// Snapshot — состояние мира на момент вызова, пригодное для JSON.
type Snapshot struct {
	Elapsed     float64              `json:"elapsed"`
	Lives       int                  `json:"lives"`
	Money       int                  `json:"money"`
	Wave        int                  `json:"wave"`
	GameOver    bool                 `json:"game_over"`
	Mobs        []MobSnapshot        `json:"mobs"`
	Shooters    []ShooterSnapshot    `json:"shooters"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
}

type MobSnapshot struct {
	ID     types.EntityID `json:"id"`
	Type   string         `json:"type"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Health float64        `json:"health"`
}

type ShooterSnapshot struct {
	ID     types.EntityID `json:"id"`
	Type   string         `json:"type"`
	X      float64        `json:"x"`
	Y      float64        `json:"y"`
	Angle  float64        `json:"angle"`
	Target types.EntityID `json:"target,omitempty"`
}

type ProjectileSnapshot struct {
	ID   types.EntityID `json:"id"`
	Kind string         `json:"kind"`
	X    float64        `json:"x"`
	Y    float64        `json:"y"`
}

// Snapshot собирает снимок в порядке возрастания ID.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Elapsed:     g.Elapsed(),
		Lives:       g.Lives(),
		Money:       g.Money(),
		Wave:        g.CurrentWave(),
		GameOver:    g.GameOver(),
		Mobs:        []MobSnapshot{},
		Shooters:    []ShooterSnapshot{},
		Projectiles: []ProjectileSnapshot{},
	}
	for _, id := range entity.SortedIDs(g.ECS.Mobs) {
		if !g.ECS.MobAlive(id) {
			continue
		}
		pos := g.ECS.Motions[id].Pos
		health, _ := g.MobHealth(id)
		snap.Mobs = append(snap.Mobs, MobSnapshot{ID: id, Type: g.ECS.Mobs[id].DefID, X: pos.X, Y: pos.Y, Health: health})
	}
	for _, id := range entity.SortedIDs(g.ECS.Shooters) {
		sh := g.ECS.Shooters[id]
		snap.Shooters = append(snap.Shooters, ShooterSnapshot{ID: id, Type: sh.DefID, X: sh.Pos.X, Y: sh.Pos.Y, Angle: sh.Angle, Target: sh.TargetID})
	}
	for _, id := range entity.SortedIDs(g.ECS.Projectiles) {
		pos := g.ECS.Motions[id].Pos
		snap.Projectiles = append(snap.Projectiles, ProjectileSnapshot{ID: id, Kind: g.ECS.Projectiles[id].Kind.String(), X: pos.X, Y: pos.Y})
	}
	return snap
}
