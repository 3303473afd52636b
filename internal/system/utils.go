// internal/system/utils.go
package system

import (
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/types"
)

// ApplyDamage наносит урон мобу. Если здоровье упало до нуля, моб
// погибает: начисляется награда, и он помечается к удалению.
// Возвращает true, если этот удар убил моба.
func ApplyDamage(ecs *entity.ECS, dispatcher *event.Dispatcher, mobID types.EntityID, damage int) bool {
	if !ecs.MobAlive(mobID) {
		return false
	}
	health, ok := ecs.Healths[mobID]
	if !ok {
		return false
	}
	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	health.Value = 0
	return KillMob(ecs, dispatcher, mobID)
}

// KillMob засчитывает смерть моба: награда и удаление.
// Повторный вызов, как и вызов после утечки, ничего не делает.
func KillMob(ecs *entity.ECS, dispatcher *event.Dispatcher, mobID types.EntityID) bool {
	mob, ok := ecs.Mobs[mobID]
	if !ok || !ecs.MarkForRemoval(mobID) {
		return false
	}
	AddMoney(ecs, dispatcher, mob.Reward)
	dispatcher.Dispatch(event.Event{Type: event.MobKilled, Data: event.MobRef{ID: mobID, Type: mob.DefID, Reward: mob.Reward}})
	return true
}

// LeakMob засчитывает утечку: минус одна жизнь и удаление.
func LeakMob(ecs *entity.ECS, dispatcher *event.Dispatcher, mobID types.EntityID) bool {
	mob, ok := ecs.Mobs[mobID]
	if !ok || !ecs.MarkForRemoval(mobID) {
		return false
	}
	AddLives(ecs, dispatcher, -1)
	dispatcher.Dispatch(event.Event{Type: event.MobLeaked, Data: event.MobRef{ID: mobID, Type: mob.DefID}})
	return true
}

// AddMoney меняет баланс и сообщает об этом.
func AddMoney(ecs *entity.ECS, dispatcher *event.Dispatcher, delta int) {
	if delta == 0 {
		return
	}
	ecs.GameState.Money += delta
	dispatcher.Dispatch(event.Event{Type: event.MoneyChanged, Data: event.MoneyDelta{Delta: delta, Balance: ecs.GameState.Money}})
}

// AddLives меняет число жизней. Когда жизни кончаются впервые,
// отправляется GameOver.
func AddLives(ecs *entity.ECS, dispatcher *event.Dispatcher, delta int) {
	if delta == 0 {
		return
	}
	gs := ecs.GameState
	gs.Lives += delta
	dispatcher.Dispatch(event.Event{Type: event.LivesChanged, Data: event.LivesDelta{Delta: delta, Lives: gs.Lives}})
	if gs.Lives <= 0 && !gs.Over {
		gs.Over = true
		dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// liveMobIDs — живые мобы в порядке появления.
func liveMobIDs(ecs *entity.ECS) []types.EntityID {
	ids := entity.SortedIDs(ecs.Mobs)
	live := ids[:0]
	for _, id := range ids {
		if ecs.MobAlive(id) {
			live = append(live, id)
		}
	}
	return live
}
