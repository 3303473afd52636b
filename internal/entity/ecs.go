// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
)

// ECS хранит компоненты всех сущностей. ID выдаются по возрастанию и не
// переиспользуются. Удаление откладывается до Flush, чтобы системы могли
// безопасно обходить коллекции в течение тика.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Motions     map[types.EntityID]*component.Motion
	Mobs        map[types.EntityID]*component.Mob
	Healths     map[types.EntityID]*component.Health
	Shooters    map[types.EntityID]*component.Shooter
	Projectiles map[types.EntityID]*component.Projectile
	Flashes     map[types.EntityID]*component.MuzzleFlash
	Wave        *component.Wave
	GameState   *component.GameState

	pending map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Motions:     make(map[types.EntityID]*component.Motion),
		Mobs:        make(map[types.EntityID]*component.Mob),
		Healths:     make(map[types.EntityID]*component.Health),
		Shooters:    make(map[types.EntityID]*component.Shooter),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Flashes:     make(map[types.EntityID]*component.MuzzleFlash),
		Wave:        &component.Wave{},
		GameState:   &component.GameState{},
		pending:     make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// MarkForRemoval помечает сущность к удалению в конце тика. Возвращает
// false, если сущность уже помечена: так побочные эффекты смерти
// выполняются ровно один раз.
func (ecs *ECS) MarkForRemoval(id types.EntityID) bool {
	if _, ok := ecs.pending[id]; ok {
		return false
	}
	ecs.pending[id] = struct{}{}
	return true
}

// IsPending сообщает, помечена ли сущность к удалению.
func (ecs *ECS) IsPending(id types.EntityID) bool {
	_, ok := ecs.pending[id]
	return ok
}

// MobAlive — моб существует и не помечен к удалению.
func (ecs *ECS) MobAlive(id types.EntityID) bool {
	if id == types.NoEntity || ecs.IsPending(id) {
		return false
	}
	_, ok := ecs.Mobs[id]
	return ok
}

// Flush удаляет все помеченные сущности и возвращает их количество.
func (ecs *ECS) Flush() int {
	n := len(ecs.pending)
	for id := range ecs.pending {
		ecs.remove(id)
	}
	clear(ecs.pending)
	return n
}

func (ecs *ECS) remove(id types.EntityID) {
	delete(ecs.Motions, id)
	delete(ecs.Mobs, id)
	delete(ecs.Healths, id)
	delete(ecs.Shooters, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Flashes, id)
}

// Clear удаляет все сущности, сохраняя счётчик ID.
func (ecs *ECS) Clear() {
	clear(ecs.Motions)
	clear(ecs.Mobs)
	clear(ecs.Healths)
	clear(ecs.Shooters)
	clear(ecs.Projectiles)
	clear(ecs.Flashes)
	clear(ecs.pending)
}

// SortedIDs возвращает ключи по возрастанию, то есть в порядке создания.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
