package entity

import (
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/types"
)

func TestNewEntityNeverReusesIDs(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	ecs.Mobs[a] = &component.Mob{}
	ecs.MarkForRemoval(a)
	ecs.Flush()
	b := ecs.NewEntity()
	if b == a || b == types.NoEntity {
		t.Fatalf("ids: a=%d b=%d", a, b)
	}
	if ecs.MobAlive(a) {
		t.Error("removed mob must not be alive")
	}
}

func TestDeferredRemoval(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Mobs[id] = &component.Mob{}
	ecs.Healths[id] = &component.Health{Value: 1, Max: 1}

	if !ecs.MobAlive(id) {
		t.Fatal("new mob must be alive")
	}
	if !ecs.MarkForRemoval(id) {
		t.Fatal("first mark must succeed")
	}
	if ecs.MarkForRemoval(id) {
		t.Fatal("second mark must report already pending")
	}
	if ecs.MobAlive(id) {
		t.Error("pending mob must not be alive")
	}
	if _, ok := ecs.Mobs[id]; !ok {
		t.Error("components must stay until Flush")
	}
	if n := ecs.Flush(); n != 1 {
		t.Errorf("Flush removed %d, want 1", n)
	}
	if _, ok := ecs.Healths[id]; ok {
		t.Error("health must be removed after Flush")
	}
	if ecs.IsPending(id) {
		t.Error("pending set must be empty after Flush")
	}
}

func TestSortedIDs(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		ecs.Mobs[ecs.NewEntity()] = &component.Mob{}
	}
	ids := SortedIDs(ecs.Mobs)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not ascending: %v", ids)
		}
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    component.Health
		want float64
	}{
		{component.Health{Value: 10, Max: 10}, 1},
		{component.Health{Value: 5, Max: 10}, 0.5},
		{component.Health{Value: -3, Max: 10}, 0},
		{component.Health{Value: 3, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("%+v.Fraction() = %v, want %v", tt.h, got, tt.want)
		}
	}
}
