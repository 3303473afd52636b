package system

import (
	"math"
	"testing"

	"go-waypoint-defense/internal/component"
	"go-waypoint-defense/internal/config"
	"go-waypoint-defense/internal/defs"
	"go-waypoint-defense/internal/entity"
	"go-waypoint-defense/internal/event"
	"go-waypoint-defense/internal/logger"
	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/utils"
	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/steering"
	"go-waypoint-defense/pkg/waypoint"
)

const tick = 1.0 / 60

// recorder считает события по типам.
type recorder struct {
	counts map[event.EventType]int
	events []event.Event
}

func newRecorder(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{counts: make(map[event.EventType]int)}
	for _, t := range kinds {
		d.Subscribe(t, r)
	}
	return r
}

func (r *recorder) OnEvent(e event.Event) {
	r.counts[e.Type]++
	r.events = append(r.events, e)
}

func straightPath(from, to geom.Vec2) *waypoint.Path {
	a := waypoint.NewNode(0, from.Sub(geom.V(32, 32)), 64, 64)
	b := waypoint.NewNode(1, to.Sub(geom.V(32, 32)), 64, 64)
	return waypoint.NewPath([]*waypoint.Node{a, b})
}

func addMob(ecs *entity.ECS, pos geom.Vec2, path *waypoint.Path, hp, reward int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Motions[id] = &component.Motion{Body: steering.Body{Pos: pos}, Speed: 12, Friction: config.MobFriction}
	ecs.Mobs[id] = &component.Mob{DefID: "standard", Path: path, Speed: 12, Reward: reward, HitBoxW: 20, HitBoxH: 20}
	ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	return id
}

func addShooter(ecs *entity.ECS, pos geom.Vec2, radius, cooldown float64, kind defs.ProjectileKind) types.EntityID {
	id := ecs.NewEntity()
	ecs.Shooters[id] = &component.Shooter{
		DefID:      "standard",
		Pos:        pos,
		Size:       [2]float64{16, 16},
		Base:       config.ShooterBase,
		Projectile: kind,
		Damage:     1,
		Cooldown:   cooldown,
		Radius:     radius,
	}
	return id
}

func waveLibrary(t *testing.T, waves string) *defs.Library {
	t.Helper()
	lib, err := defs.Parse([]byte(`
mobs:
  - {id: standard, hitbox: [20, 20], hp: 10, speed: 12, reward: 10}
waves:
` + waves))
	if err != nil {
		t.Fatalf("defs.Parse: %v", err)
	}
	return lib
}

func TestWaveSpawnsOnSchedule(t *testing.T) {
	for _, dt := range []float64{tick, 0.1} {
		lib := waveLibrary(t, "  - {type: standard, count: 10, start_time: 10}\n")
		ecs := entity.NewECS()
		d := event.NewDispatcher()
		rec := newRecorder(d, event.MobSpawned, event.WaveStarted, event.WaveCompleted)
		path := straightPath(geom.V(0, 100), geom.V(500, 100))
		ws := NewWaveSystem(ecs, lib, []*waypoint.Path{path}, geom.V(0, 100), config.SpawnDelay,
			utils.NewPRNGService(1), d, logger.Discard())

		step := func() {
			ecs.GameTime += dt
			ws.Update(dt)
		}
		for ecs.GameTime+timeEpsilon < 10-dt {
			step()
		}
		if rec.counts[event.MobSpawned] != 0 || rec.counts[event.WaveStarted] != 0 {
			t.Fatalf("dt=%v: spawned before start time: %v", dt, rec.counts)
		}

		for ecs.GameTime+timeEpsilon < 10+10*config.SpawnDelay {
			step()
		}
		if got := rec.counts[event.MobSpawned]; got != 10 {
			t.Errorf("dt=%v: spawned %d mobs by %.3fs, want 10", dt, got, ecs.GameTime)
		}
		if got := rec.counts[event.WaveCompleted]; got != 1 {
			t.Errorf("dt=%v: WaveCompleted fired %d times, want 1", dt, got)
		}

		for ecs.GameTime < 30 {
			step()
		}
		if got := rec.counts[event.MobSpawned]; got != 10 {
			t.Errorf("dt=%v: spawned %d mobs after terminal wave, want 10", dt, got)
		}
		if rec.counts[event.WaveCompleted] != 1 || rec.counts[event.WaveStarted] != 1 {
			t.Errorf("dt=%v: wave events = %v", dt, rec.counts)
		}
		if _, ok := ws.TimeToNextWave(); ok {
			t.Errorf("dt=%v: terminal wave must report no next wave", dt)
		}
	}
}

func TestWaveSpawnPositionAndPath(t *testing.T) {
	lib := waveLibrary(t, "  - {type: standard, count: 30, start_time: 0}\n")
	ecs := entity.NewECS()
	paths := []*waypoint.Path{
		straightPath(geom.V(0, 100), geom.V(500, 100)),
		straightPath(geom.V(0, 100), geom.V(500, 300)),
	}
	spawn := geom.V(-96, 512)
	ws := NewWaveSystem(ecs, lib, paths, spawn, 0.3, utils.NewPRNGService(7), event.NewDispatcher(), logger.Discard())
	for i := 0; i < 1000; i++ {
		ecs.GameTime += tick
		ws.Update(tick)
	}
	if len(ecs.Mobs) != 30 {
		t.Fatalf("mobs = %d, want 30", len(ecs.Mobs))
	}
	used := map[*waypoint.Path]bool{}
	for id, mob := range ecs.Mobs {
		used[mob.Path] = true
		pos := ecs.Motions[id].Pos
		if pos.X != spawn.X || math.Abs(pos.Y-spawn.Y) > config.MobSpawnJitter {
			t.Errorf("mob %d spawned at %v, want %v ± jitter", id, pos, spawn)
		}
		if h := ecs.Healths[id]; h.Value != 10 || h.Max != 10 {
			t.Errorf("mob %d health = %+v", id, h)
		}
	}
	if len(used) != 2 {
		t.Errorf("paths used = %d, want both", len(used))
	}
}

func TestTimeToNextWave(t *testing.T) {
	lib := waveLibrary(t, "  - {type: standard, count: 1, start_time: 10}\n")
	ecs := entity.NewECS()
	ws := NewWaveSystem(ecs, lib, []*waypoint.Path{straightPath(geom.V(0, 0), geom.V(1, 0))}, geom.Vec2{}, 0.3,
		utils.NewPRNGService(1), event.NewDispatcher(), logger.Discard())
	ecs.GameTime = 4
	if got, ok := ws.TimeToNextWave(); !ok || got != 6 {
		t.Errorf("TimeToNextWave = %v, %v; want 6, true", got, ok)
	}
	ecs.GameTime = 10.2
	if got, ok := ws.TimeToNextWave(); !ok || got != 0 {
		t.Errorf("TimeToNextWave after start = %v, %v; want 0, true", got, ok)
	}
}

func TestTargetingPicksNearestInRadius(t *testing.T) {
	ecs := entity.NewECS()
	path := straightPath(geom.V(0, 0), geom.V(1000, 0))
	far := addMob(ecs, geom.V(150, 0), path, 10, 10)
	near := addMob(ecs, geom.V(0, 50), path, 10, 10)
	addMob(ecs, geom.V(200, 0), path, 10, 10) // ровно на границе радиуса
	sh := addShooter(ecs, geom.V(0, 0), 200, 0.2, defs.ProjectileBullet)

	ts := NewTargetingSystem(ecs)
	ts.Update()
	if got := ecs.Shooters[sh].TargetID; got != near {
		t.Fatalf("target = %d, want %d (distance 50)", got, near)
	}

	// Ближайший погиб: цель переключается на следующего
	ecs.MarkForRemoval(near)
	ts.Update()
	if got := ecs.Shooters[sh].TargetID; got != far {
		t.Fatalf("target = %d, want %d (distance 150)", got, far)
	}

	ecs.MarkForRemoval(far)
	ts.Update()
	if got := ecs.Shooters[sh].TargetID; got != types.NoEntity {
		t.Fatalf("target = %d, want none (mob at exactly 200 is outside)", got)
	}
}

func TestTargetingTieBreaksBySpawnOrder(t *testing.T) {
	ecs := entity.NewECS()
	path := straightPath(geom.V(0, 0), geom.V(1000, 0))
	first := addMob(ecs, geom.V(100, 0), path, 10, 10)
	addMob(ecs, geom.V(-100, 0), path, 10, 10)
	sh := addShooter(ecs, geom.V(0, 0), 200, 0.2, defs.ProjectileBullet)
	for i := 0; i < 10; i++ {
		NewTargetingSystem(ecs).Update()
		if got := ecs.Shooters[sh].TargetID; got != first {
			t.Fatalf("iteration %d: target = %d, want %d", i, got, first)
		}
	}
}

func TestMobLeaksExactlyOnce(t *testing.T) {
	ecs := entity.NewECS()
	ecs.GameState.Lives = 3
	d := event.NewDispatcher()
	rec := newRecorder(d, event.MobLeaked, event.LivesChanged, event.MobKilled)
	bounds := geom.Rect{W: 400, H: 200}
	path := straightPath(geom.V(0, 100), geom.V(500, 100))
	id := addMob(ecs, geom.V(0, 100), path, 10, 10)

	ms := NewMovementSystem(ecs, bounds, utils.NewPRNGService(1), d)
	for i := 0; i < 2000 && rec.counts[event.MobLeaked] == 0; i++ {
		ms.Update(tick)
	}
	if rec.counts[event.MobLeaked] != 1 {
		t.Fatalf("MobLeaked = %d, want 1", rec.counts[event.MobLeaked])
	}
	if x := ecs.Motions[id].Pos.X; x <= bounds.W {
		t.Errorf("leaked at x=%v, want past the right edge %v", x, bounds.W)
	}

	// До Flush моб ещё в хранилище, но повторно не засчитывается
	ms.Update(tick)
	if ApplyDamage(ecs, d, id, 100) {
		t.Error("leaked mob must not be killable")
	}
	ecs.Flush()
	ms.Update(tick)

	if ecs.GameState.Lives != 2 {
		t.Errorf("lives = %d, want 2", ecs.GameState.Lives)
	}
	if rec.counts[event.MobLeaked] != 1 || rec.counts[event.LivesChanged] != 1 || rec.counts[event.MobKilled] != 0 {
		t.Errorf("events = %v", rec.counts)
	}
	if _, ok := ecs.Mobs[id]; ok {
		t.Error("mob must be removed after Flush")
	}
}

func TestMobPastLastWaypointLeaks(t *testing.T) {
	ecs := entity.NewECS()
	ecs.GameState.Lives = 1
	d := event.NewDispatcher()
	rec := newRecorder(d, event.MobLeaked, event.GameOver)
	// Финиш внутри поля: утечка по исчерпанию маршрута, а не по краю
	path := straightPath(geom.V(0, 100), geom.V(200, 100))
	addMob(ecs, geom.V(0, 100), path, 10, 10)

	ms := NewMovementSystem(ecs, geom.Rect{W: 1000, H: 1000}, utils.NewPRNGService(1), d)
	for i := 0; i < 2000 && rec.counts[event.MobLeaked] == 0; i++ {
		ms.Update(tick)
	}
	if rec.counts[event.MobLeaked] != 1 {
		t.Fatalf("MobLeaked = %d, want 1", rec.counts[event.MobLeaked])
	}
	if rec.counts[event.GameOver] != 1 || !ecs.GameState.Over {
		t.Errorf("GameOver events = %d, over = %v", rec.counts[event.GameOver], ecs.GameState.Over)
	}
}

func TestMobFollowsWaypoints(t *testing.T) {
	ecs := entity.NewECS()
	a := waypoint.NewNode(0, geom.V(-32, 68), 64, 64)
	b := waypoint.NewNode(1, geom.V(268, 68), 64, 64)
	c := waypoint.NewNode(2, geom.V(268, 368), 64, 64)
	path := waypoint.NewPath([]*waypoint.Node{a, b, c})
	id := addMob(ecs, a.Pos, path, 10, 10)

	ms := NewMovementSystem(ecs, geom.Rect{W: 2000, H: 2000}, utils.NewPRNGService(1), event.NewDispatcher())
	reachedB := false
	for i := 0; i < 3000 && ecs.MobAlive(id); i++ {
		ms.Update(tick)
		if ecs.Mobs[id].Current == 2 {
			reachedB = true
		}
	}
	if !reachedB {
		t.Fatal("mob never advanced past the second waypoint")
	}
	if ecs.MobAlive(id) {
		t.Fatal("mob must leak after the last waypoint")
	}
	if d := ecs.Motions[id].Pos.Dist(c.Pos); d > 12 {
		t.Errorf("mob ended %.1f px from the last waypoint", d)
	}
}

func TestKillCreditsRewardOnce(t *testing.T) {
	ecs := entity.NewECS()
	ecs.GameState.Money = 100
	ecs.GameState.Lives = 5
	d := event.NewDispatcher()
	rec := newRecorder(d, event.MobKilled, event.MoneyChanged, event.MobLeaked)
	id := addMob(ecs, geom.V(0, 0), straightPath(geom.V(0, 0), geom.V(1, 0)), 2, 25)

	if ApplyDamage(ecs, d, id, 1) {
		t.Fatal("first hit must not kill a 2 hp mob")
	}
	if !ApplyDamage(ecs, d, id, 1) {
		t.Fatal("second hit must kill")
	}
	if ApplyDamage(ecs, d, id, 1) || KillMob(ecs, d, id) {
		t.Error("dead mob must not die twice")
	}
	if LeakMob(ecs, d, id) {
		t.Error("killed mob must not leak")
	}
	if ecs.GameState.Money != 125 || ecs.GameState.Lives != 5 {
		t.Errorf("money = %d, lives = %d", ecs.GameState.Money, ecs.GameState.Lives)
	}
	if rec.counts[event.MobKilled] != 1 || rec.counts[event.MoneyChanged] != 1 || rec.counts[event.MobLeaked] != 0 {
		t.Errorf("events = %v", rec.counts)
	}
	if got := rec.events[0].Data.(event.MoneyDelta); got.Delta != 25 || got.Balance != 125 {
		t.Errorf("MoneyChanged = %+v", got)
	}
}

func TestBulletDecaysAndSelfDestructs(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Motions[id] = &component.Motion{Body: steering.Body{Pos: geom.V(10, 500), Acc: geom.V(1, 0)}, Speed: 300, Friction: 0.99}
	ecs.Projectiles[id] = &component.Projectile{Kind: defs.ProjectileBullet, Damage: 1, HitBox: 14, MinSpeed: 1}

	ps := NewProjectileSystem(ecs, geom.Rect{W: 100000, H: 1000}, event.NewDispatcher(), logger.Discard())
	ticks := 0
	for ; ticks < 1000; ticks++ {
		ps.Update(tick)
		if ecs.IsPending(id) {
			break
		}
	}
	// 5·0.99ⁿ ≤ 1 при n ≥ 161
	if ticks+1 < 150 || ticks+1 > 170 {
		t.Errorf("bullet destroyed after %d ticks, want about 161", ticks+1)
	}
}

func TestBulletLeavingFieldIsDestroyed(t *testing.T) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Motions[id] = &component.Motion{Body: steering.Body{Pos: geom.V(995, 500), Acc: geom.V(1, 0)}, Speed: 300, Friction: 0.99}
	ecs.Projectiles[id] = &component.Projectile{Kind: defs.ProjectileBullet, Damage: 1, HitBox: 14, MinSpeed: 1}

	ps := NewProjectileSystem(ecs, geom.Rect{W: 1000, H: 1000}, event.NewDispatcher(), logger.Discard())
	for i := 0; i < 10 && !ecs.IsPending(id); i++ {
		ps.Update(tick)
	}
	if !ecs.IsPending(id) {
		t.Fatal("bullet moving out of the field must be destroyed within a few ticks")
	}
}

func TestBulletDamagesAtMostOneMob(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	path := straightPath(geom.V(0, 0), geom.V(1000, 0))
	first := addMob(ecs, geom.V(120, 100), path, 10, 10)
	second := addMob(ecs, geom.V(121, 100), path, 10, 10)
	ids := SpawnProjectile(ecs, defs.ProjectileBullet, geom.V(110, 100), geom.V(1, 0), 3, types.NoEntity)

	ps := NewProjectileSystem(ecs, geom.Rect{W: 1000, H: 1000}, d, logger.Discard())
	ps.Update(tick)
	if !ecs.IsPending(ids[0]) {
		t.Fatal("bullet must be destroyed on impact")
	}
	if h := ecs.Healths[first].Value; h != 7 {
		t.Errorf("first mob health = %d, want 7", h)
	}
	if h := ecs.Healths[second].Value; h != 10 {
		t.Errorf("second mob health = %d, want untouched 10", h)
	}

	ps.Update(tick)
	if h := ecs.Healths[first].Value; h != 7 {
		t.Errorf("destroyed bullet hit again: health = %d", h)
	}
}

func TestRocketHomesAndHits(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	target := addMob(ecs, geom.V(300, 300), straightPath(geom.V(0, 0), geom.V(1000, 0)), 10, 10)
	ids := SpawnProjectile(ecs, defs.ProjectileRocket, geom.V(100, 100), geom.V(0, 1), 5, target)
	if len(ids) != 1 {
		t.Fatalf("rocket factory returned %d ids", len(ids))
	}
	ps := NewProjectileSystem(ecs, geom.Rect{W: 1000, H: 1000}, d, logger.Discard())
	for i := 0; i < 600 && !ecs.IsPending(ids[0]); i++ {
		ps.Update(tick)
	}
	if !ecs.IsPending(ids[0]) {
		t.Fatal("rocket never reached its target")
	}
	if h := ecs.Healths[target].Value; h != 5 {
		t.Errorf("target health = %d, want 5", h)
	}
}

func TestRocketDiesWithTarget(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	target := addMob(ecs, geom.V(900, 900), straightPath(geom.V(0, 0), geom.V(1000, 0)), 1, 10)
	ids := SpawnProjectile(ecs, defs.ProjectileRocket, geom.V(100, 100), geom.V(1, 0), 5, target)
	ps := NewProjectileSystem(ecs, geom.Rect{W: 1000, H: 1000}, d, logger.Discard())
	ps.Update(tick)
	if ecs.IsPending(ids[0]) {
		t.Fatal("rocket destroyed too early")
	}
	KillMob(ecs, d, target)
	ecs.Flush()
	ps.Update(tick)
	if !ecs.IsPending(ids[0]) {
		t.Fatal("rocket must be destroyed once its target is dead")
	}
}

func TestCombatFiresOnCooldown(t *testing.T) {
	ecs := entity.NewECS()
	mob := addMob(ecs, geom.V(150, 100), straightPath(geom.V(0, 0), geom.V(1000, 0)), 10, 10)
	ecs.Motions[mob].Vel = geom.V(1, 0)
	sh := addShooter(ecs, geom.V(100, 100), 200, 0.2, defs.ProjectileBullet)

	NewTargetingSystem(ecs).Update()
	cs := NewCombatSystem(ecs, logger.Discard())
	cs.Update(0.1)
	if len(ecs.Projectiles) != 0 {
		t.Fatal("fired before cooldown elapsed")
	}
	cs.Update(0.1)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}
	shooter := ecs.Shooters[sh]
	if shooter.Timer != 0 {
		t.Errorf("timer = %v, want reset to 0", shooter.Timer)
	}
	// Упреждение: позиция + скорость·30
	if want := geom.V(80, 0); shooter.Aim != want {
		t.Errorf("aim = %v, want %v", shooter.Aim, want)
	}
	for id := range ecs.Projectiles {
		if p := ecs.Motions[id].Pos; math.Abs(p.X-(100+config.MuzzleOffset)) > 1e-9 || p.Y != 100 {
			t.Errorf("muzzle at %v", p)
		}
	}
}

func TestCombatClearsStaleTarget(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	mob := addMob(ecs, geom.V(150, 100), straightPath(geom.V(0, 0), geom.V(1000, 0)), 10, 10)
	sh := addShooter(ecs, geom.V(100, 100), 200, 0, defs.ProjectileBullet)
	NewTargetingSystem(ecs).Update()
	KillMob(ecs, d, mob)
	ecs.Flush()

	NewCombatSystem(ecs, logger.Discard()).Update(tick)
	if ecs.Shooters[sh].TargetID != types.NoEntity {
		t.Error("stale target must be cleared")
	}
	if len(ecs.Projectiles) != 0 {
		t.Error("must not fire at a dead target")
	}
}

func TestTwinBulletFactory(t *testing.T) {
	ecs := entity.NewECS()
	ids := SpawnProjectile(ecs, defs.ProjectileTwinBullet, geom.V(0, 0), geom.V(1, 0), 1, types.NoEntity)
	if len(ids) != 2 || len(ecs.Flashes) != 2 {
		t.Fatalf("twin: projectiles %d, flashes %d", len(ids), len(ecs.Flashes))
	}
	a, b := ecs.Motions[ids[0]].Pos, ecs.Motions[ids[1]].Pos
	if a.Dist(b) != 2*config.TwinSpread || a.X != b.X {
		t.Errorf("twin bullets at %v and %v", a, b)
	}

	vs := NewVisualEffectSystem(ecs)
	vs.Update(config.MuzzleFlashTime)
	ecs.Flush()
	if len(ecs.Flashes) != 0 {
		t.Errorf("flashes left after their duration: %d", len(ecs.Flashes))
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		pct  float64
		want [3]uint8
	}{
		{1, [3]uint8{0, 255, 0}},
		{0.5, [3]uint8{255, 255, 0}},
		{0, [3]uint8{255, 0, 0}},
		{-1, [3]uint8{255, 0, 0}},
	}
	for _, tt := range tests {
		c := HealthColor(tt.pct)
		if got := [3]uint8{c.R, c.G, c.B}; got != tt.want {
			t.Errorf("HealthColor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
