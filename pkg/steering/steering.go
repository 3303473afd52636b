// pkg/steering/steering.go
package steering

import (
	"math"

	"go-waypoint-defense/pkg/geom"
)

// Body — кинематическое состояние движущейся сущности.
type Body struct {
	Pos geom.Vec2
	Vel geom.Vec2
	Acc geom.Vec2
}

// Limits — ограничения рулевой силы.
type Limits struct {
	MaxSpeed float64 // желаемая скорость, к которой стремится поведение
	MaxForce float64 // максимальная длина рулевого вектора
}

// Remap линейно переводит n из [start1, stop1] в [start2, stop2]
// с обрезкой по границам целевого диапазона.
func Remap(n, start1, stop1, start2, stop2 float64) float64 {
	if stop1 == start1 {
		return start2
	}
	v := (n-start1)/(stop1-start1)*(stop2-start2) + start2
	lo, hi := math.Min(start2, stop2), math.Max(start2, stop2)
	return math.Max(lo, math.Min(v, hi))
}

// DesiredSpeed — величина желаемой скорости для Arrive на расстоянии d
// от цели: 0 при d = 0, MaxSpeed при d >= slowRadius.
func DesiredSpeed(d, slowRadius, maxSpeed float64) float64 {
	if d >= slowRadius {
		return maxSpeed
	}
	return Remap(d, 0, slowRadius, 0, maxSpeed)
}

// Arrive — движение к цели с торможением внутри радиуса slowRadius.
func Arrive(b Body, target geom.Vec2, lim Limits, slowRadius float64) geom.Vec2 {
	offset := target.Sub(b.Pos)
	dir, ok := offset.Normalize()
	if !ok {
		// Уже на месте: гасим текущую скорость
		return b.Vel.Scale(-1).Limit(lim.MaxForce)
	}
	speed := DesiredSpeed(offset.Len(), slowRadius, lim.MaxSpeed)
	return steer(b, dir.Scale(speed), lim.MaxForce)
}

// Seek — движение к цели на полной скорости, без торможения.
func Seek(b Body, target geom.Vec2, lim Limits) geom.Vec2 {
	dir, ok := target.Sub(b.Pos).Normalize()
	if !ok {
		return geom.Vec2{}
	}
	return steer(b, dir.Scale(lim.MaxSpeed), lim.MaxForce)
}

func steer(b Body, desired geom.Vec2, maxForce float64) geom.Vec2 {
	return desired.Sub(b.Vel).Limit(maxForce)
}

// SeparationParams — параметры расталкивания.
type SeparationParams struct {
	Radius   float64 // радиус восприятия соседей
	MinDist  float64 // нижняя граница расстояния в знаменателе
	MaxSpeed float64
	MaxForce float64
}

// Separation отталкивает сущность от соседей внутри радиуса восприятия.
// Вклад каждого соседа — вектор от него, делённый на квадрат расстояния.
// Сам объект в neighbors передаваться не должен. Без соседей — нулевой вектор.
func Separation(b Body, neighbors []geom.Vec2, p SeparationParams) geom.Vec2 {
	var sum geom.Vec2
	total := 0
	for _, other := range neighbors {
		away := b.Pos.Sub(other)
		dist := away.Len()
		if dist >= p.Radius {
			continue
		}
		d := math.Max(dist, p.MinDist)
		sum = sum.Add(away.Scale(1 / (d * d)))
		total++
	}
	if total == 0 || sum.IsZero() {
		return geom.Vec2{}
	}
	avg := sum.Scale(1 / float64(total))
	return avg.WithLen(p.MaxSpeed).Sub(b.Vel).Limit(p.MaxForce)
}

// WanderParams — параметры блуждания.
type WanderParams struct {
	Distance   float64 // насколько далеко впереди проецируется центр окружности
	Radius     float64 // радиус окружности блуждания
	MaxJitter  float64 // максимальное изменение угла за вызов, радианы
	SlowRadius float64
}

// Wander сдвигает угол блуждания на случайную величину из [-MaxJitter, MaxJitter]
// (jitter ∈ [-1, 1] задаёт вызывающий) и возвращает Arrive к точке на окружности
// перед сущностью вместе с новым углом.
func Wander(b Body, angle, jitter float64, lim Limits, p WanderParams) (geom.Vec2, float64) {
	angle += jitter * p.MaxJitter
	heading, ok := b.Vel.Normalize()
	if !ok {
		heading = geom.V(1, 0)
	}
	center := b.Pos.Add(heading.Scale(p.Distance))
	target := center.Add(geom.FromAngle(heading.Angle()+angle, p.Radius))
	return Arrive(b, target, lim, p.SlowRadius), angle
}

// Integrate — шаг интегрирования за тик:
// скорость += ускорение·speedScale·dt, ускорение обнуляется,
// скорость *= friction, позиция += скорость.
func Integrate(b *Body, speedScale, friction, dt float64) {
	b.Vel = b.Vel.Add(b.Acc.Scale(speedScale * dt))
	b.Acc = geom.Vec2{}
	b.Vel = b.Vel.Scale(friction)
	b.Pos = b.Pos.Add(b.Vel)
}
