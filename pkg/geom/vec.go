// pkg/geom/vec.go
package geom

import "math"

// Vec2 — двумерный вектор (позиция, скорость, ускорение, направление).
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle возвращает вектор длины length под углом angle (радианы).
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Normalize возвращает единичный вектор. Для нулевого вектора ok == false
// и результат нулевой: направление не определено.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// WithLen масштабирует вектор до длины length. Нулевой вектор остаётся нулевым.
func (v Vec2) WithLen(length float64) Vec2 {
	n, ok := v.Normalize()
	if !ok {
		return Vec2{}
	}
	return n.Scale(length)
}

// Limit ограничивает длину вектора сверху.
func (v Vec2) Limit(max float64) Vec2 {
	if v.LenSq() <= max*max {
		return v
	}
	return v.WithLen(max)
}
