// pkg/geom/shape.go
package geom

// Segment — отрезок от A до B. Используется и как луч видимости, и как сторона препятствия.
type Segment struct {
	A, B Vec2
}

// Seg — короткий конструктор.
func Seg(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// Len возвращает длину отрезка.
func (s Segment) Len() float64 {
	return s.A.Dist(s.B)
}

// Rect — прямоугольник, выровненный по осям. (X, Y) — левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// RectAt строит прямоугольник заданного размера с центром в точке c.
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Min() Vec2 { return Vec2{r.X, r.Y} }
func (r Rect) Max() Vec2 { return Vec2{r.X + r.W, r.Y + r.H} }
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// Edges возвращает четыре стороны прямоугольника по часовой стрелке,
// начиная с верхней.
func (r Rect) Edges() [4]Segment {
	tl := Vec2{r.X, r.Y}
	tr := Vec2{r.X + r.W, r.Y}
	br := Vec2{r.X + r.W, r.Y + r.H}
	bl := Vec2{r.X, r.Y + r.H}
	return [4]Segment{
		{tl, tr},
		{tr, br},
		{br, bl},
		{bl, tl},
	}
}

// Contains проверяет, лежит ли точка внутри прямоугольника (правая и нижняя границы исключены).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps проверяет пересечение двух прямоугольников с ненулевой площадью общей части.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// SegmentsIntersect — параметрическая проверка пересечения двух отрезков
// (отношения uA, uB через векторные произведения). Параллельные и
// вырожденные отрезки (нулевой знаменатель) не пересекаются.
func SegmentsIntersect(a, b Segment) bool {
	da := a.B.Sub(a.A)
	db := b.B.Sub(b.A)
	den := db.Y*da.X - db.X*da.Y
	if den == 0 {
		return false
	}
	w := a.A.Sub(b.A)
	uA := (db.X*w.Y - db.Y*w.X) / den
	uB := (da.X*w.Y - da.Y*w.X) / den
	return uA >= 0 && uA <= 1 && uB >= 0 && uB <= 1
}

// SegmentIntersectsRect возвращает true, если отрезок пересекает хотя бы одну
// из четырёх сторон прямоугольника. Отрезок целиком внутри прямоугольника
// пересечением не считается.
func SegmentIntersectsRect(s Segment, r Rect) bool {
	for _, edge := range r.Edges() {
		if SegmentsIntersect(s, edge) {
			return true
		}
	}
	return false
}
