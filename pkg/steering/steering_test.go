package steering

import (
	"math"
	"testing"

	"go-waypoint-defense/pkg/geom"
)

const eps = 1e-9

func TestDesiredSpeed(t *testing.T) {
	tests := []struct {
		name string
		d    float64
		want float64
	}{
		{"At target", 0, 0},
		{"Half way into radius", 50, 6},
		{"At slow radius", 100, 12},
		{"Beyond slow radius", 500, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DesiredSpeed(tt.d, 100, 12); math.Abs(got-tt.want) > eps {
				t.Errorf("DesiredSpeed(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestArrive(t *testing.T) {
	lim := Limits{MaxSpeed: 12, MaxForce: 1000}

	// Стоим на месте, цель далеко: желаемая скорость равна максимальной.
	b := Body{Pos: geom.V(0, 0)}
	f := Arrive(b, geom.V(300, 0), lim, 100)
	if math.Abs(f.X-12) > eps || math.Abs(f.Y) > eps {
		t.Errorf("Arrive far = %v, want (12, 0)", f)
	}

	// Стоим точно в цели и не двигаемся: сила нулевая.
	f = Arrive(Body{Pos: geom.V(5, 5)}, geom.V(5, 5), lim, 100)
	if !f.IsZero() {
		t.Errorf("Arrive at target = %v, want zero", f)
	}

	// Сила ограничена MaxForce.
	f = Arrive(b, geom.V(300, 0), Limits{MaxSpeed: 12, MaxForce: 1}, 100)
	if math.Abs(f.Len()-1) > eps {
		t.Errorf("Arrive clamped length = %v, want 1", f.Len())
	}
}

func TestSeekIgnoresSlowRadius(t *testing.T) {
	lim := Limits{MaxSpeed: 10, MaxForce: 1000}
	f := Seek(Body{}, geom.V(1, 0), lim)
	if math.Abs(f.X-10) > eps {
		t.Errorf("Seek close to target = %v, want full speed 10", f)
	}
	if f := Seek(Body{}, geom.Vec2{}, lim); !f.IsZero() {
		t.Errorf("Seek at target = %v, want zero", f)
	}
}

func TestSeparation(t *testing.T) {
	p := SeparationParams{Radius: 40, MinDist: 0.001, MaxSpeed: 12, MaxForce: 0.2}
	b := Body{Pos: geom.V(100, 100)}

	if f := Separation(b, nil, p); !f.IsZero() {
		t.Errorf("Separation without neighbors = %v, want zero", f)
	}
	if f := Separation(b, []geom.Vec2{geom.V(500, 500)}, p); !f.IsZero() {
		t.Errorf("Separation with far neighbor = %v, want zero", f)
	}

	f := Separation(b, []geom.Vec2{geom.V(110, 100)}, p)
	if f.X >= 0 {
		t.Errorf("Separation must push away from neighbor on the right, got %v", f)
	}
	if f.Len() > p.MaxForce+eps {
		t.Errorf("Separation length %v exceeds max force %v", f.Len(), p.MaxForce)
	}

	// Сосед в той же точке не даёт направления и не ломает расчёт.
	if f := Separation(b, []geom.Vec2{b.Pos}, p); !f.IsZero() || math.IsNaN(f.X) {
		t.Errorf("Separation with coincident neighbor = %v, want zero", f)
	}
}

func TestWander(t *testing.T) {
	lim := Limits{MaxSpeed: 5, MaxForce: 1}
	wp := WanderParams{Distance: 50, Radius: 20, MaxJitter: 0.3, SlowRadius: 10}
	b := Body{Pos: geom.V(0, 0), Vel: geom.V(2, 0)}

	f, angle := Wander(b, 0, 1, lim, wp)
	if math.Abs(angle-0.3) > eps {
		t.Errorf("angle after full jitter = %v, want 0.3", angle)
	}
	if f.Len() > lim.MaxForce+eps {
		t.Errorf("Wander force %v exceeds max force", f.Len())
	}

	// Без скорости направление берётся по умолчанию, NaN не появляется.
	f, _ = Wander(Body{}, 0, 0, lim, wp)
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Errorf("Wander at rest produced NaN: %v", f)
	}
}

func TestIntegrate(t *testing.T) {
	b := Body{Pos: geom.V(0, 0), Vel: geom.V(1, 0), Acc: geom.V(1, 0)}
	Integrate(&b, 10, 0.5, 0.1)
	// vel = (1 + 1*10*0.1) * 0.5 = 1
	if math.Abs(b.Vel.X-1) > eps || math.Abs(b.Pos.X-1) > eps {
		t.Errorf("after Integrate vel=%v pos=%v, want vel.x=1 pos.x=1", b.Vel, b.Pos)
	}
	if !b.Acc.IsZero() {
		t.Errorf("acceleration must be reset, got %v", b.Acc)
	}
}

func TestRemap(t *testing.T) {
	if got := Remap(0.75, 0.5, 1, 0, 1); math.Abs(got-0.5) > eps {
		t.Errorf("Remap = %v, want 0.5", got)
	}
	if got := Remap(5, 0, 1, 0, 1); got != 1 {
		t.Errorf("Remap clamps high, got %v", got)
	}
	if got := Remap(5, 1, 1, 3, 4); got != 3 {
		t.Errorf("Remap over empty source range = %v, want 3", got)
	}
}
