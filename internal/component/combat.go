// internal/component/combat.go
package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// Fraction — доля оставшегося здоровья в [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}
