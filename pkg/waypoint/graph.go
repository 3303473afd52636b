// pkg/waypoint/graph.go
package waypoint

import (
	"fmt"

	"go-waypoint-defense/pkg/geom"
)

// Node — точка маршрута. Занимает прямоугольник (он же перекрывает обзор
// другим узлам); позиция — центр прямоугольника.
type Node struct {
	ID        int
	Rect      geom.Rect
	Pos       geom.Vec2
	Neighbors []*Node // узлы в прямой видимости, без владения
}

// NewNode создаёт узел по левому верхнему углу и размеру.
func NewNode(id int, topLeft geom.Vec2, w, h float64) *Node {
	r := geom.Rect{X: topLeft.X, Y: topLeft.Y, W: w, H: h}
	return &Node{ID: id, Rect: r, Pos: r.Center()}
}

func (n *Node) String() string {
	return fmt.Sprintf("node#%d(%.0f,%.0f)", n.ID, n.Pos.X, n.Pos.Y)
}

// Sees сообщает, есть ли other среди соседей n.
func (n *Node) Sees(other *Node) bool {
	for _, nb := range n.Neighbors {
		if nb == other {
			return true
		}
	}
	return false
}

// Wall — статическое препятствие.
type Wall struct {
	Rect geom.Rect
}

// BuildVisibility пересчитывает списки соседей для всех узлов.
// Луч A→B перекрыт, если он пересекает любую стену или прямоугольник
// любого третьего узла. Каждая неупорядоченная пара проверяется один раз и
// связь добавляется в обе стороны, поэтому граф симметричен.
// Сложность O(N²·(N+W)); считается один раз при построении мира.
func BuildVisibility(nodes []*Node, walls []Wall) {
	for _, n := range nodes {
		n.Neighbors = n.Neighbors[:0]
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if lineOfSight(a, b, nodes, walls) {
				a.Neighbors = append(a.Neighbors, b)
				b.Neighbors = append(b.Neighbors, a)
			}
		}
	}
}

func lineOfSight(a, b *Node, nodes []*Node, walls []Wall) bool {
	ray := geom.Seg(a.Pos, b.Pos)
	for _, w := range walls {
		if geom.SegmentIntersectsRect(ray, w.Rect) {
			return false
		}
	}
	for _, other := range nodes {
		if other == a || other == b {
			continue
		}
		if geom.SegmentIntersectsRect(ray, other.Rect) {
			return false
		}
	}
	return true
}
