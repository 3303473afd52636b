// pkg/waypoint/paths.go
package waypoint

import (
	"errors"
	"slices"
)

// ErrNoPath — между стартом и финишем нет ни одного маршрута.
var ErrNoPath = errors.New("waypoint: no path between start and goal")

// Path — неизменяемая последовательность узлов от старта до финиша
// с закэшированной длиной.
type Path struct {
	Nodes  []*Node
	Length float64
}

// NewPath копирует узлы и считает длину.
func NewPath(nodes []*Node) *Path {
	cp := slices.Clone(nodes)
	return &Path{Nodes: cp, Length: pathLength(cp)}
}

// Len — количество точек маршрута.
func (p *Path) Len() int {
	return len(p.Nodes)
}

// At возвращает i-ю точку маршрута; ok == false за пределами пути.
func (p *Path) At(i int) (*Node, bool) {
	if i < 0 || i >= len(p.Nodes) {
		return nil, false
	}
	return p.Nodes[i], true
}

// Last — индекс последней точки.
func (p *Path) Last() int {
	return len(p.Nodes) - 1
}

func pathLength(nodes []*Node) float64 {
	length := 0.0
	for i := 0; i+1 < len(nodes); i++ {
		length += nodes[i].Pos.Dist(nodes[i+1].Pos)
	}
	return length
}

// EnumeratePaths находит все простые пути (без повторных узлов) от start до
// goal перебором в ширину и сортирует их по возрастанию длины.
//
// maxPaths ограничивает число найденных путей (0 — без ограничения).
// На плотных графах число простых путей растёт комбинаторно; при достижении
// лимита перебор останавливается и truncated == true. Обход в ширину
// находит пути с меньшим числом узлов раньше.
func EnumeratePaths(start, goal *Node, maxPaths int) (paths []*Path, truncated bool, err error) {
	if start == nil || goal == nil {
		return nil, false, ErrNoPath
	}

	queue := [][]*Node{{start}}
	head := 0
	for head < len(queue) {
		current := queue[head]
		queue[head] = nil
		head++

		last := current[len(current)-1]
		if last == goal {
			paths = append(paths, NewPath(current))
			if maxPaths > 0 && len(paths) >= maxPaths {
				truncated = head < len(queue)
				break
			}
			// За финишем продолжать нечего: простой путь не вернётся в goal
			continue
		}

		for _, next := range last.Neighbors {
			if slices.Contains(current, next) {
				continue
			}
			branch := make([]*Node, len(current), len(current)+1)
			copy(branch, current)
			queue = append(queue, append(branch, next))
		}
	}

	if len(paths) == 0 {
		return nil, false, ErrNoPath
	}
	slices.SortStableFunc(paths, func(a, b *Path) int {
		switch {
		case a.Length < b.Length:
			return -1
		case a.Length > b.Length:
			return 1
		}
		return 0
	})
	return paths, truncated, nil
}
