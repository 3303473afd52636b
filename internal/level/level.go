// internal/level/level.go
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go-waypoint-defense/pkg/geom"
	"go-waypoint-defense/pkg/waypoint"

	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultMap []byte

// Rect — прямоугольник в файле карты, задаётся левым верхним углом.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r Rect) geom() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

type rawLevel struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Walls  []Rect  `yaml:"walls"`
	Nodes  []Rect  `yaml:"nodes"`
	Roads  []Rect  `yaml:"roads"`
	Start  Rect    `yaml:"start"`
	End    Rect    `yaml:"end"`
}

// Level — статическое описание поля: границы, стены, узлы, дороги и
// узлы старта и финиша. После загрузки не меняется.
type Level struct {
	Bounds geom.Rect
	Walls  []geom.Rect
	Nodes  []geom.Rect
	Roads  []geom.Rect
	Start  geom.Rect
	End    geom.Rect
}

// Graph — узлы карты со связями прямой видимости.
type Graph struct {
	Nodes []*waypoint.Node
	Start *waypoint.Node
	End   *waypoint.Node
}

// Default загружает встроенную карту.
func Default() (*Level, error) {
	return Parse(defaultMap)
}

// LoadFile reads a map file from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

// Parse разбирает YAML-описание карты.
func Parse(data []byte) (*Level, error) {
	var raw rawLevel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map: %w", err)
	}
	lvl := &Level{
		Bounds: geom.Rect{W: raw.Width, H: raw.Height},
		Walls:  toRects(raw.Walls),
		Nodes:  toRects(raw.Nodes),
		Roads:  toRects(raw.Roads),
		Start:  raw.Start.geom(),
		End:    raw.End.geom(),
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return lvl, nil
}

func toRects(in []Rect) []geom.Rect {
	out := make([]geom.Rect, len(in))
	for i, r := range in {
		out[i] = r.geom()
	}
	return out
}

// Validate проверяет размеры поля и прямоугольников.
func (l *Level) Validate() error {
	var errs []error
	if l.Bounds.W <= 0 || l.Bounds.H <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %vx%v", l.Bounds.W, l.Bounds.H))
	}
	check := func(kind string, i int, r geom.Rect) {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("%s %d: size must be positive", kind, i))
		}
	}
	for i, r := range l.Walls {
		check("wall", i, r)
	}
	for i, r := range l.Nodes {
		check("node", i, r)
	}
	for i, r := range l.Roads {
		check("road", i, r)
	}
	check("start", 0, l.Start)
	check("end", 0, l.End)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid map: %w", err)
	}
	return nil
}

// BuildGraph создаёт узлы (промежуточные, затем старт и финиш) и
// вычисляет между ними связи прямой видимости.
func (l *Level) BuildGraph() *Graph {
	nodes := make([]*waypoint.Node, 0, len(l.Nodes)+2)
	for i, r := range l.Nodes {
		nodes = append(nodes, waypoint.NewNode(i, r.Min(), r.W, r.H))
	}
	start := waypoint.NewNode(len(nodes), l.Start.Min(), l.Start.W, l.Start.H)
	end := waypoint.NewNode(len(nodes)+1, l.End.Min(), l.End.W, l.End.H)
	nodes = append(nodes, start, end)

	walls := make([]waypoint.Wall, len(l.Walls))
	for i, r := range l.Walls {
		walls[i] = waypoint.Wall{Rect: r}
	}
	waypoint.BuildVisibility(nodes, walls)
	return &Graph{Nodes: nodes, Start: start, End: end}
}

// OnRoad сообщает, лежит ли точка на дороге.
func (l *Level) OnRoad(p geom.Vec2) bool {
	for _, r := range l.Roads {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// InWall сообщает, лежит ли точка внутри стены.
func (l *Level) InWall(p geom.Vec2) bool {
	for _, r := range l.Walls {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
