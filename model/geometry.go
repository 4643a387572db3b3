package model

import "math"

// Point is a position on the map in world coordinates.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Offset(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared avoids the sqrt; prefer it for comparisons.
func (p Point) DistanceSquared(o Point) float32 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

func (p Point) Distance(o Point) float32 {
	return float32(math.Sqrt(float64(p.DistanceSquared(o))))
}

// CloserThan reports whether o lies strictly within dist of p.
func (p Point) CloserThan(dist float32, o Point) bool {
	return p.DistanceSquared(o) < dist*dist
}

func (p Point) FurtherThan(dist float32, o Point) bool {
	return p.DistanceSquared(o) > dist*dist
}

// Snap aligns a point to the center of its map cell.
func (p Point) Snap() Point {
	return Point{
		X: float32(math.Floor(float64(p.X))) + 0.5,
		Y: float32(math.Floor(float64(p.Y))) + 0.5,
	}
}

// Center returns the centroid of the given points.
// The second return value is false for an empty input.
func Center(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var sx, sy float32
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float32(len(points))
	return Point{X: sx / n, Y: sy / n}, true
}
