package geometry

// DistanceFromPointToLine calculates the shortest distance from a point to a line segment
func DistanceFromPointToLine(point, lineStart, lineEnd Vector) float64 {
	return NewLine(lineStart, lineEnd).DistanceTo(point)
}
