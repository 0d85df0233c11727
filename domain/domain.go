package domain

import "fmt"

// Vec3 is an integer block vector, used for blueprint dimensions and region corners.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Add returns v + o component-wise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o component-wise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// One is the unit vector (1,1,1).
var One = Vec3{X: 1, Y: 1, Z: 1}

// Location is an absolute position in a named world.
type Location struct {
	World string  `json:"world"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
}

func (l Location) String() string {
	return fmt.Sprintf("world=%s x=%.2f y=%.2f z=%.2f yaw=%.1f pitch=%.1f", l.World, l.X, l.Y, l.Z, l.Yaw, l.Pitch)
}

// Region is an axis-aligned block region between Min and Max (inclusive).
type Region struct {
	Min Vec3
	Max Vec3
}

// Offset is a position relative to a slot origin, with an absolute facing.
type Offset struct {
	X     float64
	Y     float64
	Z     float64
	Yaw   float32
	Pitch float32
}

// Apply resolves the offset against a slot origin, producing an absolute location
// in the origin's world.
func (o Offset) Apply(origin Location) Location {
	return Location{
		World: origin.World,
		X:     origin.X + o.X,
		Y:     origin.Y + o.Y,
		Z:     origin.Z + o.Z,
		Yaw:   o.Yaw,
		Pitch: o.Pitch,
	}
}
