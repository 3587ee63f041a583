package vector_math

// Vec2 is a plain 2D value used for texture coordinates and planar layouts. Unlike Vec3 it never
// mutates in place.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Vec3 lifts v into 3D at the given depth.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}
