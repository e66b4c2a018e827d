package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera fit constants.
const (
	ReferenceFOV      = 45.0 // Degrees, independent of the runtime camera
	cameraMargin      = 1.2
	minCameraDistance = 2.0
)

// BoundingBox is an axis-aligned box accumulated from positions.
type BoundingBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// NewBoundingBox returns an empty box. The first Update tightens both bounds.
func NewBoundingBox() BoundingBox {
	inf := math32.Inf(1)
	return BoundingBox{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// Update widens the box to contain p.
func (b *BoundingBox) Update(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Empty reports whether no position has been added.
func (b BoundingBox) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Contains reports whether p lies inside the box (inclusive).
func (b BoundingBox) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns (min+max)/2.
func (b BoundingBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns max-min.
func (b BoundingBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxDimension returns the largest extent across the three axes.
func (b BoundingBox) MaxDimension() float32 {
	s := b.Size()
	return math32.Max(math32.Max(s[0], s[1]), s[2])
}

// Diagonal returns the length of the box diagonal.
func (b BoundingBox) Diagonal() float32 {
	return b.Size().Len()
}

// OptimalCameraDistance returns a distance from which the whole box fits a
// 45 degree field of view, with margin. It never returns less than 2.
func (b BoundingBox) OptimalCameraDistance() float32 {
	if b.Empty() {
		return minCameraDistance
	}
	halfFOV := mgl32.DegToRad(ReferenceFOV) / 2
	dist := (b.Diagonal() * 0.5 / math32.Tan(halfFOV)) * cameraMargin
	if !(dist >= minCameraDistance) {
		return minCameraDistance
	}
	return dist
}
