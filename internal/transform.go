package internal

// View transform defaults and limits for the model viewer.
const (
	DefaultRotX = 20.0
	DefaultRotY = 45.0
	DefaultZoom = 1.0
	ZoomStep    = 0.2
	MinZoom     = 0.5
	MaxZoom     = 3.0
)

// ViewTransform holds the camera-like state of the model preview:
// two rotation angles in degrees (unbounded) and a clamped zoom factor.
// It is independent of the conversation beyond sharing a screen.
type ViewTransform struct {
	RotX float64
	RotY float64
	Zoom float64
}

// NewViewTransform returns the transform in its default pose.
func NewViewTransform() ViewTransform {
	return ViewTransform{RotX: DefaultRotX, RotY: DefaultRotY, Zoom: DefaultZoom}
}

// ZoomIn increases zoom by one step, clamped to MaxZoom.
func (v *ViewTransform) ZoomIn() {
	v.Zoom += ZoomStep
	if v.Zoom > MaxZoom {
		v.Zoom = MaxZoom
	}
}

// ZoomOut decreases zoom by one step, clamped to MinZoom.
func (v *ViewTransform) ZoomOut() {
	v.Zoom -= ZoomStep
	if v.Zoom < MinZoom {
		v.Zoom = MinZoom
	}
}

// Rotate adjusts the rotation angles. Rotation is free: angles are not
// normalized or clamped.
func (v *ViewTransform) Rotate(dx, dy float64) {
	v.RotX += dx
	v.RotY += dy
}

// Reset restores the default rotation and zoom in one update.
func (v *ViewTransform) Reset() {
	*v = NewViewTransform()
}
