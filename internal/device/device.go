// Package device classifies the input surface the page is shown on.
package device

// DefaultBreakpointPx is the viewport width, in logical pixels, below which
// a device is treated as touch-primary.
const DefaultBreakpointPx = 768

// DefaultCellWidthPx approximates the logical pixel width of one terminal cell.
const DefaultCellWidthPx = 8

// Policy decides whether a device is touch-primary.
type Policy struct {
	TouchCapable bool
	BreakpointPx int
	CellWidthPx  int
}

// DefaultPolicy returns the policy for a device without touch capability.
func DefaultPolicy() Policy {
	return Policy{BreakpointPx: DefaultBreakpointPx, CellWidthPx: DefaultCellWidthPx}
}

// Classify reports whether a device with the given capability and viewport
// width in logical pixels is touch-primary.
func Classify(touchCapable bool, viewportWidthPx, breakpointPx int) bool {
	return touchCapable || viewportWidthPx < breakpointPx
}

// TouchPrimary classifies a terminal viewport measured in cells.
func (p Policy) TouchPrimary(widthCells int) bool {
	cell := p.CellWidthPx
	if cell <= 0 {
		cell = DefaultCellWidthPx
	}
	breakpoint := p.BreakpointPx
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpointPx
	}
	return Classify(p.TouchCapable, widthCells*cell, breakpoint)
}

// Detector keeps the current classification and recomputes it on resize.
type Detector struct {
	policy       Policy
	touchPrimary bool
	width        int
}

// NewDetector returns a detector for a viewport of the given width in cells.
func NewDetector(policy Policy, widthCells int) *Detector {
	d := &Detector{policy: policy}
	d.Resize(widthCells)
	return d
}

// Resize recomputes the classification and reports whether it changed.
func (d *Detector) Resize(widthCells int) bool {
	prev := d.touchPrimary
	d.width = widthCells
	d.touchPrimary = d.policy.TouchPrimary(widthCells)
	return prev != d.touchPrimary
}

// TouchPrimary returns the latest classification.
func (d *Detector) TouchPrimary() bool {
	return d.touchPrimary
}

// Width returns the last viewport width in cells.
func (d *Detector) Width() int {
	return d.width
}
