package navigator

// scrollThreshold is the minimum offset delta (in pixels) before a scroll
// movement counts as a direction signal. Matches the sensitivity the views
// were tuned with.
const scrollThreshold = 5

// ScrollDetector turns a raw scroll-offset stream into discrete up/down
// direction events. Each view used to carry its own copy of this logic;
// it lives here once so every view feeds the navigator uniformly.
type ScrollDetector struct {
	lastOffset float64
}

// NewScrollDetector returns a detector anchored at offset zero.
func NewScrollDetector() *ScrollDetector {
	return &ScrollDetector{}
}

// Observe consumes the next scroll offset. It returns the detected
// direction and whether the movement exceeded the threshold; sub-threshold
// movement and negative offsets (rubber-banding) yield no event.
func (d *ScrollDetector) Observe(offset float64) (ScrollDirection, bool) {
	if offset < 0 {
		return "", false
	}

	diff := offset - d.lastOffset
	if diff > -scrollThreshold && diff < scrollThreshold {
		return "", false
	}

	d.lastOffset = offset
	if diff > 0 {
		return ScrollDown, true
	}
	return ScrollUp, true
}

// Restart re-anchors the detector, e.g. when a view remounts at the top.
func (d *ScrollDetector) Restart() {
	d.lastOffset = 0
}
