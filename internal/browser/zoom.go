package browser

// Zoom factor bounds shared by every Zoom implementation. The dispatcher
// clamps before calling Set, so implementations can trust the range.
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.25
	ZoomMax     = 5.0
	ZoomStep    = 0.1
)

// ClampZoom constrains a zoom factor to the valid range.
func ClampZoom(factor float64) float64 {
	if factor < ZoomMin {
		return ZoomMin
	}
	if factor > ZoomMax {
		return ZoomMax
	}
	return factor
}
