package frozenmap

// Stats describes the shape of a built table.
type Stats struct {
	NumKeys  int
	Capacity int
	Load     float64
	BytesLen int
	MaxProbe int
}
