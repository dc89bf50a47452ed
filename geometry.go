package tooltip

// Point is a 2D coordinate or offset in CSS pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size is a width/height pair in CSS pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a bounding box as reported by getBoundingClientRect.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}
