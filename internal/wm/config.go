package wm

// Config holds the geometry defaults a Store applies when opening windows.
type Config struct {
	// DefaultPosition is where the first window opens when none is given.
	DefaultPosition Position
	// DefaultSize is used when an open request carries no size.
	DefaultSize Size
	// Stagger offsets each default position per already-open window.
	Stagger Position
	// FallbackPosition and FallbackSize restore a maximized window that has
	// no recorded pre-maximize geometry.
	FallbackPosition Position
	FallbackSize     Size
	// ZBase seeds the z-order counter. The first window gets ZBase+1.
	ZBase int
	// MinSize is the resize floor for components without an entry in
	// ComponentMinSize.
	MinSize          Size
	ComponentMinSize map[Component]Size
}

// DefaultConfig returns the reference pixel geometry.
func DefaultConfig() Config {
	return Config{
		DefaultPosition:  Position{X: 100, Y: 50},
		DefaultSize:      Size{Width: 800, Height: 600},
		Stagger:          Position{X: 30, Y: 30},
		FallbackPosition: Position{X: 100, Y: 100},
		FallbackSize:     Size{Width: 800, Height: 600},
		ZBase:            1000,
		MinSize:          Size{Width: 400, Height: 300},
		ComponentMinSize: map[Component]Size{
			ComponentAddressBook:    {Width: 600, Height: 400},
			ComponentContactDetails: {Width: 400, Height: 350},
		},
	}
}

// MinSizeFor returns the smallest size a window of component c may be resized
// to.
func (c Config) MinSizeFor(comp Component) Size {
	if s, ok := c.ComponentMinSize[comp]; ok {
		return s
	}
	return c.MinSize
}

// stagger returns the default position for the n-th open window.
func (c Config) stagger(n int) Position {
	return Position{
		X: c.DefaultPosition.X + n*c.Stagger.X,
		Y: c.DefaultPosition.Y + n*c.Stagger.Y,
	}
}
