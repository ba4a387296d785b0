package source

import "context"

// StaticLocator is a Locator returning a fixed position, used when the
// deployment pins its location through configuration
type StaticLocator struct {
	Lat float64
	Lon float64
}

// CurrentLocation returns the configured coordinates
func (l StaticLocator) CurrentLocation(_ context.Context) (lat, lon float64, err error) {
	return l.Lat, l.Lon, nil
}
