package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kelvins/geocoder"

	"github.com/activesky/activesky/internal/weather"
)

// Resolver turns user-supplied place strings into coordinates. A place is
// either a "lat,lon" pair or a free-form "City" / "City,Country" name; names
// require a configured Google geocoding API key.
type Resolver struct {
	apiKey string
}

func NewResolver(apiKey string) *Resolver {
	return &Resolver{apiKey: apiKey}
}

// Resolve parses or geocodes place.
func (r *Resolver) Resolve(place string) (weather.Location, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return weather.Location{}, fmt.Errorf("place must not be empty")
	}

	if loc, ok := parseCoordinates(place); ok {
		return loc, nil
	}

	if r.apiKey == "" {
		return weather.Location{}, fmt.Errorf("place %q is not a coordinate pair and no geocoder API key is configured", place)
	}

	geocoder.ApiKey = r.apiKey

	address := geocoder.Address{City: place}
	if parts := strings.SplitN(place, ",", 2); len(parts) == 2 {
		address = geocoder.Address{
			City:    strings.TrimSpace(parts[0]),
			Country: strings.TrimSpace(parts[1]),
		}
	}

	location, err := geocoder.Geocoding(address)
	if err != nil {
		return weather.Location{}, fmt.Errorf("geocode %q: %w", place, err)
	}

	return weather.Location{
		Name: place,
		Lat:  location.Latitude,
		Lon:  location.Longitude,
	}, nil
}

// parseCoordinates accepts "lat,lon" with optional whitespace.
func parseCoordinates(place string) (weather.Location, bool) {
	parts := strings.Split(place, ",")
	if len(parts) != 2 {
		return weather.Location{}, false
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return weather.Location{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return weather.Location{}, false
	}

	return weather.Location{Name: place, Lat: lat, Lon: lon}, true
}
