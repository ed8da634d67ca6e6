package entity

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 position.
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// Point converts the coordinate into an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", c.Latitude, c.Longitude)
}

// Placemark is the place name a coordinate resolves to.
type Placemark struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// LocationUpdate is a raw event from the platform location feed. The facets
// are not mutually exclusive; classification picks the first match in a
// fixed priority order.
type LocationUpdate struct {
	Location *Coordinate `json:"location,omitempty"`

	AccuracyLimited                bool `json:"accuracyLimited"`
	AuthorizationDenied            bool `json:"authorizationDenied"`
	AuthorizationDeniedGlobally    bool `json:"authorizationDeniedGlobally"`
	AuthorizationRequestInProgress bool `json:"authorizationRequestInProgress"`
	AuthorizationRestricted        bool `json:"authorizationRestricted"`
	InsufficientlyInUse            bool `json:"insufficientlyInUse"`
	LocationUnavailable            bool `json:"locationUnavailable"`
	ServiceSessionRequired         bool `json:"serviceSessionRequired"`
	Stationary                     bool `json:"stationary"`
}

// LocationEventKind tags a classified location update.
type LocationEventKind string

const (
	LocationEventLocation LocationEventKind = "location"
	LocationEventInfo     LocationEventKind = "info"
	LocationEventError    LocationEventKind = "error"
)

// LocationInfoKind is an advisory, non-terminal location condition.
type LocationInfoKind string

const (
	LocationInfoAccuracyLimited                LocationInfoKind = "accuracyLimited"
	LocationInfoAuthorizationRequestInProgress LocationInfoKind = "authorizationRequestInProgress"
	LocationInfoInsufficientlyInUse            LocationInfoKind = "insufficientlyInUse"
	LocationInfoServiceSessionRequired         LocationInfoKind = "serviceSessionRequired"
	LocationInfoStationary                     LocationInfoKind = "stationary"
)

// LocationErrorKind is a condition that terminates the location feed.
type LocationErrorKind string

const (
	LocationErrorAuthorizationDenied         LocationErrorKind = "authorizationDenied"
	LocationErrorAuthorizationDeniedGlobally LocationErrorKind = "authorizationDeniedGlobally"
	LocationErrorAuthorizationRestricted     LocationErrorKind = "authorizationRestricted"
	LocationErrorLocationUnavailable         LocationErrorKind = "locationUnavailable"
)

// Message returns the user-facing text for the error kind.
func (k LocationErrorKind) Message() string {
	switch k {
	case LocationErrorAuthorizationDenied:
		return "Location access was denied for this app."
	case LocationErrorAuthorizationDeniedGlobally:
		return "Location services are turned off for this device."
	case LocationErrorAuthorizationRestricted:
		return "Location access is restricted on this device."
	case LocationErrorLocationUnavailable:
		return "Your current location is unavailable."
	default:
		return "Unable to determine your location."
	}
}

// LocationEvent is a classified update emitted by the location feed.
// Exactly one of Location, Info or Error is meaningful, selected by Kind.
type LocationEvent struct {
	Kind     LocationEventKind
	Location Coordinate
	Info     LocationInfoKind
	Error    LocationErrorKind
}

func (e LocationEvent) String() string {
	switch e.Kind {
	case LocationEventLocation:
		return "Location" + e.Location.String()
	case LocationEventInfo:
		return "Info(" + string(e.Info) + ")"
	case LocationEventError:
		return "Error(" + string(e.Error) + ")"
	default:
		return "Unknown"
	}
}

// NewLocationEvent builds a Location event.
func NewLocationEvent(c Coordinate) LocationEvent {
	return LocationEvent{Kind: LocationEventLocation, Location: c}
}

// NewLocationInfo builds an Info event.
func NewLocationInfo(kind LocationInfoKind) LocationEvent {
	return LocationEvent{Kind: LocationEventInfo, Info: kind}
}

// NewLocationError builds an Error event.
func NewLocationError(kind LocationErrorKind) LocationEvent {
	return LocationEvent{Kind: LocationEventError, Error: kind}
}
