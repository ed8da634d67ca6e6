// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	"github.com/google/uuid"
)

// activityNamespace scopes the name-based activity identifiers.
var activityNamespace = uuid.MustParse("6f1c1f8e-2d0b-4a51-9a57-2b0a3d6f4c11")

// Activity is a fully-resolved "thing to do" near a searched location.
// Name, Category and Description are stored lower-cased so icon matching
// and persistence are case-insensitive.
type Activity struct {
	ID                   uuid.UUID `json:"id"`                   // Stable identifier derived from name and address.
	Name                 string    `json:"name"`                 // Lower-cased display name.
	Address              string    `json:"address"`              // Street address as reported by the model.
	City                 string    `json:"city"`                 // City the activity is located in.
	State                string    `json:"state"`                // State or region the activity is located in.
	Category             string    `json:"category"`             // Lower-cased category, e.g. "museum".
	Rating               float64   `json:"rating"`               // 0.0 to 5.0.
	ReviewCount          int       `json:"reviewCount"`          // Never negative.
	Distance             float64   `json:"distance"`             // Miles from the anchor location.
	PhoneNumber          string    `json:"phoneNumber"`          // Free-form phone number.
	Description          string    `json:"description"`          // Lower-cased description.
	SomethingInteresting string    `json:"somethingInteresting"` // A fun fact about the place.
	Icons                []string  `json:"icons"`                // At least one icon name once enriched.
	IsFavorite           bool      `json:"isFavorite"`           // Set when the activity is persisted as a favorite.
	Latitude             *float64  `json:"latitude,omitempty"`   // Absent until geocoded or loaded from storage.
	Longitude            *float64  `json:"longitude,omitempty"`  // Absent until geocoded or loaded from storage.
}

// FullAddress joins the street address, city and state into a single
// geocodable string.
func (a *Activity) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{a.Address, a.City, a.State} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return strings.Join(parts, ", ")
}

// Coordinate returns the activity position if it has been resolved.
func (a *Activity) Coordinate() (Coordinate, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return Coordinate{}, false
	}

	return Coordinate{Latitude: *a.Latitude, Longitude: *a.Longitude}, true
}

// SetCoordinate stores a resolved position on the activity.
func (a *Activity) SetCoordinate(c Coordinate) {
	lat, lng := c.Latitude, c.Longitude
	a.Latitude = &lat
	a.Longitude = &lng
}

// Clone returns a deep copy so snapshots handed to consumers never alias
// coordinator-owned state.
func (a Activity) Clone() Activity {
	out := a
	if a.Icons != nil {
		out.Icons = append([]string(nil), a.Icons...)
	}
	if a.Latitude != nil {
		lat := *a.Latitude
		out.Latitude = &lat
	}
	if a.Longitude != nil {
		lng := *a.Longitude
		out.Longitude = &lng
	}

	return out
}

// ActivityID derives the identifier for an activity from its name and address.
// The same place keeps the same id across streamed snapshots and searches.
func ActivityID(name, address string) uuid.UUID {
	key := strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(address))

	return uuid.NewSHA1(activityNamespace, []byte(key))
}

// PartialActivity is a still-streaming snapshot of a generated activity.
// Every field is optional; absent fields decode as nil.
type PartialActivity struct {
	Name                 *string  `json:"name,omitempty"`
	Address              *string  `json:"address,omitempty"`
	City                 *string  `json:"city,omitempty"`
	State                *string  `json:"state,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	ReviewCount          *int     `json:"reviewCount,omitempty"`
	Distance             *float64 `json:"distance,omitempty"`
	PhoneNumber          *string  `json:"phoneNumber,omitempty"`
	Description          *string  `json:"description,omitempty"`
	SomethingInteresting *string  `json:"somethingInteresting,omitempty"`
}

// Bounds of the rating scale.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// ToActivity promotes the partial record once every field is present.
// A record missing even one field is rejected; it may arrive complete in
// a later snapshot. Rating and review count are clamped into range.
func (p *PartialActivity) ToActivity() (Activity, bool) {
	if p == nil ||
		p.Name == nil ||
		p.Address == nil ||
		p.City == nil ||
		p.State == nil ||
		p.Category == nil ||
		p.Rating == nil ||
		p.ReviewCount == nil ||
		p.Distance == nil ||
		p.PhoneNumber == nil ||
		p.Description == nil ||
		p.SomethingInteresting == nil {
		return Activity{}, false
	}

	name := strings.ToLower(*p.Name)

	return Activity{
		ID:                   ActivityID(name, *p.Address),
		Name:                 name,
		Address:              *p.Address,
		City:                 *p.City,
		State:                *p.State,
		Category:             strings.ToLower(*p.Category),
		Rating:               min(max(*p.Rating, MinRating), MaxRating),
		ReviewCount:          max(*p.ReviewCount, 0),
		Distance:             *p.Distance,
		PhoneNumber:          *p.PhoneNumber,
		Description:          strings.ToLower(*p.Description),
		SomethingInteresting: *p.SomethingInteresting,
	}, true
}

// CompleteActivities converts a snapshot into the fully-resolved records it
// currently contains, preserving order and dropping duplicates by id.
func CompleteActivities(snapshot []PartialActivity) []Activity {
	activities := make([]Activity, 0, len(snapshot))
	seen := make(map[uuid.UUID]struct{}, len(snapshot))

	for i := range snapshot {
		activity, ok := snapshot[i].ToActivity()
		if !ok {
			continue
		}
		if _, dup := seen[activity.ID]; dup {
			continue
		}
		seen[activity.ID] = struct{}{}
		activities = append(activities, activity)
	}

	return activities
}
