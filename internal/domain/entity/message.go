package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind tags a message on the UI message stream.
type MessageKind string

const (
	MessageInitialize     MessageKind = "initialize"
	MessageProcessing     MessageKind = "processing"
	MessageLoading        MessageKind = "loading"
	MessageLoaded         MessageKind = "loaded"
	MessageError          MessageKind = "error"
	MessageSelectActivity MessageKind = "selectActivity"
	MessageLoadMapItems   MessageKind = "loadMapItems"
)

// SessionState is the UI-facing state owned by the session coordinator.
type SessionState struct {
	SearchText         string      `json:"searchText"`
	SearchLocation     *Coordinate `json:"searchLocation,omitempty"`
	Activities         []Activity  `json:"activities"`
	IsLoading          bool        `json:"isLoading"`
	IsProcessing       bool        `json:"isProcessing"`
	IsFavoritesView    bool        `json:"isFavoritesView"`
	SelectedActivityID *uuid.UUID  `json:"selectedActivityId,omitempty"`
	ErrorText          string      `json:"errorText,omitempty"`
	MapFocus           *Coordinate `json:"mapFocus,omitempty"`
}

// Clone returns a deep copy of the state.
func (s SessionState) Clone() SessionState {
	out := s
	out.Activities = make([]Activity, len(s.Activities))
	for i := range s.Activities {
		out.Activities[i] = s.Activities[i].Clone()
	}
	if s.SearchLocation != nil {
		loc := *s.SearchLocation
		out.SearchLocation = &loc
	}
	if s.SelectedActivityID != nil {
		id := *s.SelectedActivityID
		out.SelectedActivityID = &id
	}
	if s.MapFocus != nil {
		focus := *s.MapFocus
		out.MapFocus = &focus
	}

	return out
}

// Message is one entry of the ordered UI message stream.
type Message struct {
	Kind            MessageKind   `json:"kind"`
	Activities      []Activity    `json:"activities,omitempty"`
	IsFavoritesView bool          `json:"isFavoritesView,omitempty"`
	IsLoading       bool          `json:"isLoading,omitempty"`
	Text            string        `json:"text,omitempty"`
	ActivityID      *uuid.UUID    `json:"activityId,omitempty"`
	State           *SessionState `json:"state,omitempty"`
}

// FavoriteEvent is published whenever a favorite is added or removed.
type FavoriteEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	ActivityID string    `json:"activity_id"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Favorite   bool      `json:"favorite"`
	OccurredAt time.Time `json:"occurred_at"`
}
