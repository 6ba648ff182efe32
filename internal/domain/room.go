// Package domain contains entities without logic, just meta-data.
package domain

import "errors"

// RoomCode is the short human-transcribable identifier pairing a creator
// and a viewer. Always CodeLength characters over CodeAlphabet.
type RoomCode string

// Error texts are a wire contract: they travel verbatim in error frames.
var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)
