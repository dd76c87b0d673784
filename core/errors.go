package core

import "errors"

var (
	// ErrExhausted is returned when a pool has no free slot
	// Callers treat spawns as best-effort and drop the request
	ErrExhausted = errors.New("pool exhausted")

	// ErrInvalidConfiguration rejects a session before it starts
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNumericAnomaly marks an entity whose transform became non-finite
	ErrNumericAnomaly = errors.New("numeric anomaly")

	// ErrStaleHandle is returned for a handle whose slot was released
	ErrStaleHandle = errors.New("stale handle")

	// ErrTickInProgress is returned when Tick is entered re-entrantly
	ErrTickInProgress = errors.New("tick already in progress")

	// ErrUnknownWeapon rejects an equip command naming no configured weapon
	ErrUnknownWeapon = errors.New("unknown weapon")
)
