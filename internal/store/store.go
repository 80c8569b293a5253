// Package store persists scoreboard state as three independently keyed string slots.
//
// Backends only need to implement Adapter; the slot codec in this package handles
// encoding, decoding and migration of older persisted shapes.
package store

import (
	"context"
	"errors"
)

// ErrClosed is returned by a database backend used after Close or without a handle.
// MemoryStore never returns it.
var ErrClosed = errors.New("store: closed")

// Adapter is a key/value backend for raw slot strings.
type Adapter interface {
	// Load returns the stored value for key. ok is false when nothing is stored.
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	// Save overwrites the value stored for key.
	Save(ctx context.Context, key, value string) error
}

// Slot names one persisted piece of game state.
type Slot string

const (
	SlotPlayers  Slot = "players"
	SlotRound    Slot = "round"
	SlotLanguage Slot = "language"
)

// DefaultKeyPrefix namespaces every slot key.
const DefaultKeyPrefix = "carioca-"

// Key returns the storage identifier for slot under prefix.
func Key(prefix string, slot Slot) string {
	return prefix + string(slot)
}
