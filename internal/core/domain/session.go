package domain

import "github.com/google/uuid"

// Session is the explicit per-user edit context passed down to the roster
// service. It replaces any ambient per-request state: everything a request
// needs travels in here.
type Session struct {
	ID uuid.UUID

	// FreeTextCelebrant drops the advisory roster constraint on the
	// celebrant selector. Configuration-scoped, not per slot.
	FreeTextCelebrant bool
}

func NewSession(freeTextCelebrant bool) Session {
	return Session{
		ID:                uuid.New(),
		FreeTextCelebrant: freeTextCelebrant,
	}
}
