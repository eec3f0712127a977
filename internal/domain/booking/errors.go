package booking

import "errors"

// ErrUnknownParticipant is returned by the store when the database rejects a booking whose
// client or staff reference no longer resolves.
var ErrUnknownParticipant = errors.New("booking references a missing user")
