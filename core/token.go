package core

import "github.com/google/uuid"

// NewClientRequestToken returns a fresh idempotency token for create and
// send operations.
func NewClientRequestToken() string {
	return uuid.NewString()
}
