package util

import (
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// NewUUID returns a random UUID in base58. The device sends one as BOOT_ID so
// the server can tell reboots of the same unit apart.
func NewUUID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}
