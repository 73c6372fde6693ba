// ABOUTME: Random 128-bit identifiers
// ABOUTME: Thin wrapper over google/uuid for node UUID assignment

package identity

import "github.com/google/uuid"

// NewUUID returns a random version-4 UUID formatted with hyphens
func NewUUID() string {
	return uuid.NewString()
}
