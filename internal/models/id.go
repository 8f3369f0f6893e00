// ABOUTME: Client-side id generation for all entity types.
// ABOUTME: Ids are timestamp-based strings minted on the writing device.
package models

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Int64

// NewID returns a unique record id: millisecond timestamp plus a process
// sequence so ids minted in the same millisecond stay distinct. Ids sort
// roughly by creation time, which keeps prefix lookups short.
func NewID() string {
	return fmt.Sprintf("%d-%04d", time.Now().UnixMilli(), idSeq.Add(1)%10000)
}
