package model

import "time"

// HallLock is an advisory lock serializing admission-affecting writes
// (create, approve, reject) per hall. The _id is derived from the hall id,
// so a duplicate-key insert means the lock is held. A TTL index on
// expires_at reclaims locks abandoned by crashed processes.
type HallLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
