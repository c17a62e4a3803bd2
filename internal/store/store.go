// Package store defines the document-store port the handlers write through,
// plus a SQLite adapter for real use and an in-memory one for development
// and tests. Records are stored as JSON documents under a partition/sort key,
// mirroring the collections laid out in the data model: users, profiles and
// plans keyed by user_id alone, progress keyed by (user_id, progress_id).
package store

import (
	"encoding/json"
	"errors"
)

// ErrNotFound reports a missing record. Handlers translate it to a 404.
var ErrNotFound = errors.New("record not found")

// Logical collection names.
const (
	Users    = "users"
	Profiles = "profiles"
	Plans    = "plans"
	Progress = "progress"
)

// Key identifies a record. Partition is the owning user_id; Sort
// distinguishes entries within a partition and stays empty for collections
// holding one record per user.
type Key struct {
	Partition string
	Sort      string
}

// Store is the port every adapter implements. Put is a full-document upsert,
// Delete is idempotent, and Query must be served from the partition key, not
// a collection scan.
type Store interface {
	Put(collection string, key Key, doc any) error
	Get(collection string, key Key, out any) error
	Delete(collection string, key Key) error
	Query(collection, partition string) ([]json.RawMessage, error)
	Close() error
}
