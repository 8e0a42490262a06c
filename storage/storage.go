// storage/storage.go
package storage

// Backend is the durable key-value facility the journal persists into. Both
// implementations (SQLite and JSON files) satisfy the same contract: Get
// reports found=false for a missing key rather than an error, and Put
// overwrites unconditionally.
type Backend interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}
