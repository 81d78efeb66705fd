package kv

// Store abstracts durable key-value persistence for the conversation list.
// Implementations can be file-based, database, etc.
// Get returns found=false for a key that was never written.
// Implementations must be safe for concurrent use.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}
