// internal/store/store.go
package store

import (
	"encoding/json"
	"log"
)

// Store is a scoped key/value session store. Values are opaque bytes; callers
// own serialization. Writes are last-write-wins in program order.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string)
}

// GetJSON decodes the value stored at key into out. A missing key and a value
// that does not deserialize are both treated as absent, so callers fall back
// to their defaults instead of failing.
func GetJSON(s Store, key string, out any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Println("⚠️ discarding corrupt value for key", key+":", err)
		return false
	}
	return true
}

// SetJSON marshals value and stores it at key.
func SetJSON(s Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}
