package store

import (
	"bytes"
	"sync"
)

// Memory is an in-process blob store, safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// WriteBlob stores a copy of payload under key. Last write wins.
func (s *Memory) WriteBlob(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = bytes.Clone(payload)
	return nil
}

// ReadBlob returns a copy of the blob stored under key.
func (s *Memory) ReadBlob(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.blobs[key]
	if !ok {
		return nil, &Error{Op: "read", Key: key, Kind: KindNotFound}
	}
	return bytes.Clone(payload), nil
}
