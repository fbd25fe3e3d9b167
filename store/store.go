package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// SchemaVersion is written alongside every payload. A persisted envelope
// carrying any other version is discarded on read and the registered
// default takes over, so reshaping a seed never gets masked by stale data.
const SchemaVersion = 2

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Store is a defaulting, versioned key-value layer. Reads and writes never
// surface errors to callers: a failed write means the value lives only in
// the session mirror, a failed or unparsable read falls back to the
// registered default.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	mirror   map[string]string
	defaults map[string]json.RawMessage
}

func New(backend Backend) *Store {
	return &Store{
		backend:  backend,
		mirror:   make(map[string]string),
		defaults: make(map[string]json.RawMessage),
	}
}

// RegisterDefault records the value Get falls back to for key. The default
// is marshaled once up front; a value that cannot marshal is a programming
// error and panics at startup rather than at request time.
func (s *Store) RegisterDefault(key string, def any) {
	data, err := json.Marshal(def)
	if err != nil {
		panic("store: unmarshalable default for key " + key + ": " + err.Error())
	}
	s.mu.Lock()
	s.defaults[key] = data
	s.mu.Unlock()
}

// Get decodes the stored value for key into out. Missing keys, backend
// failures, version mismatches and corrupt payloads all resolve to the
// registered default (or leave out untouched when no default exists).
func (s *Store) Get(key string, out any) {
	raw, err := s.backend.GetItem(key)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("store: read %q failed, using session mirror: %v", key, err)
			s.mu.RLock()
			mirrored, ok := s.mirror[key]
			s.mu.RUnlock()
			if ok {
				raw = mirrored
			}
		}
		if raw == "" {
			s.applyDefault(key, out)
			return
		}
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil || env.Version != SchemaVersion {
		if err != nil {
			log.Printf("store: corrupt payload for %q, falling back to default", key)
		} else {
			log.Printf("store: schema version %d != %d for %q, discarding", env.Version, SchemaVersion, key)
		}
		s.Remove(key)
		s.applyDefault(key, out)
		return
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("store: decode %q failed, falling back to default: %v", key, err)
		s.applyDefault(key, out)
	}
}

// Set serializes v and writes it through. A backend failure is logged and
// the value is kept in the session mirror so subsequent Gets still see it.
func (s *Store) Set(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal for %q failed, value dropped: %v", key, err)
		return
	}
	raw, err := json.Marshal(envelope{Version: SchemaVersion, Data: data})
	if err != nil {
		log.Printf("store: envelope marshal for %q failed: %v", key, err)
		return
	}

	s.mu.Lock()
	s.mirror[key] = string(raw)
	s.mu.Unlock()

	if err := s.backend.SetItem(key, string(raw)); err != nil {
		log.Printf("store: write %q failed, value held in memory only: %v", key, err)
	}
}

// Remove deletes key from the backend and the mirror.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	delete(s.mirror, key)
	s.mu.Unlock()
	if err := s.backend.RemoveItem(key); err != nil {
		log.Printf("store: remove %q failed: %v", key, err)
	}
}

func (s *Store) applyDefault(key string, out any) {
	s.mu.RLock()
	def, ok := s.defaults[key]
	s.mu.RUnlock()
	if !ok {
		return
	}
	if err := json.Unmarshal(def, out); err != nil {
		log.Printf("store: default decode for %q failed: %v", key, err)
	}
}

func contextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
