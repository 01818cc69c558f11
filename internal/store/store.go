/*
This file is part of the AtomBPMN (R) project.
Copyright (c) 2025 Matreska Market LLC (ООО «Matreska Market»).
Authors: Matreska Team.

This project is dual-licensed under AGPL-3.0 and AtomBPMN Commercial License.
*/

// Package store persists editing-session snapshots (spec.md §6.6's "resume
// an existing session") in an embedded BadgerDB, the way the teacher's own
// runtime persists process state (src/storage/storage_badger.go).
package store

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/darosuardiaz/bpmn-generator/internal/bpmn/model"
	"github.com/darosuardiaz/bpmn-generator/internal/core/coreerr"
	"github.com/darosuardiaz/bpmn-generator/internal/core/logger"
)

var log = logger.Global().With("store")

// Snapshot is one session's persisted state: the current process plus
// bookkeeping the REST/gRPC transports need to resume a conversation.
type Snapshot struct {
	SessionID string        `json:"session_id"`
	Process   model.Process `json:"process"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Store is the session-snapshot store. It wraps a single BadgerDB handle
// the way BadgerStorage wrapped one in the teacher (src/storage/storage_badger.go),
// trimmed to the one knob this domain needs: the on-disk directory.
type Store struct {
	db *badger.DB
}

// Open initializes a BadgerDB at dir. Badger's own logger is silenced in
// favor of the engine's structured logger, matching the teacher's
// `opts.Logger = nil`.
func Open(dir string) (*Store, error) {
	log.Info("opening session store", logger.String("dir", dir))

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, coreerr.Wrap(coreerr.KindTransport, "open session store", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying BadgerDB handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists process as sessionID's current snapshot, overwriting any
// prior snapshot for that session.
func (s *Store) Save(sessionID string, process model.Process) error {
	snap := Snapshot{SessionID: sessionID, Process: process, UpdatedAt: time.Now()}

	data, err := json.Marshal(snap)
	if err != nil {
		return coreerr.Wrap(coreerr.KindTransport, "marshal session snapshot", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(sessionID), data)
	})
	if err != nil {
		return coreerr.Wrap(coreerr.KindTransport, "save session snapshot", err)
	}
	return nil
}

// Load retrieves sessionID's most recently saved snapshot. It returns a
// coreerr.KindLookup error if no snapshot exists for that ID.
func (s *Store) Load(sessionID string) (Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(sessionID))
		if err == badger.ErrKeyNotFound {
			return coreerr.Lookup("no session snapshot for %q", sessionID)
		}
		if err != nil {
			return coreerr.Wrap(coreerr.KindTransport, "load session snapshot", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Delete removes sessionID's snapshot, if any. Deleting an absent session
// is not an error.
func (s *Store) Delete(sessionID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(sessionID))
	})
	if err != nil {
		return coreerr.Wrap(coreerr.KindTransport, "delete session snapshot", err)
	}
	return nil
}

func sessionKey(sessionID string) []byte {
	return []byte("session:" + sessionID)
}
