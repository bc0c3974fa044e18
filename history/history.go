// Package history keeps a durable record of every method invocation so
// past runs can be inspected after the console output is gone.
package history

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"octest/jsonx"
)

var bucketInvocations = []byte("invocations")

// Entry is one recorded invocation outcome. Exactly one of Result, TxHash
// or Err is meaningful, depending on Kind and success.
type Entry struct {
	Method string   `json:"method"`
	Label  string   `json:"label"`
	Kind   string   `json:"kind"`
	Params []string `json:"params"`
	Result string   `json:"result,omitempty"`
	TxHash string   `json:"tx_hash,omitempty"`
	Err    string   `json:"error,omitempty"`
	At     int64    `json:"at"`
}

type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketInvocations)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Append records one outcome under the next sequence number.
func (s *Store) Append(e Entry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketInvocations)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		value, err := jsonx.Marshal(e)
		if err != nil {
			return err
		}
		return b.Put(key, value)
	})
}

// List returns up to limit entries, newest first. limit <= 0 means all.
func (s *Store) List(limit int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketInvocations).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(entries) >= limit {
				break
			}
			var e Entry
			if err := jsonx.Unmarshal(v, &e); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
