// Package boltdb persists assistant domain records in a single BoltDB file.
// Keys are prefixed with the owning user's ID so every read is structurally
// scoped to one user.
package boltdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"
)

var (
	bucketChatStore     = []byte("chat_messages")
	bucketMealStore     = []byte("meals")
	bucketWorkoutStore  = []byte("workouts")
	bucketWaterStore    = []byte("water_entries")
	bucketWeightStore   = []byte("weight_entries")
	bucketProfileStore  = []byte("profiles")
	bucketFavoriteStore = []byte("favorite_foods")
	bucketVisionStore   = []byte("vision_analyses")
)

// DB wraps a BoltDB instance and manages its lifecycle.
type DB struct {
	db *bolt.DB
}

func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		buckets := [][]byte{
			bucketChatStore, bucketMealStore, bucketWorkoutStore,
			bucketWaterStore, bucketWeightStore, bucketProfileStore,
			bucketFavoriteStore, bucketVisionStore,
		}
		for _, b := range buckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %q: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create buckets: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the underlying BoltDB instance.
func (d *DB) Close() error {
	return d.db.Close()
}

// Bolt returns the underlying BoltDB instance.
func (d *DB) Bolt() *bolt.DB {
	return d.db
}

// userKey builds the per-user key "userID/id".
func userKey(userID, id string) []byte {
	return []byte(userID + "/" + id)
}

// userPrefix is the cursor prefix covering all of a user's records.
func userPrefix(userID string) []byte {
	return []byte(userID + "/")
}
