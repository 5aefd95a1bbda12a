package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var collectionsBucket = []byte("Collections")

// BoltKV stores collections in a single bbolt bucket, one key per logical
// collection.
type BoltKV struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) the panel database inside dataDir.
func OpenBolt(dataDir string) (*BoltKV, error) {
	dbPath := filepath.Join(dataDir, "embedpanel.db")

	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %v", err)
	}

	return &BoltKV{db: db}, nil
}

// Close closes the underlying database.
func (b *BoltKV) Close() error {
	return b.db.Close()
}

func (b *BoltKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	var found bool
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(collectionsBucket).Get([]byte(key))
		if v != nil {
			found = true
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

func (b *BoltKV) Set(key string, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(key), value)
	})
}

func (b *BoltKV) Delete(key string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(collectionsBucket).Delete([]byte(key))
	})
}

func (b *BoltKV) Keys() ([]string, error) {
	var keys []string
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(collectionsBucket).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
