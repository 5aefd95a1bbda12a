package storage

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"embedpanel/utils"
)

// Collection names. Per-user partitions append "_<username>" to the base
// name; Key builds the full storage key.
const (
	ColUsers         = "users"
	ColTokenLogs     = "tokenLogs"
	ColMessageLogs   = "messageLogs"
	ColPurchaseLogs  = "purchaseLogs"
	ColEmbedFormData = "embedFormData"
)

// Store is the record store every component persists through. It never
// surfaces malformed stored data: parse failures degrade to empty results so
// callers always get a well-typed value.
type Store struct {
	kv KV
}

// New creates a store over the given KV.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Key returns the storage key for a collection, optionally scoped to a user.
func Key(collection, scope string) string {
	if scope == "" {
		return collection
	}
	return collection + "_" + scope
}

// Timestamped is implemented by log entries so cross-partition scans can be
// ordered newest first.
type Timestamped interface {
	When() string
}

// Read returns the stored sequence for collection[_scope]. A missing key or
// unparseable value yields an empty slice, never an error.
func Read[T any](s *Store, collection, scope string) []T {
	raw, ok, err := s.kv.Get(Key(collection, scope))
	if err != nil || !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		utils.Log.Debug("Discarding unparseable collection %s: %v", Key(collection, scope), err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Write serializes items and overwrites collection[_scope].
func Write[T any](s *Store, collection, scope string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(Key(collection, scope), raw)
}

// Append adds item to the end of collection[_scope]. Read-modify-write: two
// processes appending to the same key concurrently can lose an update. The
// panel runs single-process, so this matches the store's discipline of
// "read full collection, mutate, write back".
func Append[T any](s *Store, collection, scope string, item T) error {
	items := Read[T](s, collection, scope)
	items = append(items, item)
	return Write(s, collection, scope, items)
}

// ReadAll scans every key starting with prefix, concatenates the parsed
// sequences and returns them sorted by descending timestamp. Keys that fail
// to parse are skipped. Only admin-wide views use this.
func ReadAll[T Timestamped](s *Store, prefix string) []T {
	keys, err := s.kv.Keys()
	if err != nil {
		return []T{}
	}

	all := []T{}
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		raw, ok, err := s.kv.Get(k)
		if err != nil || !ok {
			continue
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		all = append(all, items...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return parseWhen(all[i].When()).After(parseWhen(all[j].When()))
	})
	return all
}

// ClearPrefix deletes every key starting with prefix. Used by the admin
// bulk-clear controls.
func (s *Store) ClearPrefix(prefix string) error {
	keys, err := s.kv.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if err := s.kv.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func parseWhen(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}
	}
	return t
}
