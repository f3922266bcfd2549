package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/streamvault/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketCatalog = []byte("catalog")
	bucketMeta    = []byte("meta")
)

// Keys within bucketCatalog, one per table
const (
	keyTitles   = "titles"
	keyFeatured = "featured"
	keyShelves  = "shelves"
	keyAds      = "ads"
	keyPlans    = "plans"
	keyOffers   = "offers"

	keySeededAt = "seeded_at"
)

// CatalogStore implements domain.CatalogStore using BoltDB.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of encoded tables (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens (or creates) the snapshot at path.
// An empty path gives a memory-only store that starts unseeded.
func NewCatalogStore(path string) (*CatalogStore, error) {
	if path == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCatalog, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *CatalogStore) get(bucket []byte, key string, dest interface{}) (bool, error) {
	cacheKey := string(bucket) + ":" + key

	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return true, json.Unmarshal(data, dest)
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return true, json.Unmarshal(data, dest)
}

// putAll writes every entry in one transaction so a snapshot is never half-seeded
func (s *CatalogStore) putAll(bucket []byte, entries map[string]interface{}) error {
	encoded := make(map[string][]byte, len(entries))
	for key, value := range entries {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = data
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucket)
			for key, data := range encoded {
				if err := b.Put([]byte(key), data); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	for key, data := range encoded {
		s.cache[string(bucket)+":"+key] = data
	}
	s.mu.Unlock()

	return nil
}

// === Catalog snapshot ===

// SaveCatalog replaces the stored snapshot with data
func (s *CatalogStore) SaveCatalog(data domain.CatalogData) error {
	if len(data.Titles) == 0 {
		return domain.ErrCatalogEmpty
	}

	entries := map[string]interface{}{
		keyTitles:   data.Titles,
		keyFeatured: data.Featured,
		keyShelves:  data.Shelves,
		keyAds:      data.Ads,
		keyPlans:    data.Plans,
		keyOffers:   data.PlanOffers,
	}
	if err := s.putAll(bucketCatalog, entries); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return s.putAll(bucketMeta, map[string]interface{}{keySeededAt: time.Now().Unix()})
}

// LoadCatalog reads the snapshot. ok is false when the store was never seeded.
func (s *CatalogStore) LoadCatalog() (domain.CatalogData, bool, error) {
	var data domain.CatalogData

	ok, err := s.get(bucketCatalog, keyTitles, &data.Titles)
	if err != nil {
		return domain.CatalogData{}, false, fmt.Errorf("decode titles: %w", err)
	}
	if !ok {
		return domain.CatalogData{}, false, nil
	}

	tables := []struct {
		key  string
		dest interface{}
	}{
		{keyFeatured, &data.Featured},
		{keyShelves, &data.Shelves},
		{keyAds, &data.Ads},
		{keyPlans, &data.Plans},
		{keyOffers, &data.PlanOffers},
	}
	for _, table := range tables {
		if _, err := s.get(bucketCatalog, table.key, table.dest); err != nil {
			return domain.CatalogData{}, false, fmt.Errorf("decode %s: %w", table.key, err)
		}
	}

	return data, true, nil
}

// SeededAt returns when the snapshot was last written (zero if never)
func (s *CatalogStore) SeededAt() time.Time {
	var ts int64
	if ok, err := s.get(bucketMeta, keySeededAt, &ts); !ok || err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}
