package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.etcd.io/bbolt"
	"rfind/internal/domain"
)

// CurrentSchemaVersion is the storage format version written by this build.
const CurrentSchemaVersion = 1

var (
	bucketSearches   = []byte("searches")
	bucketMeta       = []byte("meta")
	keySchemaVersion = []byte("schema_version")
)

// ErrNotFound is returned when a saved search doesn't exist.
var ErrNotFound = errors.New("saved search not found")

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSearches, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return checkSchema(tx.Bucket(bucketMeta))
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func checkSchema(b *bbolt.Bucket) error {
	data := b.Get(keySchemaVersion)
	if data == nil {
		v, _ := json.Marshal(CurrentSchemaVersion)
		return b.Put(keySchemaVersion, v)
	}
	var version int
	if err := json.Unmarshal(data, &version); err != nil {
		return fmt.Errorf("corrupt schema version: %w", err)
	}
	if version > CurrentSchemaVersion {
		return fmt.Errorf("store schema version %d is newer than supported version %d", version, CurrentSchemaVersion)
	}
	return nil
}

type searchMeta struct {
	Dirs      []string `json:"dirs"`
	Patterns  []string `json:"patterns"`
	MinSize   uint64   `json:"min_size"`
	CreatedAt int64    `json:"created_at"`
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("search name must not be empty")
	}
	return nil
}

func (s *BoltStore) PutSearch(search domain.SavedSearch) error {
	if err := validateName(search.Name); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		meta := searchMeta{
			Dirs:      search.Dirs,
			Patterns:  search.Patterns,
			MinSize:   search.MinSize,
			CreatedAt: search.CreatedAt.Unix(),
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketSearches).Put([]byte(search.Name), data)
	})
}

func (s *BoltStore) GetSearch(name string) (domain.SavedSearch, error) {
	var search domain.SavedSearch
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSearches).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		var err error
		search, err = decodeSearch(name, data)
		return err
	})
	return search, err
}

func (s *BoltStore) DeleteSearch(name string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSearches)
		if b.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return b.Delete([]byte(name))
	})
}

// ListSearches returns all saved searches ordered by name.
func (s *BoltStore) ListSearches() ([]domain.SavedSearch, error) {
	var searches []domain.SavedSearch
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSearches).ForEach(func(k, v []byte) error {
			search, err := decodeSearch(string(k), v)
			if err != nil {
				return err
			}
			searches = append(searches, search)
			return nil
		})
	})
	sort.Slice(searches, func(i, j int) bool { return searches[i].Name < searches[j].Name })
	return searches, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func decodeSearch(name string, data []byte) (domain.SavedSearch, error) {
	var meta searchMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.SavedSearch{}, fmt.Errorf("failed to decode search %s: %w", name, err)
	}
	return domain.SavedSearch{
		Name:      name,
		Dirs:      meta.Dirs,
		Patterns:  meta.Patterns,
		MinSize:   meta.MinSize,
		CreatedAt: time.Unix(meta.CreatedAt, 0),
	}, nil
}
