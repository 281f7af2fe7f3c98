// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Records live in one bucket keyed by ordinal; three index buckets
// map webcast IDs, case IDs, and judge names to record ordinals. Writes are
// transactional — a crash mid-write cannot corrupt a committed dataset.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lacour/qando/internal/domain/dataset"
	"github.com/lacour/qando/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketRecords = []byte("records")
	bucketWebcast = []byte("by_webcast")
	bucketCase    = []byte("by_case")
	bucketName    = []byte("by_name")
)

var allBuckets = [][]byte{bucketRecords, bucketWebcast, bucketCase, bucketName}

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.Storage = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDataset persists the full dataset, replacing any prior one. Records
// and all three indexes are rebuilt in a single transaction.
func (s *Store) SaveDataset(records []dataset.Record) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := dropBuckets(tx); err != nil {
			return err
		}

		rb, err := tx.CreateBucket(bucketRecords)
		if err != nil {
			return err
		}
		wb, err := tx.CreateBucket(bucketWebcast)
		if err != nil {
			return err
		}
		cb, err := tx.CreateBucket(bucketCase)
		if err != nil {
			return err
		}
		nb, err := tx.CreateBucket(bucketName)
		if err != nil {
			return err
		}

		webcasts := map[string][]uint64{}
		cases := map[string][]uint64{}
		names := map[string][]uint64{}

		for i, rec := range records {
			ord := uint64(i)
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshal record %d: %w", i, err)
			}
			if err := rb.Put(ordinalKey(ord), data); err != nil {
				return err
			}
			webcasts[string(rec.WebcastID)] = append(webcasts[string(rec.WebcastID)], ord)
			cases[string(rec.CaseID)] = append(cases[string(rec.CaseID)], ord)
			names[rec.Name] = append(names[rec.Name], ord)
		}

		for b, m := range map[*bolt.Bucket]map[string][]uint64{wb: webcasts, cb: cases, nb: names} {
			if err := putIndex(b, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadDataset retrieves all records in stored order.
// Returns nil, nil if no dataset has been saved.
func (s *Store) LoadDataset() ([]dataset.Record, error) {
	var records []dataset.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(bucketRecords)
		if rb == nil {
			return nil
		}
		records = make([]dataset.Record, 0, rb.Stats().KeyN)
		return rb.ForEach(func(k, v []byte) error {
			var rec dataset.Record
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("unmarshal record %d: %w", ordinalFromKey(k), err)
			}
			records = append(records, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		return nil, nil
	}
	return records, nil
}

// Query returns the records matching the filter, in stored order. When the
// filter carries an indexed key (webcast, case, or name) only the indexed
// ordinals are read; otherwise the records bucket is scanned.
func (s *Store) Query(f ports.Filter) ([]dataset.Record, error) {
	var out []dataset.Record

	err := s.db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(bucketRecords)
		if rb == nil {
			return nil
		}

		ords, indexed, err := indexedOrdinals(tx, f)
		if err != nil {
			return err
		}

		if !indexed {
			return rb.ForEach(func(k, v []byte) error {
				return collect(v, f, &out)
			})
		}

		for _, ord := range ords {
			v := rb.Get(ordinalKey(ord))
			if v == nil {
				return fmt.Errorf("index points at missing record %d", ord)
			}
			if err := collect(v, f, &out); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count reports the number of stored records.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if rb := tx.Bucket(bucketRecords); rb != nil {
			n = rb.Stats().KeyN
		}
		return nil
	})
	return n, err
}

// Wipe removes the stored dataset and its indexes. Idempotent.
func (s *Store) Wipe() error {
	return s.db.Update(dropBuckets)
}

// indexedOrdinals resolves the most selective indexed filter key, if any.
func indexedOrdinals(tx *bolt.Tx, f ports.Filter) ([]uint64, bool, error) {
	type lookup struct {
		bucket []byte
		key    string
	}
	var l lookup
	switch {
	case f.WebcastID != "":
		l = lookup{bucketWebcast, string(f.WebcastID)}
	case f.CaseID != "":
		l = lookup{bucketCase, string(f.CaseID)}
	case f.Name != "":
		l = lookup{bucketName, f.Name}
	default:
		return nil, false, nil
	}

	b := tx.Bucket(l.bucket)
	if b == nil {
		return nil, true, nil
	}
	v := b.Get([]byte(l.key))
	if v == nil {
		return nil, true, nil
	}
	var ords []uint64
	if err := json.Unmarshal(v, &ords); err != nil {
		return nil, true, fmt.Errorf("unmarshal index entry %q: %w", l.key, err)
	}
	return ords, true, nil
}

// collect appends the decoded record to out when it matches the filter.
func collect(v []byte, f ports.Filter, out *[]dataset.Record) error {
	var rec dataset.Record
	if err := json.Unmarshal(v, &rec); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if f.Matches(rec) {
		*out = append(*out, rec)
	}
	return nil
}

// putIndex writes one index bucket's key → ordinals entries.
func putIndex(b *bolt.Bucket, m map[string][]uint64) error {
	for key, ords := range m {
		data, err := json.Marshal(ords)
		if err != nil {
			return err
		}
		if err := b.Put([]byte(key), data); err != nil {
			return err
		}
	}
	return nil
}

// dropBuckets deletes every qando bucket that exists.
func dropBuckets(tx *bolt.Tx) error {
	for _, name := range allBuckets {
		if err := tx.DeleteBucket(name); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
	}
	return nil
}
