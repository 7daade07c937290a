package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.etcd.io/bbolt"

	"github.com/StarkeWang/test-time-calc/internal/domain"
)

const bucketName = "runs"

// BoltDBStore implements RunStore using BoltDB.
type BoltDBStore struct {
	db *bbolt.DB
}

// NewBoltDBStore opens (or creates) the run history database.
func NewBoltDBStore(dbPath string) (*BoltDBStore, error) {
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		// A lock timeout means another process still holds the file.
		return nil, fmt.Errorf("failed to open history db (file may be locked by another process): %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltDBStore{db: db}, nil
}

// Append stores a run summary keyed by timestamp and run ID, so keys sort
// chronologically under Bolt's byte ordering.
func (s *BoltDBStore) Append(ctx context.Context, summary *domain.RunSummary) error {
	val, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode run summary: %w", err)
	}

	key := fmt.Sprintf("%s:%s", summary.Timestamp.Format(time.RFC3339), summary.RunID)

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket not found")
		}
		return b.Put([]byte(key), val)
	})
	if err != nil {
		return fmt.Errorf("failed to store run summary: %w", err)
	}

	log.Debug().
		Str("run_id", summary.RunID).
		Msg("Run appended to history")

	return nil
}

// List returns all stored runs in key (chronological) order.
func (s *BoltDBStore) List(ctx context.Context) ([]domain.RunSummary, error) {
	var runs []domain.RunSummary

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return fmt.Errorf("bucket not found")
		}

		return b.ForEach(func(k, v []byte) error {
			var summary domain.RunSummary
			if err := json.Unmarshal(v, &summary); err != nil {
				log.Warn().Err(err).Str("key", string(k)).Msg("Skipping undecodable history entry")
				return nil
			}
			runs = append(runs, summary)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// Close closes the BoltDB database.
func (s *BoltDBStore) Close() error {
	return s.db.Close()
}
