package journal

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/dreamware/brigade/internal/restaurant"
)

// ErrRunNotFound is returned when reading back a run id the journal does
// not contain.
var ErrRunNotFound = errors.New("journal: run not found")

// runsBucket holds one nested bucket per run, keyed by run id.
var runsBucket = []byte("runs")

// BoltSink is a durable journal backed by a bbolt database. Each run gets
// its own nested bucket keyed by a fresh UUID; within a run, snapshots are
// keyed by their big-endian sequence number so a cursor walks them in
// protocol order.
type BoltSink struct {
	db    *bolt.DB
	runID string
}

// OpenBolt opens (creating if needed) the journal database at path and
// starts a new run in it.
func OpenBolt(path string) (*BoltSink, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", path, err)
	}
	s := &BoltSink{db: db, runID: uuid.NewString()}
	err = db.Update(func(tx *bolt.Tx) error {
		runs, err := tx.CreateBucketIfNotExists(runsBucket)
		if err != nil {
			return err
		}
		_, err = runs.CreateBucketIfNotExists([]byte(s.runID))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: create run bucket: %w", err)
	}
	return s, nil
}

// RunID returns the identifier of the run this sink appends to.
func (s *BoltSink) RunID() string { return s.runID }

// Append implements restaurant.Journal. Each snapshot is written in its
// own transaction; bbolt fsyncs on commit, so a snapshot that Append
// accepted survives a crash.
func (s *BoltSink) Append(snap restaurant.Snapshot) error {
	buf, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("journal: encode snapshot %d: %w", snap.Seq, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		run := tx.Bucket(runsBucket).Bucket([]byte(s.runID))
		if run == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, s.runID)
		}
		return run.Put(seqKey(snap.Seq), buf)
	})
}

// Snapshots reads back every snapshot of the given run in sequence order.
func (s *BoltSink) Snapshots(runID string) ([]restaurant.Snapshot, error) {
	var out []restaurant.Snapshot
	err := s.db.View(func(tx *bolt.Tx) error {
		runs := tx.Bucket(runsBucket)
		if runs == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		run := runs.Bucket([]byte(runID))
		if run == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return run.ForEach(func(_, v []byte) error {
			var snap restaurant.Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return fmt.Errorf("journal: decode snapshot: %w", err)
			}
			out = append(out, snap)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Runs lists the run ids present in the database.
func (s *BoltSink) Runs() ([]string, error) {
	var out []string
	err := s.db.View(func(tx *bolt.Tx) error {
		runs := tx.Bucket(runsBucket)
		if runs == nil {
			return nil
		}
		return runs.ForEachBucket(func(k []byte) error {
			out = append(out, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Close closes the underlying database.
func (s *BoltSink) Close() error {
	return s.db.Close()
}

// seqKey encodes a sequence number so lexicographic key order matches
// numeric order.
func seqKey(seq uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], seq)
	return k[:]
}
