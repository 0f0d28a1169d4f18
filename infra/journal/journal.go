// Package journal persists fill events that are owed to downstream
// consumers. It backs the at-least-once egress path: the service appends a
// record per published match, the broadcaster replays pending records to
// Kafka and advances their state. Book state is never reconstructed from
// the journal; it exists purely so an acknowledged fill is never re-sent
// and an unacknowledged one is never lost.
package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const headerSize = 1 + 4 + 8

// binary encoding: [state:1][retries:4][lastAttempt:8][payload...]
func encodeRecord(r *Record) []byte {
	buf := make([]byte, headerSize+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[headerSize:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (*Record, error) {
	if len(b) < headerSize {
		return nil, errors.New("journal: record too short")
	}
	payload := make([]byte, len(b)-headerSize)
	copy(payload, b[headerSize:])
	return &Record{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

func key(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

// -------------------- Journal --------------------

type Journal struct {
	db *pebble.DB
}

func Open(dir string) (*Journal, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("journal: open %s: %w", dir, err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records a new pending fill payload under seq.
func (j *Journal) Append(seq uint64, payload []byte) error {
	rec := &Record{Seq: seq, State: StateNew, Payload: payload}
	return j.db.Set(key(seq), encodeRecord(rec), pebble.Sync)
}

// ScanPending visits every record not yet acked, in seq order. The visit
// callback may mutate state through MarkSent/MarkAcked; iteration reads a
// point-in-time snapshot.
func (j *Journal) ScanPending(fn func(*Record) error) error {
	iter, err := j.db.NewIter(nil)
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq := binary.BigEndian.Uint64(iter.Key())
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// MarkSent transitions seq to SENT and bumps its attempt bookkeeping.
// Idempotent: re-marking a sent record only updates the attempt fields.
func (j *Journal) MarkSent(seq uint64) error {
	return j.transition(seq, StateSent)
}

// MarkAcked transitions seq to ACKED. Acked records are skipped by
// ScanPending and removed by Compact.
func (j *Journal) MarkAcked(seq uint64) error {
	return j.transition(seq, StateAcked)
}

func (j *Journal) transition(seq uint64, to State) error {
	k := key(seq)
	v, closer, err := j.db.Get(k)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return fmt.Errorf("journal: seq %d not found", seq)
		}
		return err
	}
	rec, err := decodeRecord(seq, v)
	closer.Close()
	if err != nil {
		return err
	}

	rec.State = to
	if to == StateSent {
		rec.Retries++
		rec.LastAttempt = time.Now().UnixNano()
	}
	return j.db.Set(k, encodeRecord(rec), pebble.Sync)
}

// Compact deletes acked records and returns how many were removed.
func (j *Journal) Compact() (int, error) {
	iter, err := j.db.NewIter(nil)
	if err != nil {
		return 0, err
	}

	var acked [][]byte
	for iter.First(); iter.Valid(); iter.Next() {
		if len(iter.Value()) >= 1 && State(iter.Value()[0]) == StateAcked {
			k := make([]byte, len(iter.Key()))
			copy(k, iter.Key())
			acked = append(acked, k)
		}
	}
	if err := iter.Close(); err != nil {
		return 0, err
	}

	for i, k := range acked {
		if err := j.db.Delete(k, pebble.NoSync); err != nil {
			return i, err
		}
	}
	return len(acked), nil
}
