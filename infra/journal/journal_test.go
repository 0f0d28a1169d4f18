package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })
	return j
}

func TestAppendAndScan(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, j.Append(1, []byte("first")))
	require.NoError(t, j.Append(2, []byte("second")))
	require.NoError(t, j.Append(3, []byte("third")))

	var seen []uint64
	err := j.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		assert.Equal(t, StateNew, rec.State)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, seen)
}

func TestStateTransitions(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, j.Append(7, []byte("payload")))
	require.NoError(t, j.MarkSent(7))

	err := j.ScanPending(func(rec *Record) error {
		assert.Equal(t, StateSent, rec.State)
		assert.Equal(t, uint32(1), rec.Retries)
		assert.NotZero(t, rec.LastAttempt)
		assert.Equal(t, []byte("payload"), rec.Payload)
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, j.MarkAcked(7))

	count := 0
	require.NoError(t, j.ScanPending(func(*Record) error {
		count++
		return nil
	}))
	assert.Zero(t, count, "acked records must not be replayed")
}

func TestMarkMissingSeq(t *testing.T) {
	j := openTestJournal(t)
	assert.Error(t, j.MarkSent(42))
	assert.Error(t, j.MarkAcked(42))
}

func TestRetriesAccumulate(t *testing.T) {
	j := openTestJournal(t)

	require.NoError(t, j.Append(1, []byte("x")))
	require.NoError(t, j.MarkSent(1))
	require.NoError(t, j.MarkSent(1))
	require.NoError(t, j.MarkSent(1))

	require.NoError(t, j.ScanPending(func(rec *Record) error {
		assert.Equal(t, uint32(3), rec.Retries)
		return nil
	}))
}

func TestCompactRemovesAcked(t *testing.T) {
	j := openTestJournal(t)

	for seq := uint64(1); seq <= 5; seq++ {
		require.NoError(t, j.Append(seq, []byte("x")))
	}
	require.NoError(t, j.MarkAcked(2))
	require.NoError(t, j.MarkAcked(4))

	removed, err := j.Compact()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	var seen []uint64
	require.NoError(t, j.ScanPending(func(rec *Record) error {
		seen = append(seen, rec.Seq)
		return nil
	}))
	assert.Equal(t, []uint64{1, 3, 5}, seen)
}
