package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"embedpanel/models"
)

func newTestStore() *Store {
	return New(NewMemoryKV())
}

func TestRead_MissingKeyYieldsEmpty(t *testing.T) {
	s := newTestStore()

	logs := Read[models.TokenLog](s, ColTokenLogs, "nobody")
	require.NotNil(t, logs)
	require.Empty(t, logs)
}

func TestRead_CorruptValueYieldsEmpty(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.kv.Set(Key(ColTokenLogs, "ana"), []byte("{not json")))

	logs := Read[models.TokenLog](s, ColTokenLogs, "ana")
	require.NotNil(t, logs)
	require.Empty(t, logs)
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore()

	for _, token := range []string{"first...", "second...", "third..."} {
		require.NoError(t, Append(s, ColTokenLogs, "ana", models.TokenLog{Token: token}))
	}

	logs := Read[models.TokenLog](s, ColTokenLogs, "ana")
	require.Len(t, logs, 3)
	require.Equal(t, "first...", logs[0].Token)
	require.Equal(t, "third...", logs[2].Token)
}

func TestAppend_ScopedKeysAreIndependent(t *testing.T) {
	s := newTestStore()

	require.NoError(t, Append(s, ColTokenLogs, "ana", models.TokenLog{Token: "a..."}))
	require.NoError(t, Append(s, ColTokenLogs, "beto", models.TokenLog{Token: "b..."}))

	require.Len(t, Read[models.TokenLog](s, ColTokenLogs, "ana"), 1)
	require.Len(t, Read[models.TokenLog](s, ColTokenLogs, "beto"), 1)
	require.Empty(t, Read[models.TokenLog](s, ColTokenLogs, ""))
}

func TestReadAll_MergesPartitionsNewestFirst(t *testing.T) {
	s := newTestStore()

	require.NoError(t, Append(s, ColMessageLogs, "ana", models.MessageLog{
		User: "ana", Timestamp: "2026-03-01T10:00:00Z",
	}))
	require.NoError(t, Append(s, ColMessageLogs, "beto", models.MessageLog{
		User: "beto", Timestamp: "2026-03-01T12:00:00Z",
	}))
	require.NoError(t, Append(s, ColMessageLogs, "ana", models.MessageLog{
		User: "ana", Timestamp: "2026-03-01T11:00:00Z",
	}))

	all := ReadAll[models.MessageLog](s, ColMessageLogs)
	require.Len(t, all, 3)
	require.Equal(t, "beto", all[0].User)
	require.Equal(t, "2026-03-01T11:00:00Z", all[1].Timestamp)
	require.Equal(t, "2026-03-01T10:00:00Z", all[2].Timestamp)
}

func TestReadAll_SkipsCorruptPartitions(t *testing.T) {
	s := newTestStore()

	require.NoError(t, Append(s, ColMessageLogs, "ana", models.MessageLog{User: "ana"}))
	require.NoError(t, s.kv.Set(Key(ColMessageLogs, "beto"), []byte("oops")))

	all := ReadAll[models.MessageLog](s, ColMessageLogs)
	require.Len(t, all, 1)
	require.Equal(t, "ana", all[0].User)
}

func TestClearPrefix_RemovesEveryPartition(t *testing.T) {
	s := newTestStore()

	require.NoError(t, Append(s, ColTokenLogs, "", models.TokenLog{Token: "x..."}))
	require.NoError(t, Append(s, ColTokenLogs, "ana", models.TokenLog{Token: "y..."}))
	require.NoError(t, Append(s, ColMessageLogs, "ana", models.MessageLog{User: "ana"}))

	require.NoError(t, s.ClearPrefix(ColTokenLogs))

	require.Empty(t, ReadAll[models.TokenLog](s, ColTokenLogs))
	require.Len(t, Read[models.MessageLog](s, ColMessageLogs, "ana"), 1)
}

func TestWrite_EmptySliceOverwrites(t *testing.T) {
	s := newTestStore()

	require.NoError(t, Append(s, ColTokenLogs, "ana", models.TokenLog{Token: "x..."}))
	require.NoError(t, Write(s, ColTokenLogs, "ana", []models.TokenLog{}))

	require.Empty(t, Read[models.TokenLog](s, ColTokenLogs, "ana"))
}

func TestKey_Scoping(t *testing.T) {
	require.Equal(t, "tokenLogs", Key(ColTokenLogs, ""))
	require.Equal(t, "tokenLogs_ana", Key(ColTokenLogs, "ana"))
}
