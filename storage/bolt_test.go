package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoltKV_RoundTrip(t *testing.T) {
	kv, err := OpenBolt(t.TempDir())
	require.NoError(t, err)
	defer kv.Close()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, kv.Set("users", []byte(`{}`)))
	v, ok, err := kv.Get("users")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{}`), v)

	require.NoError(t, kv.Set("tokenLogs_ana", []byte(`[]`)))
	keys, err := kv.Keys()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"users", "tokenLogs_ana"}, keys)

	require.NoError(t, kv.Delete("users"))
	_, ok, err = kv.Get("users")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBoltKV_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := OpenBolt(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set("purchaseLogs", []byte(`[{"id":"MP-1"}]`)))
	require.NoError(t, kv.Close())

	kv, err = OpenBolt(dir)
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get("purchaseLogs")
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, string(v), "MP-1")
}
