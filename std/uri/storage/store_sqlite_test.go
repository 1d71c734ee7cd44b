package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri/storage"
	tu "github.com/weburi/weburi/std/utils/testutils"
)

func TestSqliteStore(t *testing.T) {
	tu.SetT(t)
	file := filepath.Join(t.TempDir(), "records.db")

	store, err := storage.NewSqliteStore(file)
	require.NoError(t, err)
	testStoreBasic(t, store)
	testStoreWalk(t, store)
	testStoreTxn(t, store)
	testStoreHighBytes(t, store)
	require.NoError(t, store.Close())

	// data survives a reopen
	reopened := tu.NoErr(storage.Open("sqlite:" + file))
	rec := tu.NoErr(reopened.Get([]string{"http", "tx.test", "9"}, false))
	require.Equal(t, uint32(3), rec.Code)
	require.NoError(t, reopened.Close())
}
