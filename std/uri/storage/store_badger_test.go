package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weburi/weburi/std/uri/storage"
	tu "github.com/weburi/weburi/std/utils/testutils"
)

func TestBadgerStore(t *testing.T) {
	tu.SetT(t)
	dir := filepath.Join(t.TempDir(), "badger-test")

	store, err := storage.NewBadgerStore(dir)
	require.NoError(t, err)
	testStoreBasic(t, store)
	testStoreWalk(t, store)
	testStoreTxn(t, store)
	testStoreHighBytes(t, store)
	require.NoError(t, store.Close())

	// data survives a reopen
	reopened := tu.NoErr(storage.Open("badger:" + dir))
	rec := tu.NoErr(reopened.Get([]string{"http", "tx.test", "9"}, false))
	require.Equal(t, uint32(3), rec.Code)
	require.NoError(t, reopened.Close())
}
