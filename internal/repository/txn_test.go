package repository

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestTxn_ReadsOwnWrites(t *testing.T) {
	base := NewMemoryStore()
	require.NoError(t, base.Set(GroupAuctions, "a", []byte("base-a")))
	require.NoError(t, base.Set(GroupAuctions, "b", []byte("base-b")))

	tx := NewTxn(base)
	require.NoError(t, tx.Set(GroupAuctions, "a", []byte("tx-a")))
	require.NoError(t, tx.Set(GroupAuctions, "c", []byte("tx-c")))
	require.NoError(t, tx.Remove(GroupAuctions, "b"))

	got, ok, err := tx.Get(GroupAuctions, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tx-a", string(got))

	_, ok, err = tx.Get(GroupAuctions, "b")
	require.NoError(t, err)
	require.False(t, ok)

	keys, err := tx.Keys(GroupAuctions)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, keys)

	// base untouched until commit
	got, _, _ = base.Get(GroupAuctions, "a")
	require.Equal(t, "base-a", string(got))
	require.Equal(t, 3, tx.Pending())
}

func TestTxn_CommitAndRollback(t *testing.T) {
	tests := []struct {
		name   string
		commit bool
		wantA  string
		wantB  bool
	}{
		{name: "commit", commit: true, wantA: "tx-a", wantB: false},
		{name: "rollback", commit: false, wantA: "base-a", wantB: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := NewMemoryStore()
			require.NoError(t, base.Set(GroupAuctions, "a", []byte("base-a")))
			require.NoError(t, base.Set(GroupAuctions, "b", []byte("base-b")))

			tx := NewTxn(base)
			require.NoError(t, tx.Set(GroupAuctions, "a", []byte("tx-a")))
			require.NoError(t, tx.Remove(GroupAuctions, "b"))

			if tc.commit {
				require.NoError(t, tx.Commit())
			} else {
				tx.Rollback()
			}

			got, _, _ := base.Get(GroupAuctions, "a")
			require.Equal(t, tc.wantA, string(got))
			_, ok, _ := base.Get(GroupAuctions, "b")
			require.Equal(t, tc.wantB, ok)
		})
	}
}

func TestTxn_CommitTwiceFails(t *testing.T) {
	tx := NewTxn(NewMemoryStore())
	require.NoError(t, tx.Set(GroupConfig, "k", []byte("v")))
	require.NoError(t, tx.Commit())
	require.Error(t, tx.Commit())
}

func TestTxn_CommitUsesBatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batcher := NewMockBatcher(ctrl)
	base := struct {
		*MockStore
		*MockBatcher
	}{NewMockStore(ctrl), batcher}

	tx := NewTxn(base)
	require.NoError(t, tx.Set(GroupConfig, "k", []byte("v1")))
	require.NoError(t, tx.Set(GroupConfig, "k", []byte("v2")))
	require.NoError(t, tx.Remove(GroupConfig, "gone"))

	batcher.EXPECT().Apply([]Mutation{
		{Group: GroupConfig, Key: "k", Value: []byte("v2")},
		{Group: GroupConfig, Key: "gone", Delete: true},
	}).Return(errors.New("serialization failure"))

	require.ErrorContains(t, tx.Commit(), "serialization failure")
}

func TestTxn_CommitWithoutBatcherStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := NewMockStore(ctrl)
	tx := NewTxn(base)
	require.NoError(t, tx.Set(GroupConfig, "a", []byte("1")))
	require.NoError(t, tx.Set(GroupConfig, "b", []byte("2")))

	gomock.InOrder(
		base.EXPECT().Set(GroupConfig, "a", []byte("1")).Return(nil),
		base.EXPECT().Set(GroupConfig, "b", []byte("2")).Return(errors.New("disk full")),
	)
	require.ErrorContains(t, tx.Commit(), "disk full")
}
