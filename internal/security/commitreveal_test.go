package security

import (
	"testing"

	"marketplace-settlement/internal/repository"
	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"github.com/stretchr/testify/require"
)

func TestComputeCommitment(t *testing.T) {
	salt := []byte("pepper")
	a := ComputeCommitment("alice", 1, 5000, salt)
	require.Len(t, a, 32)
	require.Equal(t, a, ComputeCommitment("alice", 1, 5000, salt))

	require.NotEqual(t, a, ComputeCommitment("alice", 1, 5001, salt))
	require.NotEqual(t, a, ComputeCommitment("bob", 1, 5000, salt))
	require.NotEqual(t, a, ComputeCommitment("alice", 2, 5000, salt))
	require.NotEqual(t, a, ComputeCommitment("alice", 1, 5000, []byte("salt")))
}

func TestCommitRevealScheme_Reveal(t *testing.T) {
	salt := []byte{0x01, 0x02, 0x03}

	tests := []struct {
		name      string
		store     bool
		revealAt  uint64
		amount    int64
		salt      []byte
		expectErr error
	}{
		{name: "valid_reveal", store: true, revealAt: 1500, amount: 7000, salt: salt},
		{name: "reveal_at_deadline", store: true, revealAt: 2000, amount: 7000, salt: salt},
		{name: "no_commitment", store: false, revealAt: 1500, amount: 7000, salt: salt, expectErr: settlementerrors.ErrNotFound},
		{name: "after_deadline", store: true, revealAt: 2001, amount: 7000, salt: salt, expectErr: settlementerrors.ErrExpired},
		{name: "wrong_amount", store: true, revealAt: 1500, amount: 7001, salt: salt, expectErr: settlementerrors.ErrCommitmentMismatch},
		{name: "wrong_salt", store: true, revealAt: 1500, amount: 7000, salt: []byte{0x09}, expectErr: settlementerrors.ErrCommitmentMismatch},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clock := utils.NewFixedClock(1000)
			scheme := NewCommitRevealScheme(repository.NewMemoryStore(), clock)
			if tt.store {
				require.NoError(t, scheme.StoreCommitment("alice", 9, ComputeCommitment("alice", 9, 7000, salt), 2000))
			}

			clock.Set(tt.revealAt)
			err := scheme.RevealCommitment("alice", 9, tt.amount, tt.salt)
			if tt.expectErr != nil {
				require.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)

			// consumed on success
			_, ok, err := scheme.GetCommitment("alice", 9)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestCommitRevealScheme_Cleanup(t *testing.T) {
	clock := utils.NewFixedClock(100)
	scheme := NewCommitRevealScheme(repository.NewMemoryStore(), clock)

	require.NoError(t, scheme.StoreCommitment("alice", 1, []byte{1}, 150))
	require.NoError(t, scheme.StoreCommitment("bob", 1, []byte{2}, 300))
	require.NoError(t, scheme.StoreCommitment("alice", 2, []byte{3}, 400))

	clock.Set(200)
	removed, err := scheme.CleanupExpiredCommitments()
	require.NoError(t, err)
	require.Equal(t, 1, removed)

	open, err := scheme.CommitmentsFor("alice")
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, uint64(2), open[0].AuctionID)

	require.ErrorIs(t, scheme.StoreCommitment("carol", 1, nil, 500), settlementerrors.ErrInvalidAmount)
}
