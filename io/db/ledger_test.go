package db

import (
	"testing"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	repo, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestFeeLedger_RelayerRail(t *testing.T) {
	ledger := NewFeeLedger(newTestRepo(t))
	relayer := entity.Address("relayer")

	require.NoError(t, ledger.Deposit(100))

	balance, err := ledger.Balance()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	// immediate payout: debit the gateway, credit the invoker
	require.NoError(t, ledger.Debit(30))
	require.NoError(t, ledger.Credit(relayer, 30))

	balance, err = ledger.Balance()
	require.NoError(t, err)
	assert.Equal(t, uint64(70), balance)

	paid, err := ledger.PaidOf(relayer)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), paid)
}

func TestFeeLedger_KeeperRail(t *testing.T) {
	ledger := NewFeeLedger(newTestRepo(t))
	keeper := entity.Address("keeper")

	require.NoError(t, ledger.Deposit(100))
	require.NoError(t, ledger.Accrue(keeper, 25))
	require.NoError(t, ledger.Accrue(keeper, 15))

	// accrual does not touch the gateway balance
	balance, err := ledger.Balance()
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	credit, err := ledger.CreditOf(keeper)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), credit)

	// settlement moves the whole credit in one step
	settled, err := ledger.Settle(keeper)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), settled)

	balance, err = ledger.Balance()
	require.NoError(t, err)
	assert.Equal(t, uint64(60), balance)

	paid, err := ledger.PaidOf(keeper)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), paid)

	credit, err = ledger.CreditOf(keeper)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), credit)

	// settling an empty credit is a no-op
	settled, err = ledger.Settle(keeper)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), settled)
}

func TestFeeLedger_Underflow(t *testing.T) {
	ledger := NewFeeLedger(newTestRepo(t))

	err := ledger.Debit(1)
	require.ErrorIs(t, err, ErrLedgerUnderflow)

	// accrued credit above the balance cannot be settled
	require.NoError(t, ledger.Deposit(10))
	require.NoError(t, ledger.Accrue("keeper", 20))
	_, err = ledger.Settle("keeper")
	require.ErrorIs(t, err, ErrLedgerUnderflow)
}

func TestProcessedSet(t *testing.T) {
	set := NewProcessedSet(newTestRepo(t))

	var hash entity.Root
	hash[0] = 0xab

	seen, err := set.Seen(1, hash)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, set.Mark(1, hash))

	seen, err = set.Seen(1, hash)
	require.NoError(t, err)
	assert.True(t, seen)

	// scoped per domain
	seen, err = set.Seen(2, hash)
	require.NoError(t, err)
	assert.False(t, seen)

	// unmark releases the claim
	require.NoError(t, set.Unmark(1, hash))
	seen, err = set.Seen(1, hash)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRepository(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Put("k", []byte("v")))
	val, err := repo.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	require.NoError(t, repo.Delete("k"))
	_, err = repo.Get("k")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is fine
	require.NoError(t, repo.Delete("k"))
}
