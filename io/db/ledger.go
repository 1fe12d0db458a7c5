package db

import (
	"encoding/binary"
	stdErrors "errors"
	"sync"

	"github.com/crossmesh/rootmanager/core/entity"
	"github.com/pkg/errors"
)

var ErrLedgerUnderflow = errors.New("ledger underflow")

const balanceKey = "ledger/balance"

// FeeLedger tracks the gateway's fee balance, immediate relayer payouts
// and accrued keeper credits on the repository.
type FeeLedger struct {
	mu   sync.Mutex
	repo Repository
}

func NewFeeLedger(repo Repository) *FeeLedger {
	return &FeeLedger{repo: repo}
}

// Deposit funds the gateway balance.
func (l *FeeLedger) Deposit(amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(balanceKey, amount)
}

func (l *FeeLedger) Balance() (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read(balanceKey)
}

func (l *FeeLedger) Debit(amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sub(balanceKey, amount)
}

// Credit records an immediate payout to addr (the relayer rail).
func (l *FeeLedger) Credit(addr entity.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(paidKey(addr), amount)
}

// Accrue adds to addr's keeper credit (the credit rail). The gateway
// balance is debited when the credit is settled, not here.
func (l *FeeLedger) Accrue(addr entity.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.add(creditKey(addr), amount)
}

// Settle debits the gateway by addr's accrued credit, records the
// payout and zeroes the credit. Returns the settled amount.
func (l *FeeLedger) Settle(addr entity.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	credit, err := l.read(creditKey(addr))
	if err != nil {
		return 0, err
	}
	if credit == 0 {
		return 0, nil
	}

	if err := l.sub(balanceKey, credit); err != nil {
		return 0, err
	}
	if err := l.add(paidKey(addr), credit); err != nil {
		return 0, err
	}
	if err := l.repo.Delete(creditKey(addr)); err != nil {
		return 0, err
	}
	return credit, nil
}

// CreditOf returns addr's unsettled keeper credit.
func (l *FeeLedger) CreditOf(addr entity.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read(creditKey(addr))
}

// PaidOf returns the total paid out to addr.
func (l *FeeLedger) PaidOf(addr entity.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read(paidKey(addr))
}

func (l *FeeLedger) read(key string) (uint64, error) {
	raw, err := l.repo.Get(key)
	if err != nil {
		if stdErrors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupt ledger value for %s", key)
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (l *FeeLedger) write(key string, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return l.repo.Put(key, buf[:])
}

func (l *FeeLedger) add(key string, amount uint64) error {
	current, err := l.read(key)
	if err != nil {
		return err
	}
	return l.write(key, current+amount)
}

func (l *FeeLedger) sub(key string, amount uint64) error {
	current, err := l.read(key)
	if err != nil {
		return err
	}
	if current < amount {
		return errors.Wrapf(ErrLedgerUnderflow, "%s: have %d, need %d", key, current, amount)
	}
	return l.write(key, current-amount)
}

func paidKey(addr entity.Address) string {
	return "ledger/paid/" + string(addr)
}

func creditKey(addr entity.Address) string {
	return "ledger/credit/" + string(addr)
}
