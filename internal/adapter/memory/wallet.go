package memory

import (
	"context"
	"fmt"
	"math"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// Wallet credits internal account balances. Accounts that opted out of
// incoming transfers refuse funds with domain.ErrTransferFailed.
type Wallet struct {
	s *Store
}

func (w *Wallet) Send(ctx context.Context, t domain.Transfer) error {
	if t.Amount <= 0 {
		return fmt.Errorf("transfer to %s: %w", t.To, domain.ErrInvalidPrice)
	}
	return w.s.write(ctx, func(st *state) error {
		acc, ok := st.accounts[t.To]
		if !ok {
			acc = account{acceptsTransfers: true}
		}
		if !acc.acceptsTransfers {
			return fmt.Errorf("transfer to %s: %w", t.To, domain.ErrTransferFailed)
		}
		if acc.balance > math.MaxInt64-t.Amount {
			return fmt.Errorf("transfer to %s: %w", t.To, domain.ErrAmountOverflow)
		}
		acc.balance += t.Amount
		st.accounts[t.To] = acc
		st.transfers = append(st.transfers, t)
		return nil
	})
}

// SetAcceptsTransfers opts an account in or out of incoming transfers.
func (w *Wallet) SetAcceptsTransfers(ctx context.Context, to domain.Account, accepts bool) error {
	return w.s.write(ctx, func(st *state) error {
		acc := st.accounts[to]
		acc.acceptsTransfers = accepts
		st.accounts[to] = acc
		return nil
	})
}

func (w *Wallet) Balance(ctx context.Context, of domain.Account) (int64, error) {
	var balance int64
	err := w.s.read(ctx, func(st *state) error {
		balance = st.accounts[of].balance
		return nil
	})
	return balance, err
}

// Transfers returns every transfer made to an account, oldest first.
func (w *Wallet) Transfers(ctx context.Context, to domain.Account) ([]domain.Transfer, error) {
	result := []domain.Transfer{}
	err := w.s.read(ctx, func(st *state) error {
		for _, t := range st.transfers {
			if t.To == to {
				result = append(result, t)
			}
		}
		return nil
	})
	return result, err
}
