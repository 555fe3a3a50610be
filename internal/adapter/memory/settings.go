package memory

import (
	"context"
	"fmt"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// SettingsRepo stores the platform fee percentage.
type SettingsRepo struct {
	s *Store
}

func (r *SettingsRepo) GetFeePercent(ctx context.Context) (uint8, error) {
	var pct uint8
	err := r.s.read(ctx, func(st *state) error {
		if !st.feeSet {
			return fmt.Errorf("platform settings: %w", domain.ErrNotFound)
		}
		pct = st.feePercent
		return nil
	})
	return pct, err
}

func (r *SettingsRepo) SetFeePercent(ctx context.Context, percent uint8, updatedBy domain.Account) error {
	return r.s.write(ctx, func(st *state) error {
		st.feeSet = true
		st.feePercent = percent
		st.feeUpdatedBy = updatedBy
		return nil
	})
}

// EnsureFeePercent stores percent unless a value already exists.
func (r *SettingsRepo) EnsureFeePercent(ctx context.Context, percent uint8) error {
	return r.s.write(ctx, func(st *state) error {
		if !st.feeSet {
			st.feeSet = true
			st.feePercent = percent
		}
		return nil
	})
}
