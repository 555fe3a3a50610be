package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// PermissionRepo stores the current grant per (category, buyer).
type PermissionRepo struct {
	s *Store
}

func (r *PermissionRepo) Get(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error) {
	var out domain.Permission
	err := r.s.read(ctx, func(st *state) error {
		p, ok := st.permissions[permKey{categoryID, buyer}]
		if !ok {
			return fmt.Errorf("permission %d/%s: %w", categoryID, buyer, domain.ErrNotFound)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PermissionRepo) GetForUpdate(ctx context.Context, categoryID int64, buyer domain.Account) (*domain.Permission, error) {
	return r.Get(ctx, categoryID, buyer)
}

func (r *PermissionRepo) Upsert(ctx context.Context, p *domain.Permission) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.categories[p.CategoryID]; !ok {
			return fmt.Errorf("category %d: %w", p.CategoryID, domain.ErrCategoryNotFound)
		}
		st.permissions[permKey{p.CategoryID, p.Buyer}] = *p
		return nil
	})
}

func (r *PermissionRepo) MarkRevoked(ctx context.Context, categoryID int64, buyer domain.Account) error {
	return r.s.write(ctx, func(st *state) error {
		key := permKey{categoryID, buyer}
		p, ok := st.permissions[key]
		if !ok {
			return fmt.Errorf("permission %d/%s: %w", categoryID, buyer, domain.ErrNotFound)
		}
		p.Granted = false
		st.permissions[key] = p
		return nil
	})
}

func (r *PermissionRepo) ListByBuyer(ctx context.Context, buyer domain.Account) ([]*domain.Permission, error) {
	result := []*domain.Permission{}
	err := r.s.read(ctx, func(st *state) error {
		for k, p := range st.permissions {
			if k.buyer == buyer {
				result = append(result, &p)
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *domain.Permission) int { return cmp.Compare(a.CategoryID, b.CategoryID) })
	return result, err
}
