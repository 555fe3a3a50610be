package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// CategoryRepo stores categories and their delegates.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	var out domain.Category
	err := r.s.write(ctx, func(st *state) error {
		st.lastCategoryID++
		out = *c
		out.ID = st.lastCategoryID
		st.categories[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var out domain.Category
	err := r.s.read(ctx, func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return fmt.Errorf("category %d: %w", id, domain.ErrCategoryNotFound)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByIDForUpdate is GetByID; the transaction already holds the store lock.
func (r *CategoryRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Category, error) {
	return r.GetByID(ctx, id)
}

func (r *CategoryRepo) Update(ctx context.Context, id int64, params domain.CategoryUpdateParams, updatedAt time.Time) (*domain.Category, error) {
	var out domain.Category
	err := r.s.write(ctx, func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return fmt.Errorf("category %d: %w", id, domain.ErrCategoryNotFound)
		}
		c.PricePerDay = params.PricePerDay
		c.ContentHash = params.ContentHash
		c.UpdatedAt = updatedAt
		st.categories[id] = c
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CategoryRepo) Deactivate(ctx context.Context, id int64, updatedAt time.Time) error {
	return r.s.write(ctx, func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return fmt.Errorf("category %d: %w", id, domain.ErrCategoryNotFound)
		}
		c.Active = false
		c.UpdatedAt = updatedAt
		st.categories[id] = c
		return nil
	})
}

func (r *CategoryRepo) ListActive(ctx context.Context, afterID int64, limit int) ([]*domain.Category, error) {
	result := []*domain.Category{}
	err := r.s.read(ctx, func(st *state) error {
		// Ids are dense, so walking them is registration order.
		for id := afterID + 1; id <= st.lastCategoryID && len(result) < limit; id++ {
			c, ok := st.categories[id]
			if !ok || !c.Active {
				continue
			}
			result = append(result, &c)
		}
		return nil
	})
	return result, err
}

func (r *CategoryRepo) ListByOwner(ctx context.Context, owner domain.Account) ([]*domain.Category, error) {
	result := []*domain.Category{}
	err := r.s.read(ctx, func(st *state) error {
		for _, c := range st.categories {
			if c.Owner == owner {
				result = append(result, &c)
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *domain.Category) int { return cmp.Compare(a.ID, b.ID) })
	return result, err
}

func (r *CategoryRepo) AddDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.categories[categoryID]; !ok {
			return fmt.Errorf("category %d: %w", categoryID, domain.ErrCategoryNotFound)
		}
		set := st.delegates[categoryID]
		if set == nil {
			set = make(map[domain.Account]struct{})
			st.delegates[categoryID] = set
		}
		if _, ok := set[delegate]; ok {
			return fmt.Errorf("delegate %s: %w", delegate, domain.ErrAlreadyExists)
		}
		set[delegate] = struct{}{}
		return nil
	})
}

func (r *CategoryRepo) RemoveDelegate(ctx context.Context, categoryID int64, delegate domain.Account) error {
	return r.s.write(ctx, func(st *state) error {
		set := st.delegates[categoryID]
		if _, ok := set[delegate]; !ok {
			return fmt.Errorf("delegate %s: %w", delegate, domain.ErrNotFound)
		}
		delete(set, delegate)
		return nil
	})
}

func (r *CategoryRepo) ListDelegates(ctx context.Context, categoryID int64) ([]domain.Account, error) {
	result := []domain.Account{}
	err := r.s.read(ctx, func(st *state) error {
		for d := range st.delegates[categoryID] {
			result = append(result, d)
		}
		return nil
	})
	slices.Sort(result)
	return result, err
}

func (r *CategoryRepo) IsDelegate(ctx context.Context, categoryID int64, account domain.Account) (bool, error) {
	var ok bool
	err := r.s.read(ctx, func(st *state) error {
		_, ok = st.delegates[categoryID][account]
		return nil
	})
	return ok, err
}
