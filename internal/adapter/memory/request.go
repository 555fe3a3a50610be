package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/heartmarshall/datamarket-backend/internal/domain"
)

// RequestRepo stores access requests.
type RequestRepo struct {
	s *Store
}

func (r *RequestRepo) Create(ctx context.Context, req *domain.AccessRequest) (*domain.AccessRequest, error) {
	var out domain.AccessRequest
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.categories[req.CategoryID]; !ok {
			return fmt.Errorf("category %d: %w", req.CategoryID, domain.ErrCategoryNotFound)
		}
		st.lastRequestID++
		out = *req
		out.ID = st.lastRequestID
		st.requests[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.AccessRequest, error) {
	var out domain.AccessRequest
	err := r.s.read(ctx, func(st *state) error {
		req, ok := st.requests[id]
		if !ok {
			return fmt.Errorf("request %d: %w", id, domain.ErrRequestNotFound)
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *RequestRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.AccessRequest, error) {
	return r.GetByID(ctx, id)
}

// Resolve moves a REQUESTED request to status. Any other current status fails
// with domain.ErrRequestNotPending.
func (r *RequestRepo) Resolve(ctx context.Context, id int64, status domain.RequestStatus, resolvedAt time.Time) error {
	return r.s.write(ctx, func(st *state) error {
		req, ok := st.requests[id]
		if !ok {
			return fmt.Errorf("request %d: %w", id, domain.ErrRequestNotFound)
		}
		if req.Status != domain.RequestStatusRequested {
			return fmt.Errorf("request %d: %w", id, domain.ErrRequestNotPending)
		}
		req.Status = status
		req.ResolvedAt = &resolvedAt
		st.requests[id] = req
		return nil
	})
}

func (r *RequestRepo) ListByBuyer(ctx context.Context, buyer domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	return r.list(ctx, func(req domain.AccessRequest) bool {
		return req.Buyer == buyer && (status == nil || req.Status == *status)
	})
}

func (r *RequestRepo) ListBySeller(ctx context.Context, seller domain.Account, status *domain.RequestStatus) ([]*domain.AccessRequest, error) {
	return r.list(ctx, func(req domain.AccessRequest) bool {
		return req.Seller == seller && (status == nil || req.Status == *status)
	})
}

func (r *RequestRepo) EscrowBalance(ctx context.Context) (int64, error) {
	var total int64
	err := r.s.read(ctx, func(st *state) error {
		for _, req := range st.requests {
			if req.Status == domain.RequestStatusRequested {
				total += req.Amount
			}
		}
		return nil
	})
	return total, err
}

// list returns matching requests newest first.
func (r *RequestRepo) list(ctx context.Context, match func(domain.AccessRequest) bool) ([]*domain.AccessRequest, error) {
	result := []*domain.AccessRequest{}
	err := r.s.read(ctx, func(st *state) error {
		for _, req := range st.requests {
			if match(req) {
				result = append(result, &req)
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b *domain.AccessRequest) int { return cmp.Compare(b.ID, a.ID) })
	return result, err
}
