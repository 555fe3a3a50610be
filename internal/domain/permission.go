package domain

import "time"

// SecondsPerDay is the length of one licensed day.
const SecondsPerDay = 86400

// Day is the duration of one licensed day.
const Day = SecondsPerDay * time.Second

// MaxDurationDays bounds a single grant so that expiry stays representable.
const MaxDurationDays = 36500

// Permission is the current grant for a (category, buyer) pair. A later grant
// overwrites the earlier one; no history is kept.
type Permission struct {
	CategoryID        int64
	Buyer             Account
	Granted           bool
	GrantedAt         time.Time
	ExpiresAt         time.Time
	TotalPaid         int64
	TotalDurationDays int64
}

// ActiveAt reports whether the permission allows access at now.
// Expiry is evaluated lazily; an expired grant keeps Granted=true.
func (p *Permission) ActiveAt(now time.Time) bool {
	if p == nil || !p.Granted {
		return false
	}
	return now.Before(p.ExpiresAt)
}

// ExpiryFor returns grantedAt + days*86400s.
func ExpiryFor(grantedAt time.Time, days int64) time.Time {
	return grantedAt.Add(time.Duration(days) * Day)
}
