// Package quota implements the daily vocabulary generation allowance.
// The counter resets lazily: a counter dated before today reads as zero,
// and nothing is written until a generation succeeds.
package quota

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/huayu-backend/internal/domain"
)

// DateLayout is the ISO calendar date format used for counter dates.
const DateLayout = "2006-01-02"

// Policy decides whether another generation is allowed today.
type Policy struct {
	limit int
	clock clockwork.Clock
	loc   *time.Location
}

// NewPolicy creates a Policy. A nil loc means the process-local zone.
func NewPolicy(limit int, clock clockwork.Clock, loc *time.Location) *Policy {
	if loc == nil {
		loc = time.Local
	}
	return &Policy{limit: limit, clock: clock, loc: loc}
}

// Limit returns the daily allowance.
func (p *Policy) Limit() int { return p.limit }

// Today returns the current calendar date in the policy's zone.
func (p *Policy) Today() string {
	return p.clock.Now().In(p.loc).Format(DateLayout)
}

// Used returns the effective count for today.
func (p *Policy) Used(c domain.QuotaCounter) int {
	if c.Date != p.Today() || c.Count < 0 {
		return 0
	}
	return c.Count
}

// CanGenerate reports whether one more generation fits in today's allowance.
func (p *Policy) CanGenerate(c domain.QuotaCounter) bool {
	return p.Used(c) < p.limit
}

// Record returns the counter after one successful generation.
func (p *Policy) Record(c domain.QuotaCounter) domain.QuotaCounter {
	return domain.QuotaCounter{Date: p.Today(), Count: p.Used(c) + 1}
}

// Remaining returns how many generations are left today, never negative.
func (p *Policy) Remaining(c domain.QuotaCounter) int {
	return max(p.limit-p.Used(c), 0)
}

// Status summarises c for display.
func (p *Policy) Status(c domain.QuotaCounter) domain.QuotaStatus {
	used := p.Used(c)
	return domain.QuotaStatus{
		Date:      p.Today(),
		Used:      used,
		Limit:     p.limit,
		Remaining: max(p.limit-used, 0),
	}
}
