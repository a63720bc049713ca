package repository

import (
	"time"

	"github.com/mohitkushwaha4020/zaika/entity"
)

// computeStats scans the full collection; shared by both store
// implementations so the numbers can never drift apart.
func computeStats(orders []entity.Order, now time.Time) *OrderStats {
	st := &OrderStats{Total: len(orders)}
	for _, o := range orders {
		st.TotalRevenue += o.Total
		if sameDay(o.CreatedAt, now) {
			st.CreatedToday++
			st.TodayRevenue += o.Total
		}
		switch o.Status {
		case entity.StatusPending:
			st.Pending++
		case entity.StatusDelivered:
			st.Delivered++
		}
	}
	return st
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
