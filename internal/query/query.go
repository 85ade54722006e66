// Package query filters and paginates a feedback snapshot. It holds no state
// and never fails; page bounds are checked by the caller.
package query

import (
	"strings"

	"feedback_dashboard/internal/model"
)

type Params struct {
	// Email, when non-empty, keeps only records whose email equals it
	// ignoring case.
	Email    string
	Page     int
	PageSize int
}

func List(snapshot []model.Feedback, p Params) model.Page {
	retained := snapshot
	if p.Email != "" {
		want := strings.ToLower(p.Email)
		retained = make([]model.Feedback, 0, len(snapshot))
		for _, record := range snapshot {
			if strings.ToLower(record.Email) == want {
				retained = append(retained, record)
			}
		}
	}

	total := len(retained)
	start, end := bounds(total, p.Page, p.PageSize)

	page := make([]model.Feedback, end-start)
	copy(page, retained[start:end])
	return model.Page{
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
		Feedbacks: page,
	}
}

// bounds returns the [start, end) window of the page within total records.
// Pages past the end, however large, yield an empty window at total.
func bounds(total, page, pageSize int) (int, int) {
	if page < 1 || pageSize < 1 {
		return total, total
	}
	// (page-1)*pageSize can overflow, so compare before multiplying.
	if page-1 > total/pageSize {
		return total, total
	}
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := total
	if total-start > pageSize {
		end = start + pageSize
	}
	return start, end
}
