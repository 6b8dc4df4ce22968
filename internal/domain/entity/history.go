package entity

// History pagination bounds. Out-of-range values are clamped, not rejected.
const (
	MinHistoryPage  = 1
	MinHistoryLimit = 1
	MaxHistoryLimit = 100
)

// TransactionPage is one page of a user's transaction history, ordered by
// creation time descending
type TransactionPage struct {
	Transactions    []*Transaction `json:"transactions"`
	TotalCount      int64          `json:"totalCount"`
	Page            int            `json:"page"`
	Limit           int            `json:"limit"`
	HasNextPage     bool           `json:"hasNextPage"`
	HasPreviousPage bool           `json:"hasPreviousPage"`
}

// ClampHistoryPage normalizes a requested page number
func ClampHistoryPage(page int) int {
	if page < MinHistoryPage {
		return MinHistoryPage
	}
	return page
}

// ClampHistoryLimit normalizes a requested page size
func ClampHistoryLimit(limit int) int {
	if limit < MinHistoryLimit {
		return MinHistoryLimit
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}

// NewTransactionPage assembles page metadata from a result window and total count
func NewTransactionPage(transactions []*Transaction, totalCount int64, page, limit int) *TransactionPage {
	return &TransactionPage{
		Transactions:    transactions,
		TotalCount:      totalCount,
		Page:            page,
		Limit:           limit,
		HasNextPage:     int64(page*limit) < totalCount,
		HasPreviousPage: page > MinHistoryPage,
	}
}
