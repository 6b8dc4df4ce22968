package dto

import (
	"time"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// TransactionItem represents one ledger row in a history response
type TransactionItem struct {
	TransactionID string     `json:"transactionId"`
	Kind          string     `json:"kind"`
	Amount        string     `json:"amount"`
	SenderID      *uint64    `json:"senderId,omitempty"`
	ReceiverID    *uint64    `json:"receiverId,omitempty"`
	Status        string     `json:"status"`
	Description   *string    `json:"description,omitempty"`
	ExternalRef   *string    `json:"externalRef,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

// HistoryResponse represents one page of a user's transaction history
type HistoryResponse struct {
	Transactions    []TransactionItem `json:"transactions"`
	TotalCount      int64             `json:"totalCount"`
	Page            int               `json:"page"`
	Limit           int               `json:"limit"`
	HasNextPage     bool              `json:"hasNextPage"`
	HasPreviousPage bool              `json:"hasPreviousPage"`
}

// TransactionToItem converts a ledger transaction to its API representation
func TransactionToItem(txn *entity.Transaction) TransactionItem {
	return TransactionItem{
		TransactionID: txn.ID.String(),
		Kind:          string(txn.Kind),
		Amount:        entity.FormatAmount(txn.Amount),
		SenderID:      txn.SenderID,
		ReceiverID:    txn.ReceiverID,
		Status:        string(txn.Status),
		Description:   txn.Description,
		ExternalRef:   txn.ExternalRef,
		CreatedAt:     txn.CreatedAt,
		ProcessedAt:   txn.ProcessedAt,
	}
}

// PageToHistoryResponse converts a transaction page to its API representation
func PageToHistoryResponse(page *entity.TransactionPage) HistoryResponse {
	items := make([]TransactionItem, 0, len(page.Transactions))
	for _, txn := range page.Transactions {
		items = append(items, TransactionToItem(txn))
	}

	return HistoryResponse{
		Transactions:    items,
		TotalCount:      page.TotalCount,
		Page:            page.Page,
		Limit:           page.Limit,
		HasNextPage:     page.HasNextPage,
		HasPreviousPage: page.HasPreviousPage,
	}
}
