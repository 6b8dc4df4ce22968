package dto

// FundingRequest represents the API request for adding funds
type FundingRequest struct {
	Amount      string  `json:"amount" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// WithdrawalRequest represents the API request for withdrawing funds
type WithdrawalRequest struct {
	Amount      string  `json:"amount" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// ExternalTransactionResponse represents a funding or withdrawal submitted
// to the payment processor and awaiting settlement
type ExternalTransactionResponse struct {
	TransactionID string `json:"transactionId"`
	UserID        uint64 `json:"userId"`
	Kind          string `json:"kind"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	ExternalRef   string `json:"externalRef"`
}
