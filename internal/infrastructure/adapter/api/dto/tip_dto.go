package dto

// TipRequest represents the API request for sending a tip
type TipRequest struct {
	ReceiverID  uint64  `json:"receiverId" binding:"required"`
	Amount      string  `json:"amount" binding:"required"`
	Description *string `json:"description,omitempty"`
}

// TipResponse represents the API response for a completed tip
type TipResponse struct {
	TransactionID      string `json:"transactionId"`
	SenderID           uint64 `json:"senderId"`
	ReceiverID         uint64 `json:"receiverId"`
	Amount             string `json:"amount"`
	SenderNewBalance   string `json:"senderNewBalance"`
	ReceiverNewBalance string `json:"receiverNewBalance"`
}
