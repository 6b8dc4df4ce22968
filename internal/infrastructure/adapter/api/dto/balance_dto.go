package dto

// BalanceResponse is the body of the balance endpoint. Balance is always
// rendered with exactly two decimal places.
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}
