package dto

// CreateUserRequest represents the API request for creating a user
type CreateUserRequest struct {
	UserID         uint64 `json:"userId" binding:"required"`
	InitialBalance string `json:"initialBalance"`
}

// PermissionsRequest represents the API request for updating tip permissions
type PermissionsRequest struct {
	CanGiveTips    *bool `json:"canGiveTips" binding:"required"`
	CanReceiveTips *bool `json:"canReceiveTips" binding:"required"`
}

// UserResponse represents the API response for a user
type UserResponse struct {
	UserID         uint64 `json:"userId"`
	Balance        string `json:"balance"`
	CanGiveTips    bool   `json:"canGiveTips"`
	CanReceiveTips bool   `json:"canReceiveTips"`
}
