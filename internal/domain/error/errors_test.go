package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrSelfTransfer.Error() != "cannot send a tip to yourself" {
		t.Errorf("ErrSelfTransfer has unexpected message: %s", ErrSelfTransfer.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4001},
		{"InsufficientFunds", ErrInsufficientFunds, 4002},
		{"SelfTransfer", ErrSelfTransfer, 4003},
		{"SenderNotPermitted", ErrSenderNotPermitted, 4004},
		{"ReceiverNotPermitted", ErrReceiverNotPermitted, 4005},
		{"InvalidUserID", ErrInvalidUserID, 4006},
		{"InvalidRequest", ErrInvalidRequest, 4007},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"OperationConflict", ErrOperationConflict, 4090},
		{"StorageUnavailable", ErrStorageUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4006},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(123, "50.00", "10.00")

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("InsufficientFundsError should match ErrInsufficientFunds")
	}

	var detailed *InsufficientFundsError
	if !errors.As(err, &detailed) {
		t.Fatal("expected *InsufficientFundsError")
	}
	if detailed.UserID != 123 || detailed.Amount != "50.00" || detailed.CurrBalance != "10.00" {
		t.Errorf("unexpected fields: %+v", detailed)
	}

	fields := detailed.LogFields()
	if fields["user_id"] != uint64(123) {
		t.Errorf("LogFields user_id = %v, want 123", fields["user_id"])
	}
	if fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("LogFields error_code = %v, want %d", fields["error_code"], CodeInsufficientFunds)
	}
}

func TestTipError(t *testing.T) {
	base := ErrReceiverNotPermitted
	err := NewTipError(1, 2, "25.00", "receiver opted out", base)

	if !errors.Is(err, ErrReceiverNotPermitted) {
		t.Error("TipError should unwrap to its cause")
	}

	var tipErr *TipError
	if !errors.As(err, &tipErr) {
		t.Fatal("expected *TipError")
	}
	if tipErr.SenderID != 1 || tipErr.ReceiverID != 2 {
		t.Errorf("unexpected parties: %+v", tipErr)
	}
	if ErrorCode(err) != CodeReceiverNotPermitted {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeReceiverNotPermitted)
	}
}

func TestSettlementError(t *testing.T) {
	base := ErrTransactionNotFound
	err := NewSettlementError("evt_1", "pi_1", "no matching row", base)

	if !errors.Is(err, ErrTransactionNotFound) {
		t.Error("SettlementError should unwrap to its cause")
	}

	var settlementErr *SettlementError
	if !errors.As(err, &settlementErr) {
		t.Fatal("expected *SettlementError")
	}
	if settlementErr.EventID != "evt_1" || settlementErr.ExternalRef != "pi_1" {
		t.Errorf("unexpected fields: %+v", settlementErr)
	}
}

func TestErrorClassifiers(t *testing.T) {
	t.Run("Validation errors", func(t *testing.T) {
		for _, err := range []error{
			ErrInvalidAmount,
			ErrSelfTransfer,
			ErrSenderNotPermitted,
			ErrReceiverNotPermitted,
			ErrInsufficientFunds,
		} {
			if !IsValidationError(err) {
				t.Errorf("IsValidationError(%v) = false, want true", err)
			}
		}
		if IsValidationError(ErrUserNotFound) {
			t.Error("IsValidationError(ErrUserNotFound) = true, want false")
		}
	})

	t.Run("Not found errors", func(t *testing.T) {
		for _, err := range []error{ErrUserNotFound, ErrTransactionNotFound, ErrSettlementEventNotFound} {
			if !IsNotFoundError(err) {
				t.Errorf("IsNotFoundError(%v) = false, want true", err)
			}
		}
		if IsNotFoundError(ErrInvalidAmount) {
			t.Error("IsNotFoundError(ErrInvalidAmount) = true, want false")
		}
	})

	t.Run("Conflict errors", func(t *testing.T) {
		if !IsConflictError(ErrOperationConflict) {
			t.Error("IsConflictError(ErrOperationConflict) = false, want true")
		}
		if !IsConflictError(fmt.Errorf("wrapped: %w", ErrOperationConflict)) {
			t.Error("wrapped conflict should classify as conflict")
		}
		if IsConflictError(ErrStorageUnavailable) {
			t.Error("IsConflictError(ErrStorageUnavailable) = true, want false")
		}
	})
}
