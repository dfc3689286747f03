package validate_test

import (
	"testing"

	"github.com/ardanlabs/ledger/foundation/validate"
)

type newTx struct {
	Sender    *string  `json:"sender" validate:"required"`
	Recipient *string  `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

func Test_Check(t *testing.T) {
	s := "bill"
	amount := 0.0

	t.Run("missing", func(t *testing.T) {
		err := validate.Check(newTx{Sender: &s})
		if err == nil {
			t.Fatal("Should fail validation for missing fields.")
		}

		fields := validate.GetFieldErrors(err).Fields()
		if _, exists := fields["recipient"]; !exists {
			t.Fatalf("Should report the json field name: %v", fields)
		}
		if _, exists := fields["amount"]; !exists {
			t.Fatalf("Should report the amount field: %v", fields)
		}
		if _, exists := fields["sender"]; exists {
			t.Fatalf("Should not report a present field: %v", fields)
		}
	})

	t.Run("present", func(t *testing.T) {
		if err := validate.Check(newTx{Sender: &s, Recipient: &s, Amount: &amount}); err != nil {
			t.Fatalf("Should pass validation with a zero amount: %v", err)
		}
	})
}
