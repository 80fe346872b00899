package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferTransitionsOnlyFromPending(t *testing.T) {
	tests := []struct {
		name       string
		transition func(*Transfer) bool
		want       TransferStatus
	}{
		{"accept", (*Transfer).Accept, TransferStatusAccepted},
		{"reject", (*Transfer).Reject, TransferStatusRejected},
		{"cancel", (*Transfer).Cancel, TransferStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfer := &Transfer{Status: TransferStatusPending}
			assert.True(t, tt.transition(transfer))
			assert.Equal(t, tt.want, transfer.Status)

			// A decided transfer never transitions again.
			for _, again := range tests {
				assert.False(t, again.transition(transfer))
				assert.Equal(t, tt.want, transfer.Status)
			}
		})
	}
}

func TestTransferIsPending(t *testing.T) {
	assert.True(t, (&Transfer{Status: TransferStatusPending}).IsPending())
	assert.False(t, (&Transfer{Status: TransferStatusAccepted}).IsPending())
	assert.False(t, (&Transfer{Status: TransferStatusCancelled}).IsPending())
}
