package queue

import (
	"encoding/json"

	"github.com/sofreh-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskReceiptExpire removes a receipt after its delivery window.
	TaskReceiptExpire = constants.TaskReceiptExpire
	// TaskOrderPlaced handles post-checkout bookkeeping.
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// ReceiptExpirePayload identifies the receipt to expire.
type ReceiptExpirePayload struct {
	ReceiptID uint `json:"receipt_id"`
}

// OrderPlacedPayload identifies the freshly placed receipt.
type OrderPlacedPayload struct {
	ReceiptID uint `json:"receipt_id"`
}

// NewReceiptExpireTask creates the receipt expiry task.
func NewReceiptExpireTask(payload ReceiptExpirePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReceiptExpire, body), nil
}

// NewOrderPlacedTask creates the order placed task.
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}
