package worker

import (
	"context"
	"encoding/json"

	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/provider"
	"github.com/sofreh-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles queued background tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a task consumer bound to the container.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires task handlers into the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskReceiptExpire, c.handleReceiptExpire)
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

func (c *Consumer) handleReceiptExpire(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_receipt_expire_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ReceiptExpirePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_receipt_expire_unmarshal_failed", "error", err)
		return err
	}
	if payload.ReceiptID == 0 {
		logger.Debugw("worker_receipt_expire_skip_invalid_payload", "receipt_id", payload.ReceiptID)
		return nil
	}
	receipt, err := c.ReceiptRepo.GetByID(payload.ReceiptID)
	if err != nil {
		logger.Warnw("worker_receipt_expire_fetch_failed", "receipt_id", payload.ReceiptID, "error", err)
		return err
	}
	if receipt == nil {
		logger.Debugw("worker_receipt_expire_skip_not_found", "receipt_id", payload.ReceiptID)
		return nil
	}
	if receipt.Status == constants.ReceiptStatusExpired {
		logger.Debugw("worker_receipt_expire_skip_already_expired", "receipt_id", receipt.ID)
		return nil
	}
	if err := c.ReceiptRepo.MarkExpired(receipt.ID); err != nil {
		logger.Warnw("worker_receipt_expire_mark_failed", "receipt_id", receipt.ID, "error", err)
		return err
	}
	logger.Infow("worker_receipt_expired", "receipt_id", receipt.ID, "receipt_no", receipt.ReceiptNo)
	return nil
}

func (c *Consumer) handleOrderPlaced(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_unmarshal_failed", "error", err)
		return err
	}
	if payload.ReceiptID == 0 {
		logger.Debugw("worker_order_placed_skip_invalid_payload", "receipt_id", payload.ReceiptID)
		return nil
	}
	receipt, err := c.ReceiptRepo.GetByID(payload.ReceiptID)
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_failed", "receipt_id", payload.ReceiptID, "error", err)
		return err
	}
	if receipt == nil {
		logger.Debugw("worker_order_placed_skip_not_found", "receipt_id", payload.ReceiptID)
		return nil
	}
	logger.Infow("worker_order_placed",
		"receipt_id", receipt.ID,
		"receipt_no", receipt.ReceiptNo,
		"total_items", receipt.TotalItems,
		"max_estimate_minutes", receipt.MaxEstimateMinutes)
	return nil
}
