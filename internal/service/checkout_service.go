package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/i18n"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/queue"
	"github.com/sofreh-next/internal/repository"
)

// CheckoutService turns a cart into a stored receipt. Payment is simulated;
// the receipt is scheduled for expiry once the delivery window has elapsed.
type CheckoutService struct {
	receipts    repository.ReceiptRepository
	queueClient *queue.Client
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(receipts repository.ReceiptRepository, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{receipts: receipts, queueClient: queueClient}
}

// Checkout builds and persists the receipt for the given cart state.
func (s *CheckoutService) Checkout(state cart.State) (*models.Receipt, error) {
	if state.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total := state.Total()
	faTotal := decimal.Zero
	lines := make([]models.ReceiptItem, 0, len(state.Items))
	for _, item := range state.Items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		lineTotal := item.PriceEn.Mul(qty)
		faLineTotal := i18n.ParseLocalizedPrice(item.PriceFa).Mul(qty)
		faTotal = faTotal.Add(faLineTotal)
		lines = append(lines, models.ReceiptItem{
			ProductID:        item.ID,
			NameEn:           item.NameEn,
			NameFa:           item.NameFa,
			Quantity:         item.Quantity,
			FormattedPriceEn: i18n.FormatGrouped(lineTotal),
			FormattedPriceFa: i18n.FormatGroupedFarsi(faLineTotal),
		})
	}

	minEstimate := state.MaxEstimatedMinutes()
	maxEstimate := minEstimate + constants.DeliveryWindowPaddingMinutes

	receipt := models.Receipt{
		ReceiptNo:             newReceiptNo(),
		Status:                constants.ReceiptStatusPlaced,
		TotalItems:            state.TotalItems(),
		TotalAmount:           models.NewMoneyFromDecimal(total),
		FormattedTotal:        i18n.FormatGrouped(total),
		FormattedTotalFa:      i18n.FormatGroupedFarsi(faTotal),
		DeliveryTime:          state.DeliveryDetails.SelectedTime,
		IsComingNow:           state.DeliveryDetails.IsComingNow,
		TableNumber:           state.DeliveryDetails.SelectedTable,
		IsSelectingTableLater: state.DeliveryDetails.IsSelectingTableLater,
		MinEstimateMinutes:    minEstimate,
		MaxEstimateMinutes:    maxEstimate,
		PlacedAt:              time.Now(),
		Items:                 lines,
	}
	if err := s.receipts.Create(&receipt); err != nil {
		return nil, err
	}

	s.scheduleExpiry(&receipt)
	return &receipt, nil
}

// ReceiptByNo returns a stored receipt by its public number. Expired
// receipts behave as if they were removed.
func (s *CheckoutService) ReceiptByNo(receiptNo string) (*models.Receipt, error) {
	receiptNo = strings.TrimSpace(receiptNo)
	if receiptNo == "" {
		return nil, ErrInvalidInput
	}
	receipt, err := s.receipts.GetByReceiptNo(receiptNo)
	if err != nil {
		return nil, err
	}
	if receipt == nil || receipt.Status == constants.ReceiptStatusExpired {
		return nil, ErrNotFound
	}
	return receipt, nil
}

// scheduleExpiry enqueues the delayed expiry task. Failures are logged but
// do not fail the checkout.
func (s *CheckoutService) scheduleExpiry(receipt *models.Receipt) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		logger.Debugw("checkout_expiry_skip_queue_disabled", "receipt_id", receipt.ID)
		return
	}
	if err := s.queueClient.EnqueueOrderPlaced(queue.OrderPlacedPayload{ReceiptID: receipt.ID}); err != nil {
		logger.Warnw("checkout_order_placed_enqueue_failed", "receipt_id", receipt.ID, "error", err)
	}
	delay := time.Duration(receipt.MaxEstimateMinutes) * time.Minute
	if err := s.queueClient.EnqueueReceiptExpire(queue.ReceiptExpirePayload{ReceiptID: receipt.ID}, delay); err != nil {
		logger.Warnw("checkout_expiry_enqueue_failed", "receipt_id", receipt.ID, "error", err)
	}
}

func newReceiptNo() string {
	return "R" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:21]
}
