package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/models"
)

type stubReceiptRepo struct {
	receipts map[string]*models.Receipt
	created  []*models.Receipt
	nextID   uint
}

func newStubReceiptRepo() *stubReceiptRepo {
	return &stubReceiptRepo{receipts: map[string]*models.Receipt{}, nextID: 1}
}

func (r *stubReceiptRepo) Create(receipt *models.Receipt) error {
	receipt.ID = r.nextID
	r.nextID++
	r.receipts[receipt.ReceiptNo] = receipt
	r.created = append(r.created, receipt)
	return nil
}

func (r *stubReceiptRepo) GetByID(id uint) (*models.Receipt, error) {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			return receipt, nil
		}
	}
	return nil, nil
}

func (r *stubReceiptRepo) GetByReceiptNo(receiptNo string) (*models.Receipt, error) {
	return r.receipts[receiptNo], nil
}

func (r *stubReceiptRepo) MarkExpired(id uint) error {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			receipt.Status = constants.ReceiptStatusExpired
		}
	}
	return nil
}

func checkoutState() cart.State {
	state := cart.NewState()
	state = state.AddItem(cart.LineItem{
		ID:               "1",
		NameEn:           "Classic Cheeseburger",
		NameFa:           "چیزبرگر کلاسیک",
		PriceEn:          cart.NewPriceFromFloat(12.99),
		PriceFa:          "۱۲.۹۹",
		EstimatedMinutes: 20,
	})
	state = state.AddItem(cart.LineItem{ID: "1"})
	state = state.AddItem(cart.LineItem{
		ID:               "7",
		NameEn:           "Koobideh Kebab",
		NameFa:           "کباب کوبیده",
		PriceEn:          cart.NewPriceFromFloat(8.5),
		PriceFa:          "۸.۵",
		EstimatedMinutes: 30,
	})
	return state
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := NewCheckoutService(newStubReceiptRepo(), nil)
	if _, err := svc.Checkout(cart.NewState()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("want ErrEmptyCart got %v", err)
	}
}

func TestCheckoutBuildsReceipt(t *testing.T) {
	repo := newStubReceiptRepo()
	svc := NewCheckoutService(repo, nil)

	receipt, err := svc.Checkout(checkoutState())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("want 1 stored receipt got %d", len(repo.created))
	}
	if !strings.HasPrefix(receipt.ReceiptNo, "R") || len(receipt.ReceiptNo) != 22 {
		t.Fatalf("unexpected receipt number %q", receipt.ReceiptNo)
	}
	if receipt.Status != constants.ReceiptStatusPlaced {
		t.Fatalf("want status placed got %q", receipt.Status)
	}
	if receipt.TotalItems != 3 {
		t.Fatalf("want 3 total items got %d", receipt.TotalItems)
	}
	if want := decimal.NewFromFloat(34.48); !receipt.TotalAmount.Decimal.Equal(want) {
		t.Fatalf("want total %s got %s", want, receipt.TotalAmount.Decimal)
	}
	if receipt.FormattedTotal != "34.48" {
		t.Fatalf("want formatted total 34.48 got %q", receipt.FormattedTotal)
	}
	if receipt.FormattedTotalFa != "۳۴.۴۸" {
		t.Fatalf("want Farsi total ۳۴.۴۸ got %q", receipt.FormattedTotalFa)
	}
	if receipt.MinEstimateMinutes != 30 || receipt.MaxEstimateMinutes != 35 {
		t.Fatalf("want estimates 30/35 got %d/%d", receipt.MinEstimateMinutes, receipt.MaxEstimateMinutes)
	}
	if receipt.PlacedAt.IsZero() {
		t.Fatal("placed_at not set")
	}

	if len(receipt.Items) != 2 {
		t.Fatalf("want 2 receipt lines got %d", len(receipt.Items))
	}
	burger := receipt.Items[0]
	if burger.Quantity != 2 {
		t.Fatalf("want burger quantity 2 got %d", burger.Quantity)
	}
	if burger.FormattedPriceEn != "25.98" {
		t.Fatalf("want line total 25.98 got %q", burger.FormattedPriceEn)
	}
	if burger.FormattedPriceFa != "۲۵.۹۸" {
		t.Fatalf("want Farsi line total ۲۵.۹۸ got %q", burger.FormattedPriceFa)
	}
}

func TestCheckoutCarriesDeliveryDetails(t *testing.T) {
	repo := newStubReceiptRepo()
	svc := NewCheckoutService(repo, nil)

	table := "7"
	state := checkoutState().
		SetCheckoutStep(cart.StepPayment).
		SetComingNow(true).
		SetDeliveryTable(&table)

	receipt, err := svc.Checkout(state)
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !receipt.IsComingNow || receipt.DeliveryTime != "" {
		t.Fatalf("coming-now not carried: %+v", receipt)
	}
	if receipt.TableNumber != "7" || receipt.IsSelectingTableLater {
		t.Fatalf("table not carried: %+v", receipt)
	}
}

func TestReceiptByNo(t *testing.T) {
	repo := newStubReceiptRepo()
	svc := NewCheckoutService(repo, nil)

	receipt, err := svc.Checkout(checkoutState())
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	got, err := svc.ReceiptByNo(receipt.ReceiptNo)
	if err != nil || got == nil || got.ReceiptNo != receipt.ReceiptNo {
		t.Fatalf("lookup failed: %v %v", got, err)
	}

	if _, err := svc.ReceiptByNo("  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank number want ErrInvalidInput got %v", err)
	}
	if _, err := svc.ReceiptByNo("RUNKNOWN"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown number want ErrNotFound got %v", err)
	}

	if err := repo.MarkExpired(receipt.ID); err != nil {
		t.Fatalf("mark expired: %v", err)
	}
	if _, err := svc.ReceiptByNo(receipt.ReceiptNo); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired receipt want ErrNotFound got %v", err)
	}
}
