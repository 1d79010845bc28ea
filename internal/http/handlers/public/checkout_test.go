package public

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/constants"
	"github.com/sofreh-next/internal/http/response"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/provider"
	"github.com/sofreh-next/internal/service"
)

type memReceiptRepo struct {
	receipts map[string]*models.Receipt
	nextID   uint
}

func newMemReceiptRepo() *memReceiptRepo {
	return &memReceiptRepo{receipts: map[string]*models.Receipt{}, nextID: 1}
}

func (r *memReceiptRepo) Create(receipt *models.Receipt) error {
	receipt.ID = r.nextID
	r.nextID++
	r.receipts[receipt.ReceiptNo] = receipt
	return nil
}

func (r *memReceiptRepo) GetByID(id uint) (*models.Receipt, error) {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			return receipt, nil
		}
	}
	return nil, nil
}

func (r *memReceiptRepo) GetByReceiptNo(receiptNo string) (*models.Receipt, error) {
	return r.receipts[receiptNo], nil
}

func (r *memReceiptRepo) MarkExpired(id uint) error {
	for _, receipt := range r.receipts {
		if receipt.ID == id {
			receipt.Status = constants.ReceiptStatusExpired
		}
	}
	return nil
}

func newCheckoutTestRouter(repo *memReceiptRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	container := &provider.Container{
		CookieStore:     cart.NewCookieStore(7),
		CheckoutService: service.NewCheckoutService(repo, nil),
	}
	handler := New(container)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/cart/items", handler.AddCartItem)
	api.POST("/checkout", handler.Checkout)
	api.GET("/receipts/:receiptNo", handler.GetReceipt)
	return r
}

func TestCheckoutEmptyCart(t *testing.T) {
	r := newCheckoutTestRouter(newMemReceiptRepo())
	_, env := perform(t, r, http.MethodPost, "/api/checkout", "", nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("empty cart want bad request got %d", env.StatusCode)
	}
}

func TestCheckoutEndToEnd(t *testing.T) {
	repo := newMemReceiptRepo()
	r := newCheckoutTestRouter(repo)

	w, _ := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)

	w2, env := perform(t, r, http.MethodPost, "/api/checkout", "", w.Result().Cookies())
	if env.StatusCode != response.CodeOK {
		t.Fatalf("checkout failed: %d %s", env.StatusCode, env.Msg)
	}
	var receipt models.Receipt
	if err := json.Unmarshal(env.Data, &receipt); err != nil {
		t.Fatalf("bad receipt payload: %v", err)
	}
	if receipt.ReceiptNo == "" || receipt.Status != constants.ReceiptStatusPlaced {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}
	if receipt.TotalItems != 1 || receipt.FormattedTotal != "12.99" {
		t.Fatalf("unexpected totals: %+v", receipt)
	}
	if receipt.MinEstimateMinutes != 20 || receipt.MaxEstimateMinutes != 25 {
		t.Fatalf("unexpected estimates: %+v", receipt)
	}

	// The cart cookies are reset alongside the response.
	_, env = perform(t, r, http.MethodGet, "/api/receipts/"+receipt.ReceiptNo, "", nil)
	if env.StatusCode != response.CodeOK {
		t.Fatalf("receipt lookup failed: %d", env.StatusCode)
	}
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name != "cart" {
			continue
		}
		raw, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			t.Fatalf("bad cart cookie: %v", err)
		}
		var items []cart.LineItem
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			t.Fatalf("bad cart cookie payload: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("cart cookie not cleared after checkout: %s", raw)
		}
	}
}

func TestGetReceiptUnknown(t *testing.T) {
	r := newCheckoutTestRouter(newMemReceiptRepo())
	_, env := perform(t, r, http.MethodGet, "/api/receipts/RUNKNOWN", "", nil)
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("unknown receipt want not found got %d", env.StatusCode)
	}
}

func TestGetReceiptExpired(t *testing.T) {
	repo := newMemReceiptRepo()
	r := newCheckoutTestRouter(repo)

	w, _ := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)
	_, env := perform(t, r, http.MethodPost, "/api/checkout", "", w.Result().Cookies())
	var receipt models.Receipt
	if err := json.Unmarshal(env.Data, &receipt); err != nil {
		t.Fatalf("bad receipt payload: %v", err)
	}

	if err := repo.MarkExpired(receipt.ID); err != nil {
		t.Fatalf("mark expired: %v", err)
	}
	_, env = perform(t, r, http.MethodGet, "/api/receipts/"+receipt.ReceiptNo, "", nil)
	if env.StatusCode != response.CodeNotFound {
		t.Fatalf("expired receipt want not found got %d", env.StatusCode)
	}
}
