package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/http/response"
	"github.com/sofreh-next/internal/provider"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

func newCartTestRouter(container *provider.Container) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if container.CookieStore == nil {
		container.CookieStore = cart.NewCookieStore(7)
	}
	handler := New(container)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/cart", handler.GetCart)
	api.POST("/cart/items", handler.AddCartItem)
	api.POST("/cart/items/:id/decrement", handler.DecrementCartItem)
	api.PUT("/cart/items/:id", handler.SetCartItemQuantity)
	api.DELETE("/cart/items/:id", handler.RemoveCartItem)
	api.DELETE("/cart", handler.ClearCart)
	api.PUT("/cart/step", handler.SetCheckoutStep)
	api.PUT("/cart/delivery", handler.SetDelivery)
	api.GET("/menu/search", handler.Search)
	api.GET("/search", handler.Search)
	return r
}

// perform runs one request, carrying over the cookies from earlier calls,
// the way a browser would.
func perform(t *testing.T, r *gin.Engine, method, target, body string, cookies []*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v body=%s", err, w.Body.String())
	}
	return w, env
}

func cartView(t *testing.T, env envelope) CartView {
	t.Helper()
	var view CartView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("bad cart view: %v data=%s", err, env.Data)
	}
	return view
}

const burgerBody = `{"id":"1","name_en":"Classic Cheeseburger","name_fa":"چیزبرگر کلاسیک","price_en":12.99,"price_fa":"۱۲.۹۹","estimated_delivery_time_minutes":20}`

func TestAddCartItemIncrementsAcrossRequests(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, env := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)
	if env.StatusCode != response.CodeOK {
		t.Fatalf("want ok got %d %s", env.StatusCode, env.Msg)
	}
	view := cartView(t, env)
	if view.TotalItems != 1 || view.UniqueItems != 1 || view.IsEmpty {
		t.Fatalf("unexpected view after first add: %+v", view)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookies written")
	}

	// The same item again, with the cookies replayed, bumps the quantity.
	_, env = perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, cookies)
	view = cartView(t, env)
	if view.TotalItems != 2 || view.UniqueItems != 1 {
		t.Fatalf("unexpected view after second add: %+v", view)
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("want quantity 2 got %d", view.Items[0].Quantity)
	}
}

func TestAddCartItemRejectsMissingID(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})
	_, env := perform(t, r, http.MethodPost, "/api/cart/items", `{"name_en":"x"}`, nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("want bad request got %d", env.StatusCode)
	}
}

func TestCartLineMutations(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, _ := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)
	cookies := w.Result().Cookies()

	w, env := perform(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":5}`, cookies)
	if view := cartView(t, env); view.TotalItems != 5 {
		t.Fatalf("want quantity 5 got %+v", view)
	}
	cookies = w.Result().Cookies()

	w, env = perform(t, r, http.MethodPost, "/api/cart/items/1/decrement", "", cookies)
	if view := cartView(t, env); view.TotalItems != 4 {
		t.Fatalf("want quantity 4 got %+v", view)
	}
	cookies = w.Result().Cookies()

	_, env = perform(t, r, http.MethodDelete, "/api/cart/items/1", "", cookies)
	if view := cartView(t, env); !view.IsEmpty || len(view.Items) != 0 {
		t.Fatalf("want empty cart got %+v", view)
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, _ := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)
	_, env := perform(t, r, http.MethodPut, "/api/cart/items/1", `{"quantity":0}`, w.Result().Cookies())
	if view := cartView(t, env); !view.IsEmpty {
		t.Fatalf("want empty cart got %+v", view)
	}
}

func TestClearCartResetsEverything(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, _ := perform(t, r, http.MethodPost, "/api/cart/items", burgerBody, nil)
	w2, _ := perform(t, r, http.MethodPut, "/api/cart/step", `{"step":"delivery"}`, w.Result().Cookies())

	_, env := perform(t, r, http.MethodDelete, "/api/cart", "", w2.Result().Cookies())
	view := cartView(t, env)
	if !view.IsEmpty || view.CurrentStep != cart.StepCart {
		t.Fatalf("clear did not reset: %+v", view)
	}
}

func TestSetCheckoutStep(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	_, env := perform(t, r, http.MethodPut, "/api/cart/step", `{"step":"delivery"}`, nil)
	if view := cartView(t, env); view.CurrentStep != cart.StepDelivery {
		t.Fatalf("want delivery step got %+v", view)
	}

	_, env = perform(t, r, http.MethodPut, "/api/cart/step", `{"step":"refund"}`, nil)
	if env.StatusCode != response.CodeBadRequest {
		t.Fatalf("unknown step want bad request got %d", env.StatusCode)
	}
}

func TestSetDeliveryTimeClearsComingNow(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, env := perform(t, r, http.MethodPut, "/api/cart/delivery", `{"isComingNow":true}`, nil)
	if view := cartView(t, env); !view.DeliveryDetails.IsComingNow {
		t.Fatalf("coming-now not set: %+v", view)
	}

	_, env = perform(t, r, http.MethodPut, "/api/cart/delivery", `{"selectedTime":"19:30"}`, w.Result().Cookies())
	view := cartView(t, env)
	if view.DeliveryDetails.SelectedTime != "19:30" || view.DeliveryDetails.IsComingNow {
		t.Fatalf("picking a time should clear coming-now: %+v", view)
	}
}

func TestSetDeliveryTableClearsTableLater(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})

	w, _ := perform(t, r, http.MethodPut, "/api/cart/delivery", `{"isSelectingTableLater":true}`, nil)
	_, env := perform(t, r, http.MethodPut, "/api/cart/delivery", `{"selectedTable":"7"}`, w.Result().Cookies())
	view := cartView(t, env)
	if view.DeliveryDetails.SelectedTable != "7" || view.DeliveryDetails.IsSelectingTableLater {
		t.Fatalf("picking a table should clear table-later: %+v", view)
	}
}

func TestGetCartWithoutCookies(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})
	_, env := perform(t, r, http.MethodGet, "/api/cart", "", nil)
	view := cartView(t, env)
	if !view.IsEmpty || view.CurrentStep != cart.StepCart || view.Items == nil {
		t.Fatalf("unexpected default cart: %+v", view)
	}
}

func TestSearchRequiresKeyword(t *testing.T) {
	r := newCartTestRouter(&provider.Container{})
	for _, target := range []string{"/api/search", "/api/search?q=", "/api/menu/search", "/api/menu/search?q="} {
		_, env := perform(t, r, http.MethodGet, target, "", nil)
		if env.StatusCode != response.CodeBadRequest {
			t.Fatalf("%s: want bad request got %d", target, env.StatusCode)
		}
	}
}
