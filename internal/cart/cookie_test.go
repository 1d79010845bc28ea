package cart

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// roundTrip saves the state to a recorder and reads it back from a request
// carrying the resulting cookies.
func roundTrip(t *testing.T, store *CookieStore, state State) State {
	t.Helper()
	w := httptest.NewRecorder()
	store.Save(w, state)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		r.AddCookie(cookie)
	}
	return store.Load(r)
}

func TestCookieRoundTrip(t *testing.T) {
	store := NewCookieStore(7)
	slot := "18:30"
	state := NewState().
		AddItem(lineItem("1", 12.99)).
		AddItem(lineItem("1", 12.99)).
		AddItem(lineItem("2", 15.99)).
		SetCheckoutStep(StepDelivery).
		SetDeliveryTime(&slot)

	loaded := roundTrip(t, store, state)

	if loaded.TotalItems() != state.TotalItems() {
		t.Fatalf("total items want %d got %d", state.TotalItems(), loaded.TotalItems())
	}
	if loaded.CurrentStep != StepDelivery {
		t.Fatalf("step want delivery got %s", loaded.CurrentStep)
	}
	if loaded.DeliveryDetails.SelectedTime != "18:30" {
		t.Fatalf("time want 18:30 got %q", loaded.DeliveryDetails.SelectedTime)
	}
	if !loaded.Total().Equal(state.Total()) {
		t.Fatalf("total want %s got %s", state.Total(), loaded.Total())
	}
	if loaded.Items[0].NameFa != state.Items[0].NameFa {
		t.Fatalf("farsi name should survive the round trip, got %q", loaded.Items[0].NameFa)
	}
}

func TestCookieValuesAreURLEncoded(t *testing.T) {
	store := NewCookieStore(7)
	w := httptest.NewRecorder()
	store.Save(w, NewState().AddItem(lineItem("1", 12.99)))

	for _, cookie := range w.Result().Cookies() {
		if cookie.Value == "" {
			t.Fatalf("cookie %s should not be empty", cookie.Name)
		}
		// Serialized JSON contains quotes and braces; the stored value
		// must carry them percent-encoded.
		if decoded, err := url.QueryUnescape(cookie.Value); err != nil || decoded == cookie.Value {
			t.Fatalf("cookie %s should be URL-encoded JSON, got %q", cookie.Name, cookie.Value)
		}
	}
}

func TestCookieExpirySevenDays(t *testing.T) {
	store := NewCookieStore(0) // zero falls back to the default
	w := httptest.NewRecorder()
	store.Save(w, NewState())

	want := time.Now().Add(7 * 24 * time.Hour)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Expires.Before(want.Add(-time.Minute)) || cookie.Expires.After(want.Add(time.Minute)) {
			t.Fatalf("cookie %s expiry want ~7 days, got %s", cookie.Name, cookie.Expires)
		}
		if cookie.Path != "/" {
			t.Fatalf("cookie %s path want / got %s", cookie.Name, cookie.Path)
		}
	}
}

func TestLoadMissingCookiesYieldsDefaults(t *testing.T) {
	store := NewCookieStore(7)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	state := store.Load(r)
	if !state.IsEmpty() {
		t.Fatal("missing cookies should load the empty cart")
	}
	if state.CurrentStep != StepCart {
		t.Fatalf("step want cart got %s", state.CurrentStep)
	}
	if state.Items == nil {
		t.Fatal("items should be an empty slice, not nil")
	}
}

func TestLoadCorruptItemsCookieFailsOpen(t *testing.T) {
	store := NewCookieStore(7)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: ItemsCookieName, Value: url.QueryEscape("{definitely not an array")})

	items := store.LoadItems(r)
	if len(items) != 0 {
		t.Fatalf("corrupt cookie should load empty, got %d items", len(items))
	}
}

func TestLoadPartialCheckoutCookieMergesDefaults(t *testing.T) {
	store := NewCookieStore(7)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{
		Name:  CheckoutCookieName,
		Value: url.QueryEscape(`{"deliveryDetails":{"isComingNow":true}}`),
	})

	snapshot := store.LoadCheckout(r)
	if snapshot.CurrentStep != StepCart {
		t.Fatalf("missing step should default to cart, got %s", snapshot.CurrentStep)
	}
	if !snapshot.DeliveryDetails.IsComingNow {
		t.Fatal("provided fields should survive the merge")
	}
}

func TestLoadCorruptCheckoutCookieFailsOpen(t *testing.T) {
	store := NewCookieStore(7)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CheckoutCookieName, Value: url.QueryEscape("not json at all")})

	snapshot := store.LoadCheckout(r)
	if snapshot.CurrentStep != StepCart || snapshot.DeliveryDetails != DefaultDeliveryDetails() {
		t.Fatalf("corrupt cookie should load defaults, got %+v", snapshot)
	}
}

func TestItemsCookieFieldNames(t *testing.T) {
	store := NewCookieStore(7)
	w := httptest.NewRecorder()
	store.SaveItems(w, []LineItem{lineItem("1", 12.99)})

	var raw string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == ItemsCookieName {
			decoded, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				t.Fatalf("unescape: %v", err)
			}
			raw = decoded
		}
	}
	for _, field := range []string{
		`"id"`, `"name_en"`, `"name_fa"`, `"price_en"`, `"price_fa"`,
		`"quantity"`, `"estimated_delivery_time_minutes"`,
	} {
		if !strings.Contains(raw, field) {
			t.Fatalf("cookie payload missing field %s: %s", field, raw)
		}
	}
	// The numeric price must serialize as a bare number, not a string.
	if strings.Contains(raw, `"price_en":"`) {
		t.Fatalf("price_en should be a JSON number: %s", raw)
	}
}
