package cart

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const (
	// ItemsCookieName stores the URL-encoded JSON array of line items.
	ItemsCookieName = "cart"
	// CheckoutCookieName stores the URL-encoded JSON checkout snapshot.
	CheckoutCookieName = "cartState"

	defaultCookieTTLDays = 7
)

// CookieStore reads and writes the two cart cookies. Loads are fail-open: a
// missing, corrupt, or partially valid cookie yields the default state and
// never an error, since client-side storage may be tampered with or cleared
// between sessions.
type CookieStore struct {
	ttl  time.Duration
	path string
}

// NewCookieStore creates a store with the given expiry in days; values of
// zero or less fall back to the 7-day default.
func NewCookieStore(ttlDays int) *CookieStore {
	if ttlDays <= 0 {
		ttlDays = defaultCookieTTLDays
	}
	return &CookieStore{
		ttl:  time.Duration(ttlDays) * 24 * time.Hour,
		path: "/",
	}
}

// Load rehydrates the full cart state from the request cookies.
func (cs *CookieStore) Load(r *http.Request) State {
	state := NewState()
	state.Items = cs.LoadItems(r)
	snapshot := cs.LoadCheckout(r)
	state.CurrentStep = snapshot.CurrentStep
	state.DeliveryDetails = snapshot.DeliveryDetails
	return state
}

// LoadItems decodes the item-list cookie, returning an empty list on any
// failure.
func (cs *CookieStore) LoadItems(r *http.Request) []LineItem {
	raw, ok := readCookie(r, ItemsCookieName)
	if !ok {
		return []LineItem{}
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || items == nil {
		return []LineItem{}
	}
	return items
}

// LoadCheckout decodes the checkout-state cookie, merging missing fields
// from the default snapshot.
func (cs *CookieStore) LoadCheckout(r *http.Request) Snapshot {
	fallback := Snapshot{CurrentStep: StepCart, DeliveryDetails: DefaultDeliveryDetails()}
	raw, ok := readCookie(r, CheckoutCookieName)
	if !ok {
		return fallback
	}
	snapshot := fallback
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return fallback
	}
	if snapshot.CurrentStep == "" {
		snapshot.CurrentStep = StepCart
	}
	return snapshot
}

// SaveItems serializes the item list to its cookie, refreshing the expiry.
func (cs *CookieStore) SaveItems(w http.ResponseWriter, items []LineItem) {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	cs.writeCookie(w, ItemsCookieName, string(payload))
}

// SaveCheckout serializes the checkout snapshot to its cookie.
func (cs *CookieStore) SaveCheckout(w http.ResponseWriter, snapshot Snapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	cs.writeCookie(w, CheckoutCookieName, string(payload))
}

// Save writes both cookies from the given state.
func (cs *CookieStore) Save(w http.ResponseWriter, state State) {
	cs.SaveItems(w, state.Items)
	cs.SaveCheckout(w, state.Checkout())
}

func readCookie(r *http.Request, name string) (string, bool) {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return "", false
	}
	return decoded, true
}

func (cs *CookieStore) writeCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   url.QueryEscape(value),
		Path:    cs.path,
		Expires: time.Now().Add(cs.ttl),
	})
}
