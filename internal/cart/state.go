package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CheckoutStep is the current stage of the checkout flow.
type CheckoutStep string

const (
	StepCart     CheckoutStep = "cart"
	StepDelivery CheckoutStep = "delivery"
	StepPayment  CheckoutStep = "payment"
)

// Price is a line-item unit price. It serializes as a bare JSON number so the
// cookie layout stays compatible with the browser cart.
type Price struct {
	decimal.Decimal
}

// NewPrice creates a price from a decimal.
func NewPrice(amount decimal.Decimal) Price {
	return Price{Decimal: amount}
}

// NewPriceFromFloat creates a price from a float.
func NewPriceFromFloat(amount float64) Price {
	return Price{Decimal: decimal.NewFromFloat(amount)}
}

// MarshalJSON emits an unquoted number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

// UnmarshalJSON accepts either a number or a quoted string.
func (p *Price) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		p.Decimal = d
		return nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return err
	}
	p.Decimal = d
	return nil
}

// NutritionalInfo carries the per-item nutrition facts.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

// Allergen is one bilingual allergen entry.
type Allergen struct {
	En string `json:"en"`
	Fa string `json:"fa"`
}

// LineItem is one product line in the cart, keyed by product id.
// JSON field names match the browser cookie layout.
type LineItem struct {
	ID               string          `json:"id"`
	NameEn           string          `json:"name_en"`
	NameFa           string          `json:"name_fa"`
	PriceEn          Price           `json:"price_en"`
	PriceFa          string          `json:"price_fa"`
	Quantity         int             `json:"quantity"`
	DescriptionEn    string          `json:"description_en"`
	DescriptionFa    string          `json:"description_fa"`
	IsPopular        bool            `json:"is_popular"`
	Category         string          `json:"category"`
	Nutrition        NutritionalInfo `json:"nutritional_info"`
	Allergens        []Allergen      `json:"allergens"`
	Images           []string        `json:"images"`
	EstimatedMinutes int             `json:"estimated_delivery_time_minutes"`
}

// DeliveryDetails holds the selections made during the delivery step.
type DeliveryDetails struct {
	SelectedTime          string `json:"selectedTime"`
	SelectedTable         string `json:"selectedTable"`
	IsComingNow           bool   `json:"isComingNow"`
	IsSelectingTableLater bool   `json:"isSelectingTableLater"`
}

// DefaultDeliveryDetails returns the all-unset delivery details.
func DefaultDeliveryDetails() DeliveryDetails {
	return DeliveryDetails{}
}

// Snapshot is the persisted pairing of checkout step and delivery details.
type Snapshot struct {
	CurrentStep     CheckoutStep    `json:"currentStep"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
}

// State is the cart aggregate: line items plus the checkout snapshot.
type State struct {
	Items           []LineItem      `json:"items"`
	CurrentStep     CheckoutStep    `json:"currentStep"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
}

// NewState returns the empty initial state.
func NewState() State {
	return State{
		Items:           []LineItem{},
		CurrentStep:     StepCart,
		DeliveryDetails: DefaultDeliveryDetails(),
	}
}

// Checkout returns the current checkout snapshot.
func (s State) Checkout() Snapshot {
	return Snapshot{
		CurrentStep:     s.CurrentStep,
		DeliveryDetails: s.DeliveryDetails,
	}
}
