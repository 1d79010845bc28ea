package cart

// Operations are pure: every method returns a new State and leaves the
// receiver untouched. None of them can fail; an unknown item id is a no-op
// and out-of-range input is coerced, never rejected.

// AddItem appends a new line with quantity 1, or increments the quantity of
// the existing line with the same id. The incoming quantity is ignored, and
// metadata on an existing line is never overwritten (first write wins).
func (s State) AddItem(item LineItem) State {
	next := s
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			next.Items = cloneItems(s.Items)
			next.Items[i].Quantity++
			return next
		}
	}
	item.Quantity = 1
	if item.Allergens == nil {
		item.Allergens = []Allergen{}
	}
	if item.Images == nil {
		item.Images = []string{}
	}
	next.Items = append(cloneItems(s.Items), item)
	return next
}

// RemoveItem drops the line with the given id, if present.
func (s State) RemoveItem(id string) State {
	next := s
	next.Items = filterItems(s.Items, id)
	return next
}

// DecrementQuantity lowers the quantity of the line by one; a line at
// quantity 1 is removed so no zero-quantity line ever exists.
func (s State) DecrementQuantity(id string) State {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		next := s
		if s.Items[i].Quantity > 1 {
			next.Items = cloneItems(s.Items)
			next.Items[i].Quantity--
		} else {
			next.Items = filterItems(s.Items, id)
		}
		return next
	}
	return s
}

// SetItemQuantity sets the quantity of an existing line directly. A quantity
// of zero or less removes the line. Unknown ids are a no-op.
func (s State) SetItemQuantity(id string, quantity int) State {
	for i := range s.Items {
		if s.Items[i].ID != id {
			continue
		}
		next := s
		if quantity <= 0 {
			next.Items = filterItems(s.Items, id)
		} else {
			next.Items = cloneItems(s.Items)
			next.Items[i].Quantity = quantity
		}
		return next
	}
	return s
}

// SetCheckoutStep sets the current step unconditionally. Transition legality
// is the caller's concern.
func (s State) SetCheckoutStep(step CheckoutStep) State {
	next := s
	next.CurrentStep = step
	return next
}

// SetDeliveryTime overwrites the selected time. A nil value coerces to the
// empty string; a non-empty time unchecks "coming now".
func (s State) SetDeliveryTime(t *string) State {
	next := s
	next.DeliveryDetails.SelectedTime = deref(t)
	if next.DeliveryDetails.SelectedTime != "" {
		next.DeliveryDetails.IsComingNow = false
	}
	return next
}

// SetDeliveryTable overwrites the selected table. A nil value coerces to the
// empty string; a non-empty table unchecks "select table later".
func (s State) SetDeliveryTable(table *string) State {
	next := s
	next.DeliveryDetails.SelectedTable = deref(table)
	if next.DeliveryDetails.SelectedTable != "" {
		next.DeliveryDetails.IsSelectingTableLater = false
	}
	return next
}

// SetComingNow toggles the "coming now" flag; enabling it clears any
// selected time.
func (s State) SetComingNow(flag bool) State {
	next := s
	next.DeliveryDetails.IsComingNow = flag
	if flag {
		next.DeliveryDetails.SelectedTime = ""
	}
	return next
}

// SetSelectingTableLater toggles the "select table later" flag; enabling it
// clears any selected table.
func (s State) SetSelectingTableLater(flag bool) State {
	next := s
	next.DeliveryDetails.IsSelectingTableLater = flag
	if flag {
		next.DeliveryDetails.SelectedTable = ""
	}
	return next
}

// Clear resets the cart to the initial state: no items, step back to "cart",
// delivery details all unset.
func (s State) Clear() State {
	return NewState()
}

func cloneItems(items []LineItem) []LineItem {
	cloned := make([]LineItem, len(items))
	copy(cloned, items)
	return cloned
}

func filterItems(items []LineItem, dropID string) []LineItem {
	kept := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != dropID {
			kept = append(kept, item)
		}
	}
	return kept
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
