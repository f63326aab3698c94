package order

// FieldErrors maps a form field to its inline validation message.
type FieldErrors map[string]string

// Validate enforces the order-form rules before any formatting
// happens. The formatter trusts its input, so this is the one gate.
func Validate(customer Customer) FieldErrors {
	errs := FieldErrors{}

	if len(customer.Name) < 2 {
		errs["name"] = "Name must be at least 2 characters."
	}
	if len(customer.Phone) < 10 || len(customer.Phone) > 15 {
		errs["phone"] = "Please enter a valid 10-digit phone number."
	}

	switch customer.Fulfillment {
	case ModeDelivery:
		if len(customer.Address) < 5 {
			errs["address"] = "Address is required for delivery."
		}
		if len(customer.Pincode) < 6 {
			errs["pincode"] = "A valid 6-digit pincode is required for delivery."
		}
	case ModeDineIn:
		// address and pincode are not collected for dine-in
	default:
		errs["fulfillment"] = "Please select delivery or dine-in."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
