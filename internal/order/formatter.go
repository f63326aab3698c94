package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samm329-ui/ProjectAtithi/internal/cart"
)

// Summary renders the plain line-per-item order block used for
// on-screen display: one line per cart line, a blank line, then the
// total. Money is always two decimal places; same cart in, same bytes
// out.
func Summary(c *cart.Cart) string {
	var b strings.Builder
	for i, line := range c.Lines {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (x%d) - Rs. %.2f", line.Item.Name, line.Quantity, line.Item.Price*float64(line.Quantity))
	}
	fmt.Fprintf(&b, "\n\nTotal: Rs. %.2f", c.Subtotal())
	return b.String()
}

// Formatter builds outbound order messages and links for one
// restaurant identity.
type Formatter struct {
	brandName      string
	contactPhone   string
	whatsAppNumber string
}

func NewFormatter(brandName, contactPhone, whatsAppNumber string) *Formatter {
	return &Formatter{
		brandName:      brandName,
		contactPhone:   contactPhone,
		whatsAppNumber: whatsAppNumber,
	}
}

// Message renders the full WhatsApp order text: greeting, order
// summary, total, and the customer-details block. Address and pincode
// appear only for delivery; a requested date/time only when the form
// collected one. Input must already have passed Validate.
func (f *Formatter) Message(c *cart.Cart, customer Customer) string {
	var details []string
	for _, line := range c.Lines {
		details = append(details, fmt.Sprintf("%s (x%d) - Rs. %.2f",
			line.Item.Name, line.Quantity, line.Item.Price*float64(line.Quantity)))
	}

	mode := "Dine-in"
	if customer.Fulfillment == ModeDelivery {
		mode = "Delivery"
	}

	customerBlock := fmt.Sprintf("*Customer Details:*\nName: %s\nPhone: %s\nOrder Type: %s",
		customer.Name, customer.Phone, mode)
	if customer.Fulfillment == ModeDelivery {
		customerBlock += fmt.Sprintf("\nAddress: %s\nPincode: %s", customer.Address, customer.Pincode)
	}
	if customer.Date != "" {
		customerBlock += "\nDate: " + customer.Date
	}
	if customer.Time != "" {
		customerBlock += "\nTime: " + customer.Time
	}

	return fmt.Sprintf(
		"Hello %s, I would like to place the following order:\n\n*Order Summary:*\n%s\n\n*Total: Rs. %.2f*\n\n%s\n\nPlease confirm this order.",
		f.brandName,
		strings.Join(details, "\n"),
		c.Subtotal(),
		customerBlock,
	)
}

// WhatsAppURL wraps a message into a wa.me deep link. Spaces are
// escaped as %20, not +, so chat apps render the text verbatim.
func (f *Formatter) WhatsAppURL(message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", f.whatsAppNumber, encoded)
}

// TelURL is the dialer link; no payload beyond the number.
func (f *Formatter) TelURL() string {
	return "tel:" + f.contactPhone
}
