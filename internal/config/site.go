package config

import "os"

// Site is the restaurant's public identity, used when composing
// outbound order links. Values come from the environment so a
// deployment can re-point the numbers without a rebuild.
type Site struct {
	BrandName      string
	ContactPhone   string // digits for the tel: link
	WhatsAppNumber string // country code + number for wa.me
}

func LoadSite() Site {
	return Site{
		BrandName:      getenv("BRAND_NAME", "Atithi"),
		ContactPhone:   getenv("CONTACT_PHONE", "8250104315"),
		WhatsAppNumber: getenv("WHATSAPP_NUMBER", "918250104315"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
