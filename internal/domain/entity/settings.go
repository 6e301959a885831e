package entity

import "time"

// ShopSettings holds the issuer identity shown on invoices. The builder
// snapshots it into each invoice at build time; changing it later must
// not alter invoices already in the store.
type ShopSettings struct {
	ShopName    string    `json:"shop_name"`
	ShopAddress string    `json:"shop_address"`
	ShopPhone   string    `json:"shop_phone"`
	FooterNote  string    `json:"footer_note"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Issuer returns the snapshot embedded into a built invoice.
func (s *ShopSettings) Issuer() Issuer {
	return Issuer{
		ShopName:    s.ShopName,
		ShopAddress: s.ShopAddress,
		ShopPhone:   s.ShopPhone,
	}
}
