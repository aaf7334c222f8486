// Package testutil provides fluent builders for test records.
//
// Example usage:
//
//	p := testutil.NewPurchase(100).
//		OnSite(1, "Ada's Garden", "adasgarden.example").
//		Product("WordPress.com Premium", "value_bundle").
//		Status(model.ExpiryStatusAutoRenewing, testutil.Date(2027, 1, 15)).
//		PaidByCard("visa", testutil.Date(2026, 11, 15)).
//		Build()
package testutil

import (
	"time"

	"github.com/Veraticus/upkeep/internal/model"
)

// Date returns midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// PurchaseBuilder assembles a model.Purchase.
type PurchaseBuilder struct {
	p model.Purchase
}

// NewPurchase starts a purchase with id on site 1, with no payment recorded.
func NewPurchase(id int64) *PurchaseBuilder {
	return &PurchaseBuilder{p: model.Purchase{
		ID:      id,
		SiteID:  1,
		Payment: model.Payment{Type: model.PaymentTypeNone},
	}}
}

// OnSite sets the owning site.
func (b *PurchaseBuilder) OnSite(siteID int64, siteName, domain string) *PurchaseBuilder {
	b.p.SiteID = siteID
	b.p.SiteName = siteName
	b.p.Domain = domain
	return b
}

// Product sets the product name and slug.
func (b *PurchaseBuilder) Product(name, slug string) *PurchaseBuilder {
	b.p.ProductName = name
	b.p.ProductSlug = slug
	return b
}

// DomainRegistration marks the purchase as registering domain.
func (b *PurchaseBuilder) DomainRegistration(domain string) *PurchaseBuilder {
	b.p.IsDomainRegistration = true
	b.p.ProductName = "Domain Registration"
	b.p.Meta = domain
	return b
}

// Status sets the expiry status and, when non-zero, the expiry date.
func (b *PurchaseBuilder) Status(status model.ExpiryStatus, expiry time.Time) *PurchaseBuilder {
	b.p.ExpiryStatus = status
	b.p.ExpiryDate = nil
	if !expiry.IsZero() {
		b.p.ExpiryDate = &expiry
	}
	return b
}

// PaidByCard records a credit card; a zero expiry leaves the card unloaded.
func (b *PurchaseBuilder) PaidByCard(brand string, expiry time.Time) *PurchaseBuilder {
	card := &model.CreditCard{Type: brand}
	if !expiry.IsZero() {
		card.ExpiryDate = &expiry
	}
	b.p.Payment = model.Payment{Type: model.PaymentTypeCreditCard, CreditCard: card}
	return b
}

// PaidByPaypal records PayPal as the payment method.
func (b *PurchaseBuilder) PaidByPaypal() *PurchaseBuilder {
	b.p.Payment = model.Payment{Type: model.PaymentTypePaypal}
	return b
}

// Refundable sets the refund flag.
func (b *PurchaseBuilder) Refundable() *PurchaseBuilder {
	b.p.IsRefundable = true
	return b
}

// AutoRenewOptional allows auto-renewal to be switched off.
func (b *PurchaseBuilder) AutoRenewOptional() *PurchaseBuilder {
	b.p.CanDisableAutoRenew = true
	return b
}

// Build returns the purchase.
func (b *PurchaseBuilder) Build() model.Purchase {
	return b.p
}
