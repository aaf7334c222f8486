// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"time"
)

// ExpiryStatus is the server-supplied lifecycle stage of a purchase.
type ExpiryStatus string

// Expiry status constants. Values match the billing API.
const (
	ExpiryStatusExpired         ExpiryStatus = "expired"
	ExpiryStatusIncluded        ExpiryStatus = "included"
	ExpiryStatusOneTimePurchase ExpiryStatus = "oneTimePurchase"
	ExpiryStatusCardExpired     ExpiryStatus = "cardExpired"
	ExpiryStatusCardExpiring    ExpiryStatus = "cardExpiring"
	ExpiryStatusManualRenew     ExpiryStatus = "manualRenew"
	ExpiryStatusExpiring        ExpiryStatus = "expiring"
	ExpiryStatusActive          ExpiryStatus = "active"
	ExpiryStatusAutoRenewing    ExpiryStatus = "autoRenewing"

	// ExpiryStatusUnknown stands for any status the billing API sends that
	// this package does not know about.
	ExpiryStatusUnknown ExpiryStatus = "unknown"
)

// AllExpiryStatuses returns every known expiry status.
func AllExpiryStatuses() []ExpiryStatus {
	return []ExpiryStatus{
		ExpiryStatusExpired,
		ExpiryStatusIncluded,
		ExpiryStatusOneTimePurchase,
		ExpiryStatusCardExpired,
		ExpiryStatusCardExpiring,
		ExpiryStatusManualRenew,
		ExpiryStatusExpiring,
		ExpiryStatusActive,
		ExpiryStatusAutoRenewing,
	}
}

// ParseExpiryStatus maps a wire value onto the closed enum.
// Unrecognized values map to ExpiryStatusUnknown and ok is false.
func ParseExpiryStatus(s string) (ExpiryStatus, bool) {
	for _, status := range AllExpiryStatuses() {
		if string(status) == s {
			return status, true
		}
	}
	return ExpiryStatusUnknown, false
}

// PaymentType identifies how a purchase is paid for.
type PaymentType string

// Payment type constants.
const (
	PaymentTypePaypal     PaymentType = "paypal"
	PaymentTypeCreditCard PaymentType = "credit_card"
	PaymentTypeNone       PaymentType = "none"
	PaymentTypeOther      PaymentType = "other"
)

// ParsePaymentType maps a wire value onto the closed enum. An empty value
// means no payment method is recorded.
func ParsePaymentType(s string) PaymentType {
	switch s {
	case "":
		return PaymentTypeNone
	case string(PaymentTypePaypal):
		return PaymentTypePaypal
	case string(PaymentTypeCreditCard):
		return PaymentTypeCreditCard
	default:
		return PaymentTypeOther
	}
}

// CreditCard is the stored card backing a purchase.
type CreditCard struct {
	ExpiryDate *time.Time // nil until the card details have loaded
	Type       string     // Card brand, e.g. "visa"
	Number     string     // Last four digits
}

// Payment describes the payment method recorded for a purchase.
type Payment struct {
	CreditCard *CreditCard
	Type       PaymentType
}

// Purchase is a billing record for a product or subscription owned on a site.
// Records are read-only snapshots supplied by the billing API.
type Purchase struct {
	ExpiryDate   *time.Time
	Payment      Payment
	SiteName     string
	Domain       string
	ProductName  string
	ProductSlug  string
	Meta         string // Registered domain name for domain registrations
	ExpiryStatus ExpiryStatus
	ID           int64
	SiteID       int64

	// Authoritative flags from the billing API. They are combined, never derived.
	IsDomainRegistration   bool
	IsRefundable           bool
	IsRenewable            bool
	IsRedeemable           bool
	CanDisableAutoRenew    bool
	HasPrivateRegistration bool
}

// IsExpired reports whether the subscription has lapsed.
func (p Purchase) IsExpired() bool {
	return p.ExpiryStatus == ExpiryStatusExpired
}

// IsIncludedWithPlan reports whether the purchase is bundled into a plan.
func (p Purchase) IsIncludedWithPlan() bool {
	return p.ExpiryStatus == ExpiryStatusIncluded
}

// IsOneTimePurchase reports whether the purchase never renews.
func (p Purchase) IsOneTimePurchase() bool {
	return p.ExpiryStatus == ExpiryStatusOneTimePurchase
}

// IsExpiring reports whether the purchase will lapse without user action.
func (p Purchase) IsExpiring() bool {
	switch p.ExpiryStatus {
	case ExpiryStatusCardExpired, ExpiryStatusCardExpiring, ExpiryStatusManualRenew, ExpiryStatusExpiring:
		return true
	default:
		return false
	}
}

// IsRenewing reports whether the purchase renews automatically.
func (p Purchase) IsRenewing() bool {
	switch p.ExpiryStatus {
	case ExpiryStatusActive, ExpiryStatusAutoRenewing:
		return true
	default:
		return false
	}
}

// IsPaidWithPaypal reports whether PayPal is the recorded payment method.
func (p Purchase) IsPaidWithPaypal() bool {
	return p.Payment.Type == PaymentTypePaypal
}

// HasCreditCardData reports whether the card details have loaded.
// It must hold before any card expiry comparison is made.
func (p Purchase) HasCreditCardData() bool {
	return p.Payment.Type == PaymentTypeCreditCard &&
		p.Payment.CreditCard != nil &&
		p.Payment.CreditCard.ExpiryDate != nil
}

// IsPaidWithCreditCard reports whether a fully loaded card pays for the purchase.
func (p Purchase) IsPaidWithCreditCard() bool {
	return p.Payment.Type == PaymentTypeCreditCard && p.HasCreditCardData()
}

// HasPaymentMethod reports whether any usable payment method is recorded.
func (p Purchase) HasPaymentMethod() bool {
	return p.IsPaidWithPaypal() || p.IsPaidWithCreditCard()
}

// PaymentLogoType returns the card brand, "paypal", or "" when no payment
// method is recorded.
func (p Purchase) PaymentLogoType() string {
	if p.IsPaidWithCreditCard() {
		return p.Payment.CreditCard.Type
	}
	if p.IsPaidWithPaypal() {
		return string(PaymentTypePaypal)
	}
	return ""
}

// Validate ensures the record is complete enough to classify.
func (p *Purchase) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("purchase id is required")
	}
	if p.SiteID <= 0 {
		return fmt.Errorf("purchase %d: site id is required", p.ID)
	}
	if p.Payment.Type == PaymentTypeCreditCard && p.Payment.CreditCard == nil {
		return fmt.Errorf("purchase %d: credit card payment without card details", p.ID)
	}
	if p.Payment.Type != PaymentTypeCreditCard && p.Payment.CreditCard != nil {
		return fmt.Errorf("purchase %d: card details on a %s payment", p.ID, p.Payment.Type)
	}
	return nil
}
