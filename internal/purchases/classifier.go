// Package purchases derives the facts that drive purchase management
// screens: what a user may cancel, remove, or edit, and which warnings to
// show. Every function is pure over the record it is given.
//
// Records are expected to be fully loaded. Where a fact depends on data
// that may still be loading (card details, expiry dates), the function
// documents the field it needs and answers conservatively when it is absent.
package purchases

import (
	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/i18n"
	"github.com/Veraticus/upkeep/internal/model"
)

// CardWarningMonths is the horizon, in whole months, inside which an
// expiring card that will not outlast the subscription raises a warning.
const CardWarningMonths = 3

// Classifier combines purchase records with the collaborators needed to
// classify them. The zero value is not usable; call New.
type Classifier struct {
	clock      common.Clock
	translator i18n.Translator
	products   ProductClassifier
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithClock sets the source of "now".
func WithClock(clock common.Clock) Option {
	return func(c *Classifier) {
		c.clock = clock
	}
}

// WithTranslator sets the translator used for labels and dates.
func WithTranslator(t i18n.Translator) Option {
	return func(c *Classifier) {
		c.translator = t
	}
}

// WithProducts sets the product family classifier.
func WithProducts(p ProductClassifier) Option {
	return func(c *Classifier) {
		c.products = p
	}
}

// New creates a Classifier using the system clock, English labels and the
// store catalog unless overridden.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		clock:      common.SystemClock{},
		translator: i18n.New("en"),
		products:   CatalogProducts{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreditCardExpiresBeforeSubscription reports whether the card lapses at
// least one whole month before the subscription does.
// Requires the card expiry and the purchase expiry; false when either is missing.
func (c *Classifier) CreditCardExpiresBeforeSubscription(p model.Purchase) bool {
	if !p.IsPaidWithCreditCard() || p.ExpiryDate == nil {
		return false
	}
	return monthDiff(*p.Payment.CreditCard.ExpiryDate, *p.ExpiryDate) < 0
}

// MonthsUntilCardExpires returns the whole months between now and the card
// expiry, negative once the card has expired. ok is false when the card
// details have not loaded.
func (c *Classifier) MonthsUntilCardExpires(p model.Purchase) (months int, ok bool) {
	if !p.HasCreditCardData() {
		return 0, false
	}
	return monthDiff(*p.Payment.CreditCard.ExpiryDate, c.clock.Now()), true
}

// ShowCreditCardExpiringWarning reports whether the user should be told to
// update a card that expires soon and before the subscription does.
func (c *Classifier) ShowCreditCardExpiringWarning(p model.Purchase) bool {
	if p.IsIncludedWithPlan() || !p.IsPaidWithCreditCard() {
		return false
	}
	if !c.CreditCardExpiresBeforeSubscription(p) {
		return false
	}
	months, ok := c.MonthsUntilCardExpires(p)
	return ok && months < CardWarningMonths
}

// IsCancelable reports whether the purchase can be cancelled, either with a
// refund or by switching off auto-renewal. Bundled and expired purchases
// cannot be cancelled.
func (c *Classifier) IsCancelable(p model.Purchase) bool {
	if p.IsIncludedWithPlan() {
		return false
	}
	if p.IsExpired() {
		return false
	}
	if p.IsRefundable {
		return true
	}
	return p.CanDisableAutoRenew
}

// IsRemovable reports whether an expired domain or domain mapping can be
// removed from the account.
func (c *Classifier) IsRemovable(p model.Purchase) bool {
	if p.IsIncludedWithPlan() {
		return false
	}
	isDomain := c.products.IsDomainRegistration(p) || c.products.IsDomainMapping(p)
	return isDomain && p.IsExpired()
}

// ShowEditPaymentDetails reports whether the card on file can be changed.
func (c *Classifier) ShowEditPaymentDetails(p model.Purchase) bool {
	return !p.IsExpired() &&
		!p.IsOneTimePurchase() &&
		!p.IsIncludedWithPlan() &&
		p.IsPaidWithCreditCard()
}

// PurchaseType returns the label describing what was bought, or "" when
// nothing fits. Earlier rules win.
func (c *Classifier) PurchaseType(p model.Purchase) string {
	switch {
	case c.products.IsTheme(p):
		return c.translator.Translate("Premium Theme")
	case c.products.IsPlan(p):
		return c.translator.Translate("Site Plan")
	case c.products.IsDomainRegistration(p):
		return p.ProductName
	default:
		return p.Meta
	}
}

// Name returns the display name: the registered domain for domain
// registrations, otherwise the product name.
func (c *Classifier) Name(p model.Purchase) string {
	if c.products.IsDomainRegistration(p) {
		return p.Meta
	}
	return p.ProductName
}

// SubscriptionEndDate formats the expiry as a long localized date.
// ok is false when the purchase carries no expiry.
func (c *Classifier) SubscriptionEndDate(p model.Purchase) (string, bool) {
	if p.ExpiryDate == nil {
		return "", false
	}
	return c.translator.LongDate(*p.ExpiryDate), true
}
