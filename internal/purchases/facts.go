package purchases

import "github.com/Veraticus/upkeep/internal/model"

// Facts is every derived fact about one purchase.
type Facts struct {
	Name                    string
	Type                    string
	PaymentLogo             string
	SubscriptionEndDate     string
	MonthsUntilCardExpires  int
	HasCardExpiry           bool
	Expired                 bool
	IncludedWithPlan        bool
	OneTimePurchase         bool
	Expiring                bool
	Renewing                bool
	HasPaymentMethod        bool
	Cancelable              bool
	Removable               bool
	Refundable              bool
	Renewable               bool
	Redeemable              bool
	PrivateRegistration     bool
	EditPaymentDetails      bool
	CardExpiresBeforeRenew  bool
	CreditCardExpiryWarning bool
}

// Facts evaluates every predicate for p.
func (c *Classifier) Facts(p model.Purchase) Facts {
	months, hasCard := c.MonthsUntilCardExpires(p)
	endDate, _ := c.SubscriptionEndDate(p)

	return Facts{
		Name:                    c.Name(p),
		Type:                    c.PurchaseType(p),
		PaymentLogo:             p.PaymentLogoType(),
		SubscriptionEndDate:     endDate,
		MonthsUntilCardExpires:  months,
		HasCardExpiry:           hasCard,
		Expired:                 p.IsExpired(),
		IncludedWithPlan:        p.IsIncludedWithPlan(),
		OneTimePurchase:         p.IsOneTimePurchase(),
		Expiring:                p.IsExpiring(),
		Renewing:                p.IsRenewing(),
		HasPaymentMethod:        p.HasPaymentMethod(),
		Cancelable:              c.IsCancelable(p),
		Removable:               c.IsRemovable(p),
		Refundable:              p.IsRefundable,
		Renewable:               p.IsRenewable,
		Redeemable:              p.IsRedeemable,
		PrivateRegistration:     p.HasPrivateRegistration,
		EditPaymentDetails:      c.ShowEditPaymentDetails(p),
		CardExpiresBeforeRenew:  c.CreditCardExpiresBeforeSubscription(p),
		CreditCardExpiryWarning: c.ShowCreditCardExpiringWarning(p),
	}
}
