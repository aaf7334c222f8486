package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/upkeep/internal/i18n"
	"github.com/Veraticus/upkeep/internal/importer"
	"github.com/Veraticus/upkeep/internal/model"
	"github.com/Veraticus/upkeep/internal/purchases"
)

const none = "-"

// RenderSiteGroups writes one table per site group.
func RenderSiteGroups(w io.Writer, groups []model.SiteGroup, c *purchases.Classifier, t i18n.Translator) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No purchases in the snapshot."))
		return err
	}

	for i, group := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("%s %s %s", SiteIcon, group.Title, SubtleStyle.Render("("+group.Slug+")"))
		if _, err := fmt.Fprintln(w, TitleStyle.Render(title)); err != nil {
			return err
		}
		if err := renderPurchaseTable(w, group.Purchases, c, t); err != nil {
			return err
		}
	}
	return nil
}

func renderPurchaseTable(w io.Writer, list []model.Purchase, c *purchases.Classifier, t i18n.Translator) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("ID"),
		HeaderStyle.Render("Name"),
		HeaderStyle.Render("Type"),
		HeaderStyle.Render("Status"),
		HeaderStyle.Render("Payment"),
		HeaderStyle.Render("Expires"),
		HeaderStyle.Render("Notes"))

	for _, p := range list {
		facts := c.Facts(p)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			orNone(facts.Name),
			orNone(facts.Type),
			statusCell(p),
			orNone(facts.PaymentLogo),
			orNone(facts.SubscriptionEndDate),
			notes(facts, t))
	}

	return tw.Flush()
}

func statusCell(p model.Purchase) string {
	status := string(p.ExpiryStatus)
	switch {
	case p.IsExpired():
		return ErrorStyle.Render(status)
	case p.IsExpiring():
		return WarningStyle.Render(status)
	case p.IsRenewing():
		return SuccessStyle.Render(status)
	default:
		return status
	}
}

func notes(f purchases.Facts, t i18n.Translator) string {
	var out []string
	if f.CreditCardExpiryWarning {
		out = append(out, WarningStyle.Render(t.Translate("Credit card expiring soon")))
	}
	if f.Cancelable {
		out = append(out, "cancelable")
	}
	if f.Removable {
		out = append(out, "removable")
	}
	if len(out) == 0 {
		return none
	}
	return strings.Join(out, ", ")
}

// RenderFacts writes every derived fact for one purchase.
func RenderFacts(w io.Writer, p model.Purchase, f purchases.Facts) error {
	months := none
	if f.HasCardExpiry {
		months = strconv.Itoa(f.MonthsUntilCardExpires)
	}

	rows := [][2]string{
		{"Name", orNone(f.Name)},
		{"Type", orNone(f.Type)},
		{"Site", fmt.Sprintf("%s (%d)", orNone(p.Domain), p.SiteID)},
		{"Expiry status", string(p.ExpiryStatus)},
		{"Subscription ends", orNone(f.SubscriptionEndDate)},
		{"Payment", orNone(f.PaymentLogo)},
		{"Months until card expires", months},
		{"Expired", yesNo(f.Expired)},
		{"Included with plan", yesNo(f.IncludedWithPlan)},
		{"One-time purchase", yesNo(f.OneTimePurchase)},
		{"Expiring", yesNo(f.Expiring)},
		{"Renewing", yesNo(f.Renewing)},
		{"Has payment method", yesNo(f.HasPaymentMethod)},
		{"Cancelable", yesNo(f.Cancelable)},
		{"Removable", yesNo(f.Removable)},
		{"Refundable", yesNo(f.Refundable)},
		{"Renewable", yesNo(f.Renewable)},
		{"Redeemable", yesNo(f.Redeemable)},
		{"Private registration", yesNo(f.PrivateRegistration)},
		{"Edit payment details", yesNo(f.EditPaymentDetails)},
		{"Card expires before subscription", yesNo(f.CardExpiresBeforeRenew)},
		{"Card expiring warning", yesNo(f.CreditCardExpiryWarning)},
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", SubtleStyle.Render(row[0]), row[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, RenderBox(fmt.Sprintf("Purchase %d", p.ID), strings.TrimRight(b.String(), "\n")))
	return err
}

// RenderImporterHeader writes the state of an importer's master control.
func RenderImporterHeader(w io.Writer, status model.ImporterStatus, h importer.Header) error {
	control := fmt.Sprintf("[ %s ]", h.Label)
	switch {
	case !h.CanCancel:
		control = SubtleStyle.Render(control + " (disabled)")
	case h.Primary:
		control = TitleStyle.Render(control)
	}

	id := status.ImporterID
	if id == "" {
		id = none
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("Importer"), id)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("Type"), status.Type)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("State"), status.ImporterState.Name())
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("Category"), h.Category)
	fmt.Fprintf(tw, "%s\t%s\n", HeaderStyle.Render("Control"), control)
	return tw.Flush()
}

func orNone(s string) string {
	if s == "" {
		return none
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
