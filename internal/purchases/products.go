package purchases

import (
	"strings"

	"github.com/Veraticus/upkeep/internal/model"
)

// ProductClassifier tags a purchase with its product family.
type ProductClassifier interface {
	IsDomainRegistration(p model.Purchase) bool
	IsDomainMapping(p model.Purchase) bool
	IsTheme(p model.Purchase) bool
	IsPlan(p model.Purchase) bool
}

// Product slugs known to the store catalog.
const (
	SlugDomainMapping = "domain_map"
	SlugPremiumTheme  = "premium_theme"
)

var planSlugs = map[string]bool{
	"value_bundle":     true,
	"business-bundle":  true,
	"personal-bundle":  true,
	"jetpack_premium":  true,
	"jetpack_business": true,
	"jetpack_personal": true,
}

// CatalogProducts classifies purchases by product slug and the server's
// domain registration flag.
type CatalogProducts struct{}

// IsDomainRegistration trusts the billing API flag.
func (CatalogProducts) IsDomainRegistration(p model.Purchase) bool {
	return p.IsDomainRegistration
}

// IsDomainMapping reports whether the purchase maps an existing domain.
func (CatalogProducts) IsDomainMapping(p model.Purchase) bool {
	return p.ProductSlug == SlugDomainMapping
}

// IsTheme reports whether the purchase is a premium theme.
func (CatalogProducts) IsTheme(p model.Purchase) bool {
	return p.ProductSlug == SlugPremiumTheme
}

// IsPlan reports whether the purchase is a site plan, yearly or monthly.
func (CatalogProducts) IsPlan(p model.Purchase) bool {
	return planSlugs[strings.TrimSuffix(p.ProductSlug, "-monthly")]
}
