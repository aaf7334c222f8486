package snapshot

// Wire shapes of a snapshot file. Dates are kept as strings and parsed
// explicitly so YAML and JSON documents behave the same.

type document struct {
	Purchases []purchaseRecord `yaml:"purchases"`
	Sites     []siteRecord     `yaml:"sites"`
	Importers []importerRecord `yaml:"importers"`
}

type purchaseRecord struct {
	Payment                paymentRecord `yaml:"payment"`
	SiteName               string        `yaml:"site_name"`
	Domain                 string        `yaml:"domain"`
	ProductName            string        `yaml:"product_name"`
	ProductSlug            string        `yaml:"product_slug"`
	Meta                   string        `yaml:"meta"`
	ExpiryStatus           string        `yaml:"expiry_status"`
	ExpiryDate             string        `yaml:"expiry_date"`
	ID                     int64         `yaml:"id"`
	SiteID                 int64         `yaml:"site_id"`
	IsDomainRegistration   bool          `yaml:"is_domain_registration"`
	IsRefundable           bool          `yaml:"is_refundable"`
	IsRenewable            bool          `yaml:"is_renewable"`
	IsRedeemable           bool          `yaml:"is_redeemable"`
	CanDisableAutoRenew    bool          `yaml:"can_disable_auto_renew"`
	HasPrivateRegistration bool          `yaml:"has_private_registration"`
}

type paymentRecord struct {
	CreditCard *creditCardRecord `yaml:"credit_card"`
	Type       string            `yaml:"type"`
}

type creditCardRecord struct {
	Type       string `yaml:"type"`
	Number     string `yaml:"number"`
	ExpiryDate string `yaml:"expiry_date"`
}

type siteRecord struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	ID   int64  `yaml:"id"`
}

type importerRecord struct {
	ImporterID string `yaml:"importer_id"`
	State      string `yaml:"state"`
	Type       string `yaml:"type"`
	SiteID     int64  `yaml:"site_id"`
}
