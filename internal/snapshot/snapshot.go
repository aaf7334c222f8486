// Package snapshot loads a point-in-time export of purchases, sites and
// importer statuses. YAML and JSON files are both accepted.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/model"
)

// Importer is an import job together with the site it runs on.
type Importer struct {
	Status model.ImporterStatus
	SiteID int64
}

// Snapshot is an immutable set of records to classify.
type Snapshot struct {
	Purchases []model.Purchase
	Sites     []model.Site
	Importers []Importer
}

// Load reads and validates the snapshot at path.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the user's own config
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			common.LogError(cerr, "failed to close snapshot", common.Fields{"path": path})
		}
	}()

	snap, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	common.LogDebug("Loaded snapshot", common.Fields{
		"path":      path,
		"purchases": len(snap.Purchases),
		"sites":     len(snap.Sites),
		"importers": len(snap.Importers),
	})
	return snap, nil
}

// Decode parses and validates a snapshot document.
func Decode(r io.Reader) (*Snapshot, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
	}
	return doc.snapshot()
}

// Purchase returns the purchase with id.
func (s *Snapshot) Purchase(id int64) (model.Purchase, error) {
	for _, p := range s.Purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Purchase{}, fmt.Errorf("purchase %d: %w", id, common.ErrNotFound)
}

// Importer returns the importer job with id. Jobs that have not started yet
// have no id and are matched by importer type instead.
func (s *Snapshot) Importer(id string) (Importer, error) {
	for _, imp := range s.Importers {
		if imp.Status.ImporterID == id || (imp.Status.ImporterID == "" && imp.Status.Type == id) {
			return imp, nil
		}
	}
	return Importer{}, fmt.Errorf("importer %q: %w", id, common.ErrNotFound)
}

func (d document) snapshot() (*Snapshot, error) {
	snap := &Snapshot{
		Purchases: make([]model.Purchase, 0, len(d.Purchases)),
		Sites:     make([]model.Site, 0, len(d.Sites)),
		Importers: make([]Importer, 0, len(d.Importers)),
	}

	seen := make(map[int64]bool, len(d.Purchases))
	for i, raw := range d.Purchases {
		p, err := raw.purchase()
		if err != nil {
			return nil, fmt.Errorf("%w: purchases[%d]: %v", common.ErrInvalidSnapshot, i, err)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: purchases[%d]: %v", common.ErrInvalidSnapshot, i, err)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: purchases[%d]: duplicate purchase id %d", common.ErrInvalidSnapshot, i, p.ID)
		}
		seen[p.ID] = true
		snap.Purchases = append(snap.Purchases, p)
	}

	for i, raw := range d.Sites {
		site := model.Site{ID: raw.ID, Slug: raw.Slug, Name: raw.Name, URL: raw.URL}
		if err := site.Validate(); err != nil {
			return nil, fmt.Errorf("%w: sites[%d]: %v", common.ErrInvalidSnapshot, i, err)
		}
		snap.Sites = append(snap.Sites, site)
	}

	for i, raw := range d.Importers {
		state, err := model.ParseImporterState(raw.State)
		if err != nil {
			return nil, fmt.Errorf("%w: importers[%d]: %v", common.ErrInvalidSnapshot, i, err)
		}
		imp := Importer{
			SiteID: raw.SiteID,
			Status: model.ImporterStatus{
				ImporterID:    raw.ImporterID,
				ImporterState: state,
				Type:          raw.Type,
			},
		}
		if err := imp.Status.Validate(); err != nil {
			return nil, fmt.Errorf("%w: importers[%d]: %v", common.ErrInvalidSnapshot, i, err)
		}
		snap.Importers = append(snap.Importers, imp)
	}

	return snap, nil
}

func (r purchaseRecord) purchase() (model.Purchase, error) {
	expiry, err := parseDate(r.ExpiryDate)
	if err != nil {
		return model.Purchase{}, fmt.Errorf("expiry_date: %w", err)
	}

	status, known := model.ParseExpiryStatus(r.ExpiryStatus)
	if !known {
		common.LogWarn("Unrecognized expiry status", common.Fields{"purchase_id": r.ID, "expiry_status": r.ExpiryStatus})
	}

	payment := model.Payment{Type: model.ParsePaymentType(r.Payment.Type)}
	if card := r.Payment.CreditCard; card != nil {
		cardExpiry, err := parseDate(card.ExpiryDate)
		if err != nil {
			return model.Purchase{}, fmt.Errorf("payment.credit_card.expiry_date: %w", err)
		}
		payment.CreditCard = &model.CreditCard{
			Type:       card.Type,
			Number:     card.Number,
			ExpiryDate: cardExpiry,
		}
	}

	return model.Purchase{
		ID:                     r.ID,
		SiteID:                 r.SiteID,
		SiteName:               r.SiteName,
		Domain:                 r.Domain,
		ProductName:            r.ProductName,
		ProductSlug:            r.ProductSlug,
		Meta:                   r.Meta,
		ExpiryStatus:           status,
		ExpiryDate:             expiry,
		Payment:                payment,
		IsDomainRegistration:   r.IsDomainRegistration,
		IsRefundable:           r.IsRefundable,
		IsRenewable:            r.IsRenewable,
		IsRedeemable:           r.IsRedeemable,
		CanDisableAutoRenew:    r.CanDisableAutoRenew,
		HasPrivateRegistration: r.HasPrivateRegistration,
	}, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate returns nil for an empty value.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q", s)
}
