package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/model"
)

func TestLoad(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "console.yaml"))
	require.NoError(t, err)

	require.Len(t, snap.Purchases, 3)
	require.Len(t, snap.Sites, 1)
	require.Len(t, snap.Importers, 2)

	premium := snap.Purchases[0]
	assert.Equal(t, int64(100), premium.ID)
	assert.Equal(t, model.ExpiryStatusAutoRenewing, premium.ExpiryStatus)
	require.NotNil(t, premium.ExpiryDate)
	assert.Equal(t, time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC), *premium.ExpiryDate)
	assert.Equal(t, model.PaymentTypeCreditCard, premium.Payment.Type)
	require.NotNil(t, premium.Payment.CreditCard)
	assert.Equal(t, "visa", premium.Payment.CreditCard.Type)
	assert.Equal(t, "4242", premium.Payment.CreditCard.Number)
	require.NotNil(t, premium.Payment.CreditCard.ExpiryDate)
	assert.True(t, premium.IsPaidWithCreditCard())
	assert.True(t, premium.CanDisableAutoRenew)

	domain := snap.Purchases[1]
	assert.True(t, domain.IsDomainRegistration)
	assert.True(t, domain.HasPrivateRegistration)
	assert.True(t, domain.IsExpired())
	assert.True(t, domain.IsPaidWithPaypal())

	mapping := snap.Purchases[2]
	assert.Equal(t, model.PaymentTypeNone, mapping.Payment.Type)
	assert.Nil(t, mapping.ExpiryDate)
	assert.True(t, mapping.IsIncludedWithPlan())

	assert.Equal(t, model.ImporterStateUploading, snap.Importers[0].Status.ImporterState)
	assert.Equal(t, int64(1), snap.Importers[0].SiteID)
	assert.Equal(t, model.ImporterStateInactive, snap.Importers[1].Status.ImporterState)
	assert.Empty(t, snap.Importers[1].Status.ImporterID)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_JSON(t *testing.T) {
	doc := `{
  "purchases": [{
    "id": 5, "site_id": 3, "domain": "json.example",
    "expiry_status": "cardExpiring", "expiry_date": "2027-02-01",
    "payment": {"type": "credit_card", "credit_card": {"type": "amex", "expiry_date": "2026-12-01"}}
  }],
  "sites": [{"id": 3, "slug": "json-example"}]
}`

	snap, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, snap.Purchases, 1)
	assert.True(t, snap.Purchases[0].IsExpiring())
	assert.Equal(t, "amex", snap.Purchases[0].PaymentLogoType())
	assert.Equal(t, "json-example", snap.Sites[0].Slug)
}

func TestDecode_Empty(t *testing.T) {
	snap, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, snap.Purchases)
}

func TestDecode_UnknownExpiryStatus(t *testing.T) {
	doc := `
purchases:
  - id: 1
    site_id: 1
    expiry_status: pendingTransfer
`
	snap, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, model.ExpiryStatusUnknown, snap.Purchases[0].ExpiryStatus)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		errPart string
	}{
		{
			name:    "malformed yaml",
			doc:     "purchases: [",
			errPart: "invalid snapshot",
		},
		{
			name:    "missing purchase id",
			doc:     "purchases:\n  - site_id: 1\n",
			errPart: "purchases[0]: purchase id is required",
		},
		{
			name:    "bad date",
			doc:     "purchases:\n  - id: 1\n    site_id: 1\n    expiry_date: next tuesday\n",
			errPart: `expiry_date: unrecognized date "next tuesday"`,
		},
		{
			name:    "card payment without card",
			doc:     "purchases:\n  - id: 1\n    site_id: 1\n    payment:\n      type: credit_card\n",
			errPart: "credit card payment without card details",
		},
		{
			name:    "duplicate purchase",
			doc:     "purchases:\n  - id: 1\n    site_id: 1\n  - id: 1\n    site_id: 2\n",
			errPart: "duplicate purchase id 1",
		},
		{
			name:    "site without slug",
			doc:     "sites:\n  - id: 4\n",
			errPart: "sites[0]: site 4: slug is required",
		},
		{
			name:    "unknown importer state",
			doc:     "importers:\n  - site_id: 1\n    state: importer-cancel-pending\n    type: importer-type-wordpress\n",
			errPart: `importers[0]: unknown importer state "importer-cancel-pending"`,
		},
		{
			name:    "importer without type",
			doc:     "importers:\n  - site_id: 1\n    state: importer-importing\n",
			errPart: "importer type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidSnapshot)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	snap, err := Load(filepath.Join("testdata", "console.yaml"))
	require.NoError(t, err)

	p, err := snap.Purchase(101)
	require.NoError(t, err)
	assert.Equal(t, "adasgarden.blog", p.Meta)

	_, err = snap.Purchase(999)
	assert.ErrorIs(t, err, common.ErrNotFound)

	imp, err := snap.Importer("imp-1")
	require.NoError(t, err)
	assert.Equal(t, "importer-type-wordpress", imp.Status.Type)

	medium, err := snap.Importer("importer-type-medium")
	require.NoError(t, err)
	assert.Equal(t, model.ImporterStateInactive, medium.Status.ImporterState)

	_, err = snap.Importer("importer-type-wordpress")
	assert.ErrorIs(t, err, common.ErrNotFound, "started jobs are only found by id")

	_, err = snap.Importer("imp-404")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
