package main

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/config"
	"github.com/Veraticus/upkeep/internal/i18n"
	"github.com/Veraticus/upkeep/internal/purchases"
	"github.com/Veraticus/upkeep/internal/snapshot"
)

// session bundles what every command needs: the loaded snapshot and
// collaborators configured from settings.
type session struct {
	snap       *snapshot.Snapshot
	translator *i18n.CatalogTranslator
	classifier *purchases.Classifier
}

func openSession() (*session, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	snap, err := snapshot.Load(settings.SnapshotPath)
	if err != nil {
		if errors.Is(err, common.ErrInvalidSnapshot) {
			return nil, common.NewUserError("The snapshot file is malformed", err)
		}
		return nil, common.NewUserError("Could not read the snapshot; pass --snapshot or set "+config.KeySnapshot+" in config", err)
	}

	translator := i18n.New(settings.Locale)
	classifier := purchases.New(
		purchases.WithClock(settings.Clock()),
		purchases.WithTranslator(translator),
	)

	return &session{
		snap:       snap,
		translator: translator,
		classifier: classifier,
	}, nil
}
