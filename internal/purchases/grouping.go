package purchases

import "github.com/Veraticus/upkeep/internal/model"

// GroupBySite groups purchases under their owning site. Groups appear in the
// order their site is first seen; purchases keep their input order.
//
// A purchase whose site is missing from sites (a deleted site) still gets a
// group, using the purchase's domain for the slug. The title falls back to
// the domain when the purchase has no site name.
func GroupBySite(purchases []model.Purchase, sites []model.Site) []model.SiteGroup {
	slugs := make(map[int64]string, len(sites))
	for _, site := range sites {
		if _, seen := slugs[site.ID]; !seen {
			slugs[site.ID] = site.Slug
		}
	}

	groups := make([]model.SiteGroup, 0)
	index := make(map[int64]int)

	for _, p := range purchases {
		if i, ok := index[p.SiteID]; ok {
			groups[i].Purchases = append(groups[i].Purchases, p)
			continue
		}

		slug, ok := slugs[p.SiteID]
		if !ok {
			slug = p.Domain
		}
		title := p.SiteName
		if title == "" {
			title = p.Domain
		}

		index[p.SiteID] = len(groups)
		groups = append(groups, model.SiteGroup{
			ID:        p.SiteID,
			Domain:    p.Domain,
			Name:      p.SiteName,
			Slug:      slug,
			Title:     title,
			Purchases: []model.Purchase{p},
		})
	}

	return groups
}
