package model

import "fmt"

// Site is a site record as returned by the sites API.
type Site struct {
	Slug string
	Name string
	URL  string
	ID   int64
}

// Validate ensures the site can be matched against purchases.
func (s *Site) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("site id is required")
	}
	if s.Slug == "" {
		return fmt.Errorf("site %d: slug is required", s.ID)
	}
	return nil
}

// SiteGroup collects the purchases owned by one site for display.
// Groups are built fresh on every call and never cached.
type SiteGroup struct {
	Domain    string
	Name      string
	Slug      string
	Title     string
	Purchases []Purchase
	ID        int64
}
