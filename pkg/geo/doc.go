// Package geo resolves a visitor's IP to a coarse location and maps the
// country to one of the site's cultural themes.
//
//	svc := geo.NewService(geo.NewClient(cfg, nil), cache.NewMemory[geo.Location]())
//	loc, err := svc.Locate(ctx, "203.0.113.7")
//	theme := loc.Theme()
package geo
