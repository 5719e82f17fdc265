package taxonomy

import "github.com/mystudbud/studbud/internal/models"

// marketplaceCatalog is the static dashboard storefront. Items are tagged
// with the sub-paths they are relevant to.
var marketplaceCatalog = []models.MarketplaceItem{
	{ID: "1", Title: "Fun Alphabet Adventure", Type: "book", Price: "৳250",
		Tags: []models.SubPath{models.SubPathKindergarten}, Image: "https://picsum.photos/200/300"},
	{ID: "2", Title: "Class 5 Math Genius", Type: "course", Price: "৳500",
		Tags: []models.SubPath{models.SubPathPrimary}, Image: "https://picsum.photos/201/300"},
	{ID: "3", Title: "SSC Physics Solver", Type: "book", Price: "৳350",
		Tags: []models.SubPath{models.SubPathSSCHSC, models.SubPathSecondary}, Image: "https://picsum.photos/202/300"},
	{ID: "4", Title: "BCS Preliminary Master", Type: "course", Price: "৳1200",
		Tags: []models.SubPath{models.SubPathBCSPublic}, Image: "https://picsum.photos/203/300"},
	{ID: "5", Title: "Resume Writing Workshop", Type: "mentor", Price: "৳800",
		Tags: []models.SubPath{models.SubPathPrivateJob}, Image: "https://picsum.photos/204/300"},
	{ID: "6", Title: "Noorani Qaida Digital", Type: "book", Price: "৳150",
		Tags: []models.SubPath{models.SubPathMadrasa}, Image: "https://picsum.photos/205/300"},
}

// MarketplaceItems returns the full catalog.
func MarketplaceItems() []models.MarketplaceItem {
	out := make([]models.MarketplaceItem, len(marketplaceCatalog))
	copy(out, marketplaceCatalog)
	return out
}

// ItemsFor returns the catalog entries tagged with the given sub-path.
func ItemsFor(sp models.SubPath) []models.MarketplaceItem {
	var out []models.MarketplaceItem
	for _, item := range marketplaceCatalog {
		for _, tag := range item.Tags {
			if tag == sp {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
