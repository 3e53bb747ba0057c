package dataset

import "github.com/csdsc-cmd/Retail-Agents-Portal/internal/model"

// storeFixtures is the fixed roster of 10 NZ retail stores.
var storeFixtures = []model.Store{
	{ID: "STR-001", Name: "Auckland CBD Flagship", Region: "Auckland", Type: model.StoreFlagship},
	{ID: "STR-002", Name: "Newmarket Mall", Region: "Auckland", Type: model.StoreMall},
	{ID: "STR-003", Name: "Wellington Central", Region: "Wellington", Type: model.StoreStandard},
	{ID: "STR-004", Name: "Christchurch Riccarton", Region: "Canterbury", Type: model.StoreMall},
	{ID: "STR-005", Name: "Hamilton Centre", Region: "Waikato", Type: model.StoreStandard},
	{ID: "STR-006", Name: "Tauranga Bayfair", Region: "Bay of Plenty", Type: model.StoreMall},
	{ID: "STR-007", Name: "Dunedin Meridian", Region: "Otago", Type: model.StoreStandard},
	{ID: "STR-008", Name: "Queenstown Express", Region: "Otago", Type: model.StoreExpress},
	{ID: "STR-009", Name: "North Shore Westfield", Region: "Auckland", Type: model.StoreMall},
	{ID: "STR-010", Name: "Palmerston North Plaza", Region: "Manawatu", Type: model.StoreStandard},
}

// StoreByID returns the store with the given ID, or false when unknown.
func (d *Dataset) StoreByID(id string) (model.Store, bool) {
	for _, s := range d.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return model.Store{}, false
}

// StoresByRegion returns all stores in the given region.
func (d *Dataset) StoresByRegion(region string) []model.Store {
	out := []model.Store{}
	for _, s := range d.Stores {
		if s.Region == region {
			out = append(out, s)
		}
	}
	return out
}
