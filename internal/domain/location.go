package domain

type Location struct {
	ID      int64   `json:"location_id"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// LocationRef is the public projection used by the catalog listing.
type LocationRef struct {
	ID      int64  `json:"location_id"`
	Address string `json:"address"`
}
