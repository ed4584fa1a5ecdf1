// internal/models/housing.go
package models

// HousingType identifies the category of a housing listing.
type HousingType string

const (
	HousingApartment HousingType = "APARTMENT"
	HousingOfficetel HousingType = "OFFICETEL"
	HousingVilla     HousingType = "VILLA"
	HousingHouse     HousingType = "HOUSE"
)

// HousingListing is a candidate home registered by the user, as served
// by the housing service.
type HousingListing struct {
	ID          string      `json:"id"`
	Name        string      `json:"housingName"`
	HousingType HousingType `json:"housingType"`
	Price       int64       `json:"price"`
	MoveInDate  string      `json:"moveInDate,omitempty"` // YYYY-MM
}
