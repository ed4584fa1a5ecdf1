// internal/models/household.go
package models

// HouseholdRole is a member's role within a household.
type HouseholdRole string

const (
	RoleOwner  HouseholdRole = "OWNER"
	RoleMember HouseholdRole = "MEMBER"
)

// HouseholdMember is one member of the requester's household, as served
// by the household service.
type HouseholdMember struct {
	UserID string        `json:"userId"`
	Name   string        `json:"name"`
	Role   HouseholdRole `json:"role"`
}
