package services

import "crop-procurement-api/models"

// Actor is the authenticated caller as injected by the auth middleware.
type Actor struct {
	UserID   string
	UserType string
}

func (a Actor) IsOfficer() bool { return a.UserType == models.UserTypeOfficer }

func (a Actor) IsFarmer() bool { return a.UserType == models.UserTypeFarmer }

func (a Actor) valid() bool {
	return a.UserID != "" && models.IsKnownUserType(a.UserType)
}
