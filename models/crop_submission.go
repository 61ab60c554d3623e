package models

import (
	"time"

	"gorm.io/datatypes"
)

type Quantity struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Location struct {
	Address   string   `json:"address,omitempty"`
	District  string   `json:"district,omitempty"`
	State     string   `json:"state,omitempty"`
	Pincode   string   `json:"pincode,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Quality struct {
	Grade           string   `json:"grade,omitempty"`
	MoistureContent *float64 `json:"moistureContent,omitempty"`
	Notes           string   `json:"notes,omitempty"`
}

type Pricing struct {
	PricePerUnit *float64 `json:"pricePerUnit,omitempty"`
	TotalAmount  *float64 `json:"totalAmount,omitempty"`
	Currency     string   `json:"currency,omitempty"`
}

type TransportDetails struct {
	VehicleNumber string     `json:"vehicleNumber,omitempty"`
	DriverName    string     `json:"driverName,omitempty"`
	DriverPhone   string     `json:"driverPhone,omitempty"`
	ArrivalTime   *time.Time `json:"arrivalTime,omitempty"`
}

// CropSubmission is a farmer's declaration of a harvested crop lot.
// Descriptive fields belong to the farmer; status, quality, pricing and
// transport belong to the procurement officer.
type CropSubmission struct {
	ID        string  `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	FarmerID  string  `gorm:"column:farmer_id;type:varchar(36);not null;index" json:"farmerId"`
	OfficerID *string `gorm:"column:officer_id;type:varchar(36);index" json:"officerId,omitempty"`

	CropType           string                       `gorm:"column:crop_type;not null" json:"cropType"`
	Variety            *string                      `gorm:"column:variety" json:"variety,omitempty"`
	Quantity           datatypes.JSONType[Quantity] `gorm:"column:quantity" json:"quantity"`
	HarvestDate        time.Time                    `gorm:"column:harvest_date" json:"harvestDate"`
	ExpectedPickupDate *time.Time                   `gorm:"column:expected_pickup_date" json:"expectedPickupDate,omitempty"`
	Location           datatypes.JSONType[Location] `gorm:"column:location" json:"location"`

	Status           SubmissionStatus                     `gorm:"column:status;type:varchar(20);not null;index" json:"status"`
	Quality          datatypes.JSONType[Quality]          `gorm:"column:quality" json:"quality"`
	Pricing          datatypes.JSONType[Pricing]          `gorm:"column:pricing" json:"pricing"`
	TransportDetails datatypes.JSONType[TransportDetails] `gorm:"column:transport_details" json:"transportDetails"`
	Notes            *string                              `gorm:"column:notes" json:"notes,omitempty"`
	RejectionReason  *string                              `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`
	ActualPickupDate *time.Time                           `gorm:"column:actual_pickup_date" json:"actualPickupDate,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	// Relations
	Farmer  *UserSummary `gorm:"foreignKey:FarmerID;-:migration" json:"farmer,omitempty"`
	Officer *UserSummary `gorm:"foreignKey:OfficerID;-:migration" json:"officer,omitempty"`
}

func (CropSubmission) TableName() string {
	return "crop_submissions"
}

// HasOfficer reports whether an officer has already been assigned.
func (s *CropSubmission) HasOfficer() bool {
	return s.OfficerID != nil && *s.OfficerID != ""
}

// IsOwnedBy reports whether userID is the farmer who created the submission.
func (s *CropSubmission) IsOwnedBy(userID string) bool {
	return userID != "" && s.FarmerID == userID
}

// CanBeEditedByFarmer is true while the submission has not entered the workflow.
func (s *CropSubmission) CanBeEditedByFarmer() bool {
	return s.Status == StatusSubmitted
}

func (s *CropSubmission) CanBeDeleted() bool {
	return s.Status == StatusSubmitted
}
