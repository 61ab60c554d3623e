package services

import (
	"time"

	"crop-procurement-api/models"
	"crop-procurement-api/utils"

	"gorm.io/datatypes"
)

// SubmissionChanges is the raw partial update as sent by a client. It is
// never applied directly: the service projects it onto the patch type of
// the acting role and drops everything else.
type SubmissionChanges struct {
	// Farmer-owned
	CropType           *string             `json:"cropType"`
	Variety            *string             `json:"variety"`
	Quantity           *models.Quantity    `json:"quantity"`
	HarvestDate        *utils.FlexibleDate `json:"harvestDate"`
	ExpectedPickupDate *utils.FlexibleDate `json:"expectedPickupDate"`
	Location           *models.Location    `json:"location"`

	// Officer-owned
	Status           *string                  `json:"status"`
	Quality          *models.Quality          `json:"quality"`
	Pricing          *models.Pricing          `json:"pricing"`
	TransportDetails *models.TransportDetails `json:"transportDetails"`
	Notes            *string                  `json:"notes"`
	RejectionReason  *string                  `json:"rejectionReason"`
}

// FarmerPatch lists every field a farmer may change, and only those.
type FarmerPatch struct {
	CropType           *string
	Variety            *string
	Quantity           *models.Quantity
	HarvestDate        *time.Time
	ExpectedPickupDate *time.Time
	Location           *models.Location
}

// OfficerPatch lists every field an officer may change, and only those.
type OfficerPatch struct {
	Status           *models.SubmissionStatus
	Quality          *models.Quality
	Pricing          *models.Pricing
	TransportDetails *models.TransportDetails
	Notes            *string
	RejectionReason  *string
}

func (c SubmissionChanges) FarmerPatch() FarmerPatch {
	p := FarmerPatch{
		CropType: utils.SanitizeOptional(c.CropType),
		Variety:  utils.SanitizeOptional(c.Variety),
		Quantity: c.Quantity,
		Location: c.Location,
	}
	if c.HarvestDate != nil {
		p.HarvestDate = c.HarvestDate.Ptr()
	}
	if c.ExpectedPickupDate != nil {
		p.ExpectedPickupDate = c.ExpectedPickupDate.Ptr()
	}
	return p
}

func (c SubmissionChanges) OfficerPatch() OfficerPatch {
	p := OfficerPatch{
		Quality:          c.Quality,
		Pricing:          c.Pricing,
		TransportDetails: c.TransportDetails,
		Notes:            utils.SanitizeOptional(c.Notes),
		RejectionReason:  utils.SanitizeOptional(c.RejectionReason),
	}
	if c.Status != nil {
		status := models.ParseSubmissionStatus(*c.Status)
		p.Status = &status
	}
	return p
}

func (p FarmerPatch) IsEmpty() bool {
	return p.CropType == nil && p.Variety == nil && p.Quantity == nil &&
		p.HarvestDate == nil && p.ExpectedPickupDate == nil && p.Location == nil
}

func (p FarmerPatch) validate() error {
	if p.CropType != nil && *p.CropType == "" {
		return newError(KindInvalidInput, "cropType cannot be empty")
	}
	if p.Quantity != nil {
		if err := validateQuantity(*p.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (p FarmerPatch) ApplyTo(sub *models.CropSubmission) {
	if p.CropType != nil {
		sub.CropType = *p.CropType
	}
	if p.Variety != nil {
		sub.Variety = p.Variety
	}
	if p.Quantity != nil {
		sub.Quantity = datatypes.NewJSONType(*p.Quantity)
	}
	if p.HarvestDate != nil {
		sub.HarvestDate = *p.HarvestDate
	}
	if p.ExpectedPickupDate != nil {
		sub.ExpectedPickupDate = p.ExpectedPickupDate
	}
	if p.Location != nil {
		sub.Location = datatypes.NewJSONType(*p.Location)
	}
}

func (p OfficerPatch) ApplyTo(sub *models.CropSubmission) {
	if p.Status != nil {
		sub.Status = *p.Status
	}
	if p.Quality != nil {
		sub.Quality = datatypes.NewJSONType(*p.Quality)
	}
	if p.Pricing != nil {
		sub.Pricing = datatypes.NewJSONType(*p.Pricing)
	}
	if p.TransportDetails != nil {
		sub.TransportDetails = datatypes.NewJSONType(*p.TransportDetails)
	}
	if p.Notes != nil {
		sub.Notes = p.Notes
	}
	if p.RejectionReason != nil {
		sub.RejectionReason = p.RejectionReason
	}
}

// arrivalTime returns the arrival timestamp carried by this patch, if any.
func (p OfficerPatch) arrivalTime() *time.Time {
	if p.TransportDetails == nil || p.TransportDetails.ArrivalTime == nil {
		return nil
	}
	t := p.TransportDetails.ArrivalTime.UTC()
	return &t
}

func validateQuantity(q models.Quantity) error {
	if q.Amount <= 0 {
		return newError(KindInvalidInput, "quantity.amount must be greater than zero")
	}
	if utils.SanitizeInput(q.Unit) == "" {
		return newError(KindInvalidInput, "quantity.unit is required")
	}
	return nil
}
