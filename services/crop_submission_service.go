package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"crop-procurement-api/models"
	"crop-procurement-api/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateSubmissionInput is what a farmer sends to declare a crop lot.
type CreateSubmissionInput struct {
	CropType           string              `json:"cropType"`
	Variety            *string             `json:"variety"`
	Quantity           models.Quantity     `json:"quantity"`
	HarvestDate        *utils.FlexibleDate `json:"harvestDate"`
	ExpectedPickupDate *utils.FlexibleDate `json:"expectedPickupDate"`
	Location           models.Location     `json:"location"`
}

// ListSubmissionsInput carries listing options. AssignedToMe only applies to
// officers.
type ListSubmissionsInput struct {
	Status       string
	AssignedToMe bool
	Limit        int
	Offset       int
}

// CropSubmissionService owns the crop submission lifecycle: who may change
// which fields, status transitions and the notifications they raise.
type CropSubmissionService struct {
	store    SubmissionStore
	notifier NotificationSink
	now      func() time.Time
}

func NewCropSubmissionService(store SubmissionStore, notifier NotificationSink) *CropSubmissionService {
	return &CropSubmissionService{
		store:    store,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *CropSubmissionService) Create(ctx context.Context, actor Actor, in CreateSubmissionInput) (*models.CropSubmission, error) {
	if !actor.valid() || !actor.IsFarmer() {
		return nil, newError(KindForbidden, "only farmers can create crop submissions")
	}

	cropType := utils.SanitizeInput(in.CropType)
	if cropType == "" {
		return nil, newError(KindInvalidInput, "cropType is required")
	}
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	harvestDate := in.HarvestDate.Ptr()
	if harvestDate == nil {
		return nil, newError(KindInvalidInput, "harvestDate is required")
	}

	in.Quantity.Unit = utils.SanitizeInput(in.Quantity.Unit)
	now := s.now()
	sub := &models.CropSubmission{
		ID:                 uuid.NewString(),
		FarmerID:           actor.UserID,
		CropType:           cropType,
		Variety:            utils.SanitizeOptional(in.Variety),
		Quantity:           datatypes.NewJSONType(in.Quantity),
		HarvestDate:        *harvestDate,
		ExpectedPickupDate: in.ExpectedPickupDate.Ptr(),
		Location:           datatypes.NewJSONType(in.Location),
		Status:             models.StatusSubmitted,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.Create(ctx, sub); err != nil {
		return nil, err
	}

	log.Printf("[crop_submission] created %s by farmer %s", sub.ID, actor.UserID)
	return sub, nil
}

// Get returns the submission with farmer and officer identity summaries.
func (s *CropSubmissionService) Get(ctx context.Context, id string) (*models.CropSubmission, error) {
	return s.store.FindByIDWithUsers(ctx, id)
}

func (s *CropSubmissionService) List(ctx context.Context, actor Actor, in ListSubmissionsInput) ([]models.CropSubmission, int64, error) {
	if !actor.valid() {
		return nil, 0, newError(KindForbidden, "unknown user")
	}

	filter := SubmissionFilter{}
	filter.Limit, filter.Offset = utils.ClampPage(in.Limit, in.Offset)

	if in.Status != "" {
		status := models.ParseSubmissionStatus(in.Status)
		if !status.IsValid() {
			return nil, 0, newError(KindInvalidInput, fmt.Sprintf("unknown status %q", in.Status))
		}
		filter.Status = status
	}

	if actor.IsOfficer() {
		if in.AssignedToMe {
			filter.OfficerID = actor.UserID
		}
	} else {
		filter.FarmerID = actor.UserID
	}

	return s.store.List(ctx, filter)
}

// Update applies changes on behalf of actor. Officers change workflow fields
// and become the assigned officer on first touch. The owning farmer changes
// descriptive fields, which are silently dropped once the submission has
// left "submitted". Anything outside the actor's patch is ignored.
func (s *CropSubmissionService) Update(ctx context.Context, id string, actor Actor, changes SubmissionChanges) (*models.CropSubmission, error) {
	if !actor.valid() {
		return nil, newError(KindForbidden, "unknown user")
	}

	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := actor.IsFarmer() && sub.IsOwnedBy(actor.UserID)
	if !actor.IsOfficer() && !isOwner {
		return nil, newError(KindForbidden, "not authorized to update this submission")
	}

	var history *models.CropSubmissionStatusHistory
	var officerPatch OfficerPatch
	prevStatus := sub.Status

	if actor.IsOfficer() {
		officerPatch = changes.OfficerPatch()
		if officerPatch.Status != nil {
			next := *officerPatch.Status
			if !next.IsValid() {
				return nil, newError(KindInvalidInput, fmt.Sprintf("unknown status %q", *changes.Status))
			}
			if !sub.Status.CanMoveTo(next) {
				return nil, newError(KindInvalidState, fmt.Sprintf("cannot move a %s submission to %s", sub.Status, next))
			}
			if next != prevStatus {
				history = &models.CropSubmissionStatusHistory{
					SubmissionID: sub.ID,
					OldStatus:    &prevStatus,
					NewStatus:    next,
					ChangedBy:    actor.UserID,
					Reason:       officerPatch.RejectionReason,
					CreatedAt:    s.now(),
				}
			}
		}

		if !sub.HasOfficer() {
			officerID := actor.UserID
			sub.OfficerID = &officerID
		}

		officerPatch.ApplyTo(sub)
		// Only the move into collected records the pickup time.
		if sub.Status == models.StatusCollected && prevStatus != models.StatusCollected {
			if arrival := officerPatch.arrivalTime(); arrival != nil {
				sub.ActualPickupDate = arrival
			}
		}
	} else {
		farmerPatch := changes.FarmerPatch()
		switch {
		case sub.CanBeEditedByFarmer():
			if err := farmerPatch.validate(); err != nil {
				return nil, err
			}
			farmerPatch.ApplyTo(sub)
		case !farmerPatch.IsEmpty():
			log.Printf("[crop_submission] dropped farmer edits on %s (status=%s)", sub.ID, sub.Status)
		}
	}

	sub.UpdatedAt = s.now()
	if err := s.store.Save(ctx, sub, history); err != nil {
		return nil, err
	}

	if officerPatch.Status != nil {
		if err := s.notifyStatus(ctx, sub, actor); err != nil {
			return nil, err
		}
	}

	return sub, nil
}

// Delete removes a submission. Only the owning farmer may delete, and only
// before the workflow has started.
func (s *CropSubmissionService) Delete(ctx context.Context, id string, actor Actor) error {
	if !actor.valid() {
		return newError(KindForbidden, "unknown user")
	}

	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !actor.IsFarmer() || !sub.IsOwnedBy(actor.UserID) {
		return newError(KindForbidden, "not authorized to delete this submission")
	}
	if !sub.CanBeDeleted() {
		return newError(KindInvalidState, "cannot delete processed submissions")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("[crop_submission] deleted %s by farmer %s", id, actor.UserID)
	return nil
}

// notifyStatus runs after the submission is already saved. The two writes
// are not atomic: a failure here leaves the status change without its
// notification and is reported to the caller.
func (s *CropSubmissionService) notifyStatus(ctx context.Context, sub *models.CropSubmission, actor Actor) error {
	n, ok := statusNotification(sub, actor.UserID)
	if !ok || s.notifier == nil {
		return nil
	}
	if err := s.notifier.Notify(persistentContext(ctx), n); err != nil {
		log.Printf("[crop_submission] status %s saved for %s but notification failed: %v", sub.Status, sub.ID, err)
		return fmt.Errorf("submission %s updated but notification failed: %w", sub.ID, err)
	}
	return nil
}
