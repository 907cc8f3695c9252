package graph

import (
	"encoding/json"
	"errors"

	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/graphql-go/graphql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *Schema) resolveRegisterVolunteer(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	eventID, err := uintArg(p, "event_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.Events.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Event")
		}
		return nil, internalError(err)
	}

	alreadyRegistered, err := s.stores.Volunteers.Exists(eventID, user.ID)
	if err != nil {
		return nil, internalError(err)
	}
	if alreadyRegistered {
		return nil, badInput("Already registered for this event")
	}

	volunteer := &models.EventVolunteer{
		EventID: eventID,
		UserID:  user.ID,
	}

	if err := s.stores.Volunteers.Register(volunteer); err != nil {
		// The composite unique index catches registrations that raced past
		// the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badInput("Already registered for this event")
		}
		return nil, internalError(err)
	}

	return volunteer, nil
}

func (s *Schema) resolveRemoveVolunteer(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	eventID, err := uintArg(p, "event_id")
	if err != nil {
		return nil, err
	}

	userID, err := uintArg(p, "user_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireEventOwner(user, eventID); err != nil {
		return nil, err
	}

	removed, err := s.stores.Volunteers.Remove(eventID, userID)
	if err != nil {
		return nil, internalError(err)
	}
	if !removed {
		return nil, notFound("Volunteer registration")
	}

	return true, nil
}

func (s *Schema) resolveDonateToNGO(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	ngoID, err := uintArg(p, "ngo_id")
	if err != nil {
		return nil, err
	}

	amount, err := floatArg(p, "amount")
	if err != nil {
		return nil, err
	}

	if err := validateInput(donationInput{Amount: amount}); err != nil {
		return nil, err
	}

	if _, err := s.stores.NGOs.GetByID(ngoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("NGO")
		}
		return nil, internalError(err)
	}

	message, _ := optionalStringArg(p, "message")

	donation := &models.Donation{
		UserID:  user.ID,
		NGOID:   ngoID,
		Amount:  amount,
		Message: message,
	}

	if err := s.stores.Donations.Create(donation); err != nil {
		return nil, internalError(err)
	}

	return donation, nil
}

func (s *Schema) resolveAddFavorite(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	ngoID, err := uintArg(p, "ngo_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.stores.NGOs.GetByID(ngoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("NGO")
		}
		return nil, internalError(err)
	}

	alreadyAdded, err := s.stores.Favorites.Exists(user.ID, ngoID)
	if err != nil {
		return nil, internalError(err)
	}
	if alreadyAdded {
		return nil, badInput("Already added to favorites")
	}

	favorite := &models.Favorite{
		UserID: user.ID,
		NGOID:  ngoID,
	}

	if err := s.stores.Favorites.Add(favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badInput("Already added to favorites")
		}
		return nil, internalError(err)
	}

	return favorite, nil
}

// resolveRemoveFavorite is idempotent: removing a favorite that does not
// exist still succeeds, reporting whether a row was deleted.
func (s *Schema) resolveRemoveFavorite(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	ngoID, err := uintArg(p, "ngo_id")
	if err != nil {
		return nil, err
	}

	removed, err := s.stores.Favorites.Remove(user.ID, ngoID)
	if err != nil {
		return nil, internalError(err)
	}

	return removed, nil
}

func (s *Schema) resolveCreateNotification(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	message, err := stringArg(p, "message")
	if err != nil {
		return nil, err
	}

	causeID, err := uintArg(p, "cause_id")
	if err != nil {
		return nil, err
	}

	cause, err := s.stores.Causes.GetByID(causeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Cause")
		}
		return nil, internalError(err)
	}

	meta, err := json.Marshal(map[string]string{"cause_name": cause.Name})
	if err != nil {
		return nil, internalError(err)
	}

	notification := &models.Notification{
		UserID:  user.ID,
		CauseID: causeID,
		Message: message,
		Meta:    datatypes.JSON(meta),
	}

	if err := s.stores.Notifications.Create(notification); err != nil {
		return nil, internalError(err)
	}

	return notification, nil
}

func (s *Schema) resolveCreateCause(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireOrganizer(p); err != nil {
		return nil, err
	}

	name, err := stringArg(p, "name")
	if err != nil {
		return nil, err
	}

	description, _ := optionalStringArg(p, "description")

	cause := &models.Cause{
		Name:        name,
		Description: description,
	}

	if err := s.stores.Causes.Create(cause); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, badInput("Cause already exists")
		}
		return nil, internalError(err)
	}

	if s.notifier != nil {
		s.notifier.CauseCreated(cause)
	}

	return cause, nil
}
