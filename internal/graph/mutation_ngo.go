package graph

import (
	"errors"

	"github.com/causeconnect-dev/causeconnect/internal/auth"
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/graphql-go/graphql"
	"gorm.io/gorm"
)

// requireNGOOwner loads the NGO and checks the caller owns it. Ordering
// matters: a missing NGO reports not-found, an existing NGO owned by someone
// else reports not-authorized.
func (s *Schema) requireNGOOwner(user *auth.CurrentUser, ngoID uint) (*models.NGO, error) {
	ngo, err := s.stores.NGOs.GetByID(ngoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("NGO")
		}
		return nil, internalError(err)
	}

	if ngo.CreatedBy != user.ID {
		return nil, ErrNotAuthorized
	}

	return ngo, nil
}

// requireEventOwner resolves the event and checks the caller owns its parent
// NGO.
func (s *Schema) requireEventOwner(user *auth.CurrentUser, eventID uint) (*models.Event, error) {
	event, err := s.stores.Events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Event")
		}
		return nil, internalError(err)
	}

	if _, err := s.requireNGOOwner(user, event.NGOID); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *Schema) resolveCreateNGO(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireOrganizer(p)
	if err != nil {
		return nil, err
	}

	name, err := stringArg(p, "name")
	if err != nil {
		return nil, err
	}

	cause, err := stringArg(p, "cause")
	if err != nil {
		return nil, err
	}

	description, _ := optionalStringArg(p, "description")
	location, _ := optionalStringArg(p, "location")
	contactInfo, _ := optionalStringArg(p, "contact_info")
	donationLink, _ := optionalStringArg(p, "donation_link")
	ngoPicture, _ := optionalStringArg(p, "ngo_picture")

	ngo := &models.NGO{
		Name:         name,
		Cause:        cause,
		Description:  description,
		Location:     location,
		ContactInfo:  contactInfo,
		DonationLink: donationLink,
		NGOPicture:   ngoPicture,
		CreatedBy:    user.ID,
	}

	if err := s.stores.NGOs.Create(ngo); err != nil {
		return nil, internalError(err)
	}

	return ngo, nil
}

func (s *Schema) resolveUpdateNGO(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireNGOOwner(user, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	for arg, column := range map[string]string{
		"name":          "name",
		"cause":         "cause",
		"description":   "description",
		"location":      "location",
		"contact_info":  "contact_info",
		"donation_link": "donation_link",
		"ngo_picture":   "ngo_picture",
	} {
		if value, ok := optionalStringArg(p, arg); ok {
			updates[column] = value
		}
	}

	ngo, err := s.stores.NGOs.Update(id, updates)
	if err != nil {
		return nil, internalError(err)
	}

	return ngo, nil
}

func (s *Schema) resolveDeleteNGO(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireNGOOwner(user, id); err != nil {
		return nil, err
	}

	if err := s.stores.NGOs.Delete(id); err != nil {
		return nil, internalError(err)
	}

	return true, nil
}

func (s *Schema) resolveCreateEvent(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	ngoID, err := uintArg(p, "ngo_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireNGOOwner(user, ngoID); err != nil {
		return nil, err
	}

	title, err := stringArg(p, "title")
	if err != nil {
		return nil, err
	}

	eventDate, err := timeArg(p, "event_date")
	if err != nil {
		return nil, err
	}

	volunteersNeeded, _ := optionalIntArg(p, "volunteers_needed")

	if err := validateInput(eventInput{Title: title, VolunteersNeeded: volunteersNeeded}); err != nil {
		return nil, err
	}

	description, _ := optionalStringArg(p, "description")
	location, _ := optionalStringArg(p, "location")

	event := &models.Event{
		NGOID:            ngoID,
		Title:            title,
		Description:      description,
		EventDate:        eventDate,
		Location:         location,
		VolunteersNeeded: volunteersNeeded,
	}

	if err := s.stores.Events.Create(event); err != nil {
		return nil, internalError(err)
	}

	return event, nil
}

func (s *Schema) resolveUpdateEvent(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireEventOwner(user, id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if title, ok := optionalStringArg(p, "title"); ok && title != "" {
		updates["title"] = title
	}
	if description, ok := optionalStringArg(p, "description"); ok {
		updates["description"] = description
	}
	if location, ok := optionalStringArg(p, "location"); ok {
		updates["location"] = location
	}
	if eventDate, ok := optionalTimeArg(p, "event_date"); ok {
		updates["event_date"] = eventDate
	}
	if volunteersNeeded, ok := optionalIntArg(p, "volunteers_needed"); ok {
		if volunteersNeeded < 0 {
			return nil, badInput("Field volunteers_needed must not be negative")
		}
		updates["volunteers_needed"] = volunteersNeeded
	}

	event, err := s.stores.Events.Update(id, updates)
	if err != nil {
		return nil, internalError(err)
	}

	return event, nil
}

func (s *Schema) resolveDeleteEvent(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if _, err := s.requireEventOwner(user, id); err != nil {
		return nil, err
	}

	if err := s.stores.Events.Delete(id); err != nil {
		return nil, internalError(err)
	}

	return true, nil
}
