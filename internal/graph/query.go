package graph

import (
	"errors"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"
)

func (s *Schema) resolveNGOs(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p); err != nil {
		return nil, err
	}

	ngos, err := s.stores.NGOs.List()
	if err != nil {
		return nil, internalError(err)
	}

	return ngos, nil
}

func (s *Schema) resolveNGO(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p); err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	ngo, err := s.stores.NGOs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("NGO")
		}
		return nil, internalError(err)
	}

	return ngo, nil
}

// resolveEvents returns all events when organizerId is omitted; with the
// argument it narrows to events of NGOs owned by that organizer.
func (s *Schema) resolveEvents(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p); err != nil {
		return nil, err
	}

	if organizerID, ok := optionalUintArg(p, "organizerId"); ok {
		events, err := s.stores.Events.ListByOrganizer(organizerID)
		if err != nil {
			return nil, internalError(err)
		}
		return events, nil
	}

	events, err := s.stores.Events.List()
	if err != nil {
		return nil, internalError(err)
	}

	return events, nil
}

func (s *Schema) resolveCauses(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireUser(p); err != nil {
		return nil, err
	}

	causes, err := s.stores.Causes.List()
	if err != nil {
		return nil, internalError(err)
	}

	return causes, nil
}

func (s *Schema) resolveUserDonations(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	donations, err := s.stores.Donations.ListByUser(user.ID)
	if err != nil {
		return nil, internalError(err)
	}

	return donations, nil
}

func (s *Schema) resolveUserFavorites(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	favorites, err := s.stores.Favorites.ListByUser(user.ID)
	if err != nil {
		return nil, internalError(err)
	}

	return favorites, nil
}

func (s *Schema) resolveUserNotifications(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	notifications, err := s.stores.Notifications.ListByUser(user.ID)
	if err != nil {
		return nil, internalError(err)
	}

	return notifications, nil
}

func (s *Schema) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	if !user.Role.CanListUsers() {
		return nil, ErrNotAuthorized
	}

	users, err := s.stores.Users.List()
	if err != nil {
		return nil, internalError(err)
	}

	return users, nil
}

func (s *Schema) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	id, err := uintArg(p, "id")
	if err != nil {
		return nil, err
	}

	if id != user.ID && !user.Role.CanListUsers() {
		return nil, ErrNotAuthorized
	}

	account, err := s.stores.Users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User")
		}
		return nil, internalError(err)
	}

	return account, nil
}

func (s *Schema) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}

	account, err := s.stores.Users.GetByID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("User")
		}
		return nil, internalError(err)
	}

	return account, nil
}
