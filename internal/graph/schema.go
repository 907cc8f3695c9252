package graph

import (
	"github.com/causeconnect-dev/causeconnect/internal/services"
	"github.com/causeconnect-dev/causeconnect/internal/store"
	"github.com/graphql-go/graphql"
)

// Schema owns the executable GraphQL schema and the stores its resolvers
// read from and write to.
type Schema struct {
	schema   graphql.Schema
	stores   *store.Stores
	notifier services.CauseNotifier
}

// NewSchema builds the Query and Mutation types over the given stores. The
// notifier may be nil; cause creation then skips the external trigger.
func NewSchema(stores *store.Stores, notifier services.CauseNotifier) (*Schema, error) {
	s := &Schema{
		stores:   stores,
		notifier: notifier,
	}

	userType := newUserType()
	causeType := newCauseType()
	volunteerType := newVolunteerType(userType)
	eventType := newEventType(volunteerType)
	donationType := newDonationType()
	favoriteType := newFavoriteType()
	ngoType := newNGOType(eventType, donationType, favoriteType)
	notificationType := newNotificationType(causeType)
	authPayloadType := newAuthPayloadType(userType)

	// NGO and its dependents reference each other; the back-references are
	// attached after both types exist.
	donationType.AddFieldConfig("ngo", &graphql.Field{Type: ngoType})
	favoriteType.AddFieldConfig("ngo", &graphql.Field{Type: ngoType})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"ngos": &graphql.Field{
				Type:    graphql.NewList(ngoType),
				Resolve: s.resolveNGOs,
			},
			"ngo": &graphql.Field{
				Type: ngoType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveNGO,
			},
			"events": &graphql.Field{
				Type: graphql.NewList(eventType),
				Args: graphql.FieldConfigArgument{
					"organizerId": &graphql.ArgumentConfig{
						Type:        graphql.Int,
						Description: "Restrict to events of NGOs owned by this organizer",
					},
				},
				Resolve: s.resolveEvents,
			},
			"causes": &graphql.Field{
				Type:    graphql.NewList(causeType),
				Resolve: s.resolveCauses,
			},
			"userDonations": &graphql.Field{
				Type:    graphql.NewList(donationType),
				Resolve: s.resolveUserDonations,
			},
			"userFavorites": &graphql.Field{
				Type:    graphql.NewList(favoriteType),
				Resolve: s.resolveUserFavorites,
			},
			"userNotifications": &graphql.Field{
				Type:    graphql.NewList(notificationType),
				Resolve: s.resolveUserNotifications,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: s.resolveUsers,
			},
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveUser,
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: s.resolveMe,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signUpUser": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":           &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"full_name":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"profile_picture": &graphql.ArgumentConfig{Type: graphql.String},
					"phone":           &graphql.ArgumentConfig{Type: graphql.String},
					"role":            &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveSignUpUser,
			},
			"loginUser": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: s.resolveLoginUser,
			},
			"createNGO": &graphql.Field{
				Type: ngoType,
				Args: graphql.FieldConfigArgument{
					"name":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"cause":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description":   &graphql.ArgumentConfig{Type: graphql.String},
					"location":      &graphql.ArgumentConfig{Type: graphql.String},
					"contact_info":  &graphql.ArgumentConfig{Type: graphql.String},
					"donation_link": &graphql.ArgumentConfig{Type: graphql.String},
					"ngo_picture":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveCreateNGO,
			},
			"updateNGO": &graphql.Field{
				Type: ngoType,
				Args: graphql.FieldConfigArgument{
					"id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"name":          &graphql.ArgumentConfig{Type: graphql.String},
					"cause":         &graphql.ArgumentConfig{Type: graphql.String},
					"description":   &graphql.ArgumentConfig{Type: graphql.String},
					"location":      &graphql.ArgumentConfig{Type: graphql.String},
					"contact_info":  &graphql.ArgumentConfig{Type: graphql.String},
					"donation_link": &graphql.ArgumentConfig{Type: graphql.String},
					"ngo_picture":   &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveUpdateNGO,
			},
			"deleteNGO": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveDeleteNGO,
			},
			"createEvent": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"ngo_id":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":             &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description":       &graphql.ArgumentConfig{Type: graphql.String},
					"event_date":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.DateTime)},
					"location":          &graphql.ArgumentConfig{Type: graphql.String},
					"volunteers_needed": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: s.resolveCreateEvent,
			},
			"updateEvent": &graphql.Field{
				Type: eventType,
				Args: graphql.FieldConfigArgument{
					"id":                &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":             &graphql.ArgumentConfig{Type: graphql.String},
					"description":       &graphql.ArgumentConfig{Type: graphql.String},
					"event_date":        &graphql.ArgumentConfig{Type: graphql.DateTime},
					"location":          &graphql.ArgumentConfig{Type: graphql.String},
					"volunteers_needed": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: s.resolveUpdateEvent,
			},
			"deleteEvent": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveDeleteEvent,
			},
			"registerVolunteer": &graphql.Field{
				Type: volunteerType,
				Args: graphql.FieldConfigArgument{
					"event_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveRegisterVolunteer,
			},
			"removeVolunteer": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"event_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"user_id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveRemoveVolunteer,
			},
			"donateToNGO": &graphql.Field{
				Type: donationType,
				Args: graphql.FieldConfigArgument{
					"ngo_id":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"amount":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"message": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveDonateToNGO,
			},
			"addFavorite": &graphql.Field{
				Type: favoriteType,
				Args: graphql.FieldConfigArgument{
					"ngo_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveAddFavorite,
			},
			"removeFavorite": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"ngo_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveRemoveFavorite,
			},
			"createNotification": &graphql.Field{
				Type: notificationType,
				Args: graphql.FieldConfigArgument{
					"message":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"cause_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveCreateNotification,
			},
			"createCause": &graphql.Field{
				Type: causeType,
				Args: graphql.FieldConfigArgument{
					"name":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveCreateCause,
			},
			"updateUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id":              &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"full_name":       &graphql.ArgumentConfig{Type: graphql.String},
					"profile_picture": &graphql.ArgumentConfig{Type: graphql.String},
					"phone":           &graphql.ArgumentConfig{Type: graphql.String},
					"description":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: s.resolveUpdateUser,
			},
			"deleteUser": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: s.resolveDeleteUser,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return nil, err
	}

	s.schema = schema
	return s, nil
}

// GetSchema returns the executable schema for the HTTP handler.
func (s *Schema) GetSchema() graphql.Schema {
	return s.schema
}
