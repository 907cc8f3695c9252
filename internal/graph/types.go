package graph

import (
	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/graphql-go/graphql"
)

// Most fields resolve through the default resolver against the models' json
// tags; only derived fields (volunteer counts, timestamps with a different
// name on the wire) carry explicit resolvers.

func newUserType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":              &graphql.Field{Type: graphql.Int},
			"email":           &graphql.Field{Type: graphql.String},
			"full_name":       &graphql.Field{Type: graphql.String},
			"role":            &graphql.Field{Type: graphql.String},
			"profile_picture": &graphql.Field{Type: graphql.String},
			"phone":           &graphql.Field{Type: graphql.String},
			"description":     &graphql.Field{Type: graphql.String},
			"created_at":      &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func newCauseType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Cause",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.Int},
			"name":        &graphql.Field{Type: graphql.String},
			"description": &graphql.Field{Type: graphql.String},
			"created_at":  &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func newVolunteerType(userType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "EventVolunteer",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.Int},
			"event_id": &graphql.Field{Type: graphql.Int},
			"user_id":  &graphql.Field{Type: graphql.Int},
			"user":     &graphql.Field{Type: userType},
			"registered_at": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if volunteer, ok := volunteerSource(p.Source); ok {
						return volunteer.CreatedAt, nil
					}
					return nil, nil
				},
			},
		},
	})
}

func newEventType(volunteerType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Event",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: graphql.Int},
			"ngo_id":            &graphql.Field{Type: graphql.Int},
			"title":             &graphql.Field{Type: graphql.String},
			"description":       &graphql.Field{Type: graphql.String},
			"event_date":        &graphql.Field{Type: graphql.DateTime},
			"location":          &graphql.Field{Type: graphql.String},
			"volunteers_needed": &graphql.Field{Type: graphql.Int},
			"created_at":        &graphql.Field{Type: graphql.DateTime},
			"volunteers":        &graphql.Field{Type: graphql.NewList(volunteerType)},
			"volunteers_count": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if event, ok := eventSource(p.Source); ok {
						return len(event.Volunteers), nil
					}
					return 0, nil
				},
			},
		},
	})
}

func newDonationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Donation",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.Int},
			"user_id":    &graphql.Field{Type: graphql.Int},
			"ngo_id":     &graphql.Field{Type: graphql.Int},
			"amount":     &graphql.Field{Type: graphql.Float},
			"message":    &graphql.Field{Type: graphql.String},
			"created_at": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func newFavoriteType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Favorite",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.Int},
			"user_id":    &graphql.Field{Type: graphql.Int},
			"ngo_id":     &graphql.Field{Type: graphql.Int},
			"created_at": &graphql.Field{Type: graphql.DateTime},
		},
	})
}

func newNGOType(eventType, donationType, favoriteType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "NGO",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.Int},
			"name":          &graphql.Field{Type: graphql.String},
			"cause":         &graphql.Field{Type: graphql.String},
			"description":   &graphql.Field{Type: graphql.String},
			"location":      &graphql.Field{Type: graphql.String},
			"contact_info":  &graphql.Field{Type: graphql.String},
			"donation_link": &graphql.Field{Type: graphql.String},
			"ngo_picture":   &graphql.Field{Type: graphql.String},
			"created_by":    &graphql.Field{Type: graphql.Int},
			"created_at":    &graphql.Field{Type: graphql.DateTime},
			"events":        &graphql.Field{Type: graphql.NewList(eventType)},
			"donations":     &graphql.Field{Type: graphql.NewList(donationType)},
			"favorites":     &graphql.Field{Type: graphql.NewList(favoriteType)},
		},
	})
}

func newNotificationType(causeType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Notification",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.Int},
			"user_id":    &graphql.Field{Type: graphql.Int},
			"cause_id":   &graphql.Field{Type: graphql.Int},
			"message":    &graphql.Field{Type: graphql.String},
			"cause":      &graphql.Field{Type: causeType},
			"created_at": &graphql.Field{Type: graphql.DateTime},
			"meta": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if notification, ok := notificationSource(p.Source); ok && len(notification.Meta) > 0 {
						return string(notification.Meta), nil
					}
					return nil, nil
				},
			},
		},
	})
}

// AuthPayload is the result of signUpUser and loginUser.
type AuthPayload struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func newAuthPayloadType(userType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"user":  &graphql.Field{Type: userType},
			"token": &graphql.Field{Type: graphql.String},
		},
	})
}

func eventSource(source interface{}) (*models.Event, bool) {
	switch event := source.(type) {
	case models.Event:
		return &event, true
	case *models.Event:
		return event, true
	}
	return nil, false
}

func volunteerSource(source interface{}) (*models.EventVolunteer, bool) {
	switch volunteer := source.(type) {
	case models.EventVolunteer:
		return &volunteer, true
	case *models.EventVolunteer:
		return volunteer, true
	}
	return nil, false
}

func notificationSource(source interface{}) (*models.Notification, bool) {
	switch notification := source.(type) {
	case models.Notification:
		return &notification, true
	case *models.Notification:
		return notification, true
	}
	return nil, false
}
