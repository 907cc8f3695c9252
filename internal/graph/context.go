package graph

import (
	"time"

	"github.com/causeconnect-dev/causeconnect/internal/auth"
	"github.com/graphql-go/graphql"
)

// requireUser returns the authenticated identity or the canonical
// authentication error. Every non-public resolver starts here.
func requireUser(p graphql.ResolveParams) (*auth.CurrentUser, error) {
	user := auth.ForContext(p.Context)
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

// requireOrganizer returns the identity only when it carries the organizer
// capability.
func requireOrganizer(p graphql.ResolveParams) (*auth.CurrentUser, error) {
	user, err := requireUser(p)
	if err != nil {
		return nil, err
	}
	if !user.Role.CanManageNGOs() {
		return nil, ErrNotAuthorized
	}
	return user, nil
}

func uintArg(p graphql.ResolveParams, name string) (uint, error) {
	value, ok := p.Args[name].(int)
	if !ok || value <= 0 {
		return 0, badInput("Argument " + name + " is required")
	}
	return uint(value), nil
}

func optionalUintArg(p graphql.ResolveParams, name string) (uint, bool) {
	value, ok := p.Args[name].(int)
	if !ok || value <= 0 {
		return 0, false
	}
	return uint(value), true
}

func stringArg(p graphql.ResolveParams, name string) (string, error) {
	value, ok := p.Args[name].(string)
	if !ok || value == "" {
		return "", badInput("Argument " + name + " is required")
	}
	return value, nil
}

func optionalStringArg(p graphql.ResolveParams, name string) (string, bool) {
	value, ok := p.Args[name].(string)
	return value, ok
}

func floatArg(p graphql.ResolveParams, name string) (float64, error) {
	switch value := p.Args[name].(type) {
	case float64:
		return value, nil
	case int:
		return float64(value), nil
	default:
		return 0, badInput("Argument " + name + " is required")
	}
}

func optionalIntArg(p graphql.ResolveParams, name string) (int, bool) {
	value, ok := p.Args[name].(int)
	return value, ok
}

func timeArg(p graphql.ResolveParams, name string) (time.Time, error) {
	value, ok := p.Args[name].(time.Time)
	if !ok {
		return time.Time{}, badInput("Argument " + name + " is required")
	}
	return value, nil
}

func optionalTimeArg(p graphql.ResolveParams, name string) (time.Time, bool) {
	value, ok := p.Args[name].(time.Time)
	return value, ok
}
