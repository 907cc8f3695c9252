package store

import "gorm.io/gorm"

// Stores bundles the per-entity persistence interfaces handed to the GraphQL
// layer. Resolvers only see the interfaces; tests swap in fakes.
type Stores struct {
	Users         UserStore
	NGOs          NGOStore
	Events        EventStore
	Volunteers    VolunteerStore
	Donations     DonationStore
	Favorites     FavoriteStore
	Notifications NotificationStore
	Causes        CauseStore
}

// New wires the Postgres implementations over a shared gorm handle.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:         NewPostgresUserStore(db),
		NGOs:          NewPostgresNGOStore(db),
		Events:        NewPostgresEventStore(db),
		Volunteers:    NewPostgresVolunteerStore(db),
		Donations:     NewPostgresDonationStore(db),
		Favorites:     NewPostgresFavoriteStore(db),
		Notifications: NewPostgresNotificationStore(db),
		Causes:        NewPostgresCauseStore(db),
	}
}
