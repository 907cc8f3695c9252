package graph

import (
	"fmt"
	"testing"
	"time"

	"github.com/causeconnect-dev/causeconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, m *memoryStore, ngo models.NGO, title string) models.Event {
	t.Helper()
	event := models.Event{
		NGOID:     ngo.ID,
		Title:     title,
		EventDate: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, (&fakeEventStore{m}).Create(&event))
	return event
}

func TestCreateEventOwnership(t *testing.T) {
	s, m := newTestSchema(t)
	owner := seedUser(t, m, "owner@example.org", models.RoleOrganizer)
	other := seedUser(t, m, "other@example.org", models.RoleOrganizer)
	ngo := seedNGO(t, m, owner)

	mutation := fmt.Sprintf(`mutation {
		createEvent(ngo_id: %d, title: "River cleanup", event_date: "2026-09-01T10:00:00Z", volunteers_needed: 12) {
			id ngo_id title volunteers_needed
		}
	}`, ngo.ID)

	denied := firstError(t, execute(s, contextFor(other), mutation))
	assert.Equal(t, "Not authorized", denied.Message)
	assert.Equal(t, CodeForbidden, errorCode(denied))

	event := dataField(t, execute(s, contextFor(owner), mutation), "createEvent")
	assert.Equal(t, "River cleanup", event["title"])
	assert.Equal(t, 12, event["volunteers_needed"])
	require.Len(t, m.events, 1)
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), m.events[0].EventDate.UTC())
}

func TestCreateEventMissingNGO(t *testing.T) {
	s, m := newTestSchema(t)
	organizer := seedUser(t, m, "org@example.org", models.RoleOrganizer)

	result := execute(s, contextFor(organizer), `mutation {
		createEvent(ngo_id: 99, title: "Ghost event", event_date: "2026-09-01T10:00:00Z") { id }
	}`)

	err := firstError(t, result)
	assert.Equal(t, "NGO not found", err.Message)
	assert.Equal(t, CodeNotFound, errorCode(err))
}

func TestUpdateEventRejectsNegativeVolunteers(t *testing.T) {
	s, m := newTestSchema(t)
	owner := seedUser(t, m, "owner@example.org", models.RoleOrganizer)
	ngo := seedNGO(t, m, owner)
	event := seedEvent(t, m, ngo, "River cleanup")

	result := execute(s, contextFor(owner), fmt.Sprintf(
		`mutation { updateEvent(id: %d, volunteers_needed: -3) { id } }`, event.ID))

	err := firstError(t, result)
	assert.Equal(t, "Field volunteers_needed must not be negative", err.Message)
	assert.Equal(t, CodeBadUserInput, errorCode(err))
}

func TestUpdateEventByOwner(t *testing.T) {
	s, m := newTestSchema(t)
	owner := seedUser(t, m, "owner@example.org", models.RoleOrganizer)
	ngo := seedNGO(t, m, owner)
	event := seedEvent(t, m, ngo, "River cleanup")

	result := execute(s, contextFor(owner), fmt.Sprintf(`mutation {
		updateEvent(id: %d, title: "Harbor cleanup", event_date: "2026-10-05T09:00:00Z", volunteers_needed: 20) {
			id title volunteers_needed
		}
	}`, event.ID))

	updated := dataField(t, result, "updateEvent")
	assert.Equal(t, "Harbor cleanup", updated["title"])
	assert.Equal(t, 20, updated["volunteers_needed"])
	assert.Equal(t, time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC), m.events[0].EventDate.UTC())
}

func TestEventsScopedByOrganizer(t *testing.T) {
	s, m := newTestSchema(t)
	alice := seedUser(t, m, "alice@example.org", models.RoleOrganizer)
	bob := seedUser(t, m, "bob@example.org", models.RoleOrganizer)
	viewer := seedUser(t, m, "viewer@example.org", models.RoleUser)

	aliceNGO := seedNGO(t, m, alice)
	bobNGO := seedNGO(t, m, bob)
	seedEvent(t, m, aliceNGO, "Alice event one")
	seedEvent(t, m, aliceNGO, "Alice event two")
	seedEvent(t, m, bobNGO, "Bob event")

	all := dataList(t, execute(s, contextFor(viewer), `{ events { id title } }`), "events")
	assert.Len(t, all, 3)

	scoped := dataList(t, execute(s, contextFor(viewer), fmt.Sprintf(
		`{ events(organizerId: %d) { id title ngo_id } }`, alice.ID)), "events")
	require.Len(t, scoped, 2)
	for _, entry := range scoped {
		event := entry.(map[string]interface{})
		assert.Equal(t, int(aliceNGO.ID), event["ngo_id"])
	}
}

func TestDeleteEventRemovesRegistrations(t *testing.T) {
	s, m := newTestSchema(t)
	owner := seedUser(t, m, "owner@example.org", models.RoleOrganizer)
	volunteer := seedUser(t, m, "vol@example.org", models.RoleUser)
	ngo := seedNGO(t, m, owner)
	event := seedEvent(t, m, ngo, "River cleanup")
	require.NoError(t, (&fakeVolunteerStore{m}).Register(&models.EventVolunteer{EventID: event.ID, UserID: volunteer.ID}))

	assert.True(t, dataBool(t, execute(s, contextFor(owner), fmt.Sprintf(
		`mutation { deleteEvent(id: %d) }`, event.ID)), "deleteEvent"))

	assert.Empty(t, m.events)
	assert.Empty(t, m.volunteers)
}

func TestEventVolunteersCount(t *testing.T) {
	s, m := newTestSchema(t)
	owner := seedUser(t, m, "owner@example.org", models.RoleOrganizer)
	first := seedUser(t, m, "first@example.org", models.RoleUser)
	second := seedUser(t, m, "second@example.org", models.RoleUser)
	ngo := seedNGO(t, m, owner)
	event := seedEvent(t, m, ngo, "River cleanup")

	require.NoError(t, (&fakeVolunteerStore{m}).Register(&models.EventVolunteer{EventID: event.ID, UserID: first.ID}))
	require.NoError(t, (&fakeVolunteerStore{m}).Register(&models.EventVolunteer{EventID: event.ID, UserID: second.ID}))

	list := dataList(t, execute(s, contextFor(owner), `{ events { id volunteers_count volunteers { user_id user { email } } } }`), "events")
	require.Len(t, list, 1)

	entry := list[0].(map[string]interface{})
	assert.Equal(t, 2, entry["volunteers_count"])

	volunteers := entry["volunteers"].([]interface{})
	require.Len(t, volunteers, 2)
	firstVolunteer := volunteers[0].(map[string]interface{})
	assert.Equal(t, "first@example.org", firstVolunteer["user"].(map[string]interface{})["email"])
}
