package esi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFleetCharacterFleet(t *testing.T) {
	client, rec := newRecordingClient(t, `{"fleet_id": 1234567890, "role": "fleet_commander"}`)

	fleet, err := client.Fleet.CharacterFleet(context.Background(), "123456")
	require.NoError(t, err)

	assert.Equal(t, "/latest/characters/123456/fleet/", rec.Path)
	assert.Equal(t, "Bearer access-token", rec.Auth)
	assert.Contains(t, string(fleet), "fleet_commander")
}

func TestFleetUpdate(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	freeMove := true
	motd := "Fly safe"
	err := client.Fleet.Update(context.Background(), 1234567890, "123456", FleetUpdate{
		IsFreeMove: &freeMove,
		MOTD:       &motd,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/latest/fleets/1234567890/", rec.Path)
	assert.JSONEq(t, `{"is_free_move": true, "motd": "Fly safe"}`, rec.Body)
}

func TestFleetUpdatePartial(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	motd := "o7"
	err := client.Fleet.Update(context.Background(), 1234567890, "123456", FleetUpdate{MOTD: &motd})
	require.NoError(t, err)

	// Unset fields are omitted, not zeroed.
	assert.JSONEq(t, `{"motd": "o7"}`, rec.Body)
}

func TestFleetInvite(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	err := client.Fleet.Invite(context.Background(), 1234567890, "123456", FleetInvite{
		CharacterID: 654321,
		Role:        "squad_member",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/latest/fleets/1234567890/members/", rec.Path)
	assert.JSONEq(t, `{"character_id": 654321, "role": "squad_member"}`, rec.Body)
}

func TestFleetKick(t *testing.T) {
	client, rec := newRecordingClient(t, ``)

	err := client.Fleet.Kick(context.Background(), 1234567890, "123456", 654321)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/latest/fleets/1234567890/members/654321/", rec.Path)
}

func TestFleetWingSquadLifecycle(t *testing.T) {
	client, rec := newRecordingClient(t, `{"wing_id": 1}`)

	created, err := client.Fleet.CreateWing(context.Background(), 1234567890, "123456")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/latest/fleets/1234567890/wings/", rec.Path)
	assert.JSONEq(t, `{"wing_id": 1}`, string(created))

	err = client.Fleet.RenameWing(context.Background(), 1234567890, "123456", 1, "Vanguard")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.JSONEq(t, `{"name": "Vanguard"}`, rec.Body)

	_, err = client.Fleet.CreateSquad(context.Background(), 1234567890, "123456", 1)
	require.NoError(t, err)
	assert.Equal(t, "/latest/fleets/1234567890/wings/1/squads/", rec.Path)

	err = client.Fleet.DeleteWing(context.Background(), 1234567890, "123456", 1)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, rec.Method)
}
