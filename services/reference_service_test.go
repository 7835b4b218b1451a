package services

import (
	"context"
	"testing"
	"time"

	"github.com/oac-maputo/supertaca/models"
)

func TestLoadFillsBothCollections(t *testing.T) {
	svc := NewReferenceService(
		&stubTeamRepo{teams: []*models.Team{{ID: 1, Name: "Alto Maé"}, {ID: 2, Name: "Polana"}}},
		&stubPlayerRepo{players: []*models.Player{{ID: 7, TeamID: 1, TeamName: "Alto Maé"}}},
		discardLogger(),
	)

	data := svc.Load(context.Background())
	if !data.Loaded {
		t.Fatalf("expected loaded flag")
	}
	if len(data.Teams) != 2 || data.Teams[0].Name != "Alto Maé" {
		t.Fatalf("unexpected teams %+v", data.Teams)
	}
	if len(data.Players) != 1 || data.Players[0].TeamName != "Alto Maé" {
		t.Fatalf("unexpected players %+v", data.Players)
	}
}

func TestLoadFailureLeavesOnlyThatCollectionEmpty(t *testing.T) {
	svc := NewReferenceService(
		&stubTeamRepo{err: errBackend},
		&stubPlayerRepo{players: []*models.Player{{ID: 7}}},
		discardLogger(),
	)

	data := svc.Load(context.Background())
	if !data.Loaded {
		t.Fatalf("loading must settle even when a fetch fails")
	}
	if data.Teams == nil || len(data.Teams) != 0 {
		t.Fatalf("expected empty, non-nil teams, got %#v", data.Teams)
	}
	if len(data.Players) != 1 {
		t.Fatalf("player fetch should not be affected, got %+v", data.Players)
	}
}

func TestLoadFetchesConcurrently(t *testing.T) {
	teamsStarted := make(chan struct{})
	playersStarted := make(chan struct{})

	// Each fetch waits for the other to start, so a sequential Load never returns.
	svc := NewReferenceService(
		&stubTeamRepo{
			teams: []*models.Team{{ID: 1}},
			onList: func() {
				close(teamsStarted)
				<-playersStarted
			},
		},
		&stubPlayerRepo{
			players: []*models.Player{{ID: 7}},
			onList: func() {
				close(playersStarted)
				<-teamsStarted
			},
		},
		discardLogger(),
	)

	done := make(chan *ReferenceData, 1)
	go func() { done <- svc.Load(context.Background()) }()

	select {
	case data := <-done:
		if len(data.Teams) != 1 || len(data.Players) != 1 {
			t.Fatalf("unexpected data %+v", data)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Load did not run the team and player fetches at the same time")
	}
}
