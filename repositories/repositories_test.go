package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/oac-maputo/supertaca/models"
)

func newMock(t *testing.T) (sqlmock.Sqlmock, func() error, *postgresMatchRepository, *postgresGoalRepository, *postgresTeamRepository, *postgresPlayerRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mock, mock.ExpectationsWereMet,
		&postgresMatchRepository{db: db},
		&postgresGoalRepository{db: db},
		&postgresTeamRepository{db: db},
		&postgresPlayerRepository{db: db}
}

func TestMatchCreateReturnsGeneratedID(t *testing.T) {
	mock, met, matches, _, _, _ := newMock(t)
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO matches")).
		WithArgs(3, 5, 2, 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

	m := &models.Match{HomeTeamID: 3, AwayTeamID: 5, HomeGoals: 2, AwayGoals: 1, Round: 2}
	if err := matches.Create(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 42 || !m.CreatedAt.Equal(created) {
		t.Fatalf("expected id 42 and created_at set, got %+v", m)
	}
	if err := met(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMatchCreateMapsForeignKeyViolation(t *testing.T) {
	mock, _, matches, _, _, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO matches")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "matches_away_team_id_fkey"})

	err := matches.Create(context.Background(), &models.Match{HomeTeamID: 1, AwayTeamID: 99})
	if !errors.Is(err, ErrMatchTeamInvalid) {
		t.Fatalf("expected ErrMatchTeamInvalid, got %v", err)
	}
}

func TestGoalCreatePassesNullableColumns(t *testing.T) {
	mock, met, _, goals, _, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO goals")).
		WithArgs(42, 7, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	g := &models.Goal{MatchID: 42, PlayerID: 7}
	if err := goals.Create(context.Background(), g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID != 1 {
		t.Fatalf("expected goal id 1, got %d", g.ID)
	}
	if err := met(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGoalCreateMapsPlayerViolation(t *testing.T) {
	mock, _, _, goals, _, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO goals")).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "goals_assist_player_id_fkey"})

	assist := 1000
	err := goals.Create(context.Background(), &models.Goal{MatchID: 1, PlayerID: 2, AssistPlayerID: &assist})
	if !errors.Is(err, ErrGoalPlayerInvalid) {
		t.Fatalf("expected ErrGoalPlayerInvalid, got %v", err)
	}
}

func TestTopAssistsGroupsByAssistColumn(t *testing.T) {
	mock, met, _, goals, _, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN players p ON p.id = g.assist_player_id")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"player_id", "player_name", "team_name", "count"}).
			AddRow(4, "Nelson", "Malhangalene", 3).
			AddRow(9, "Abel", "Polana", 1))

	entries, err := goals.TopAssists(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].PlayerName != "Nelson" || entries[0].Count != 3 {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if err := met(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTeamsListedByName(t *testing.T) {
	mock, _, _, _, teams, _ := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM teams ORDER BY name ASC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "group"}).
			AddRow(2, "Alto Maé", "B").
			AddRow(1, "Zimpeto", "A"))

	list, err := teams.ListOrderedByName(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Alto Maé" || list[1].Group != "A" {
		t.Fatalf("unexpected teams %+v", list)
	}
}

func TestPlayersNonStaffScanNullables(t *testing.T) {
	mock, _, _, _, _, players := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.is_staff = false")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "shirt_number", "position", "team_id", "is_staff", "team_name"}).
			AddRow(1, "Dino", 10, "FW", 3, false, "Polana").
			AddRow(2, "Tó", nil, nil, 4, false, "Zimpeto"))

	list, err := players.ListNonStaff(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 players, got %d", len(list))
	}
	if list[0].ShirtNumber == nil || *list[0].ShirtNumber != 10 || list[0].TeamName != "Polana" {
		t.Fatalf("unexpected first player %+v", list[0])
	}
	if list[1].ShirtNumber != nil || list[1].Position != nil {
		t.Fatalf("expected null shirt number and position, got %+v", list[1])
	}
}
