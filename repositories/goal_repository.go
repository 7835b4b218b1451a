package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oac-maputo/supertaca/models"
)

var (
	ErrGoalMatchInvalid  = errors.New("goal references a match that does not exist")
	ErrGoalPlayerInvalid = errors.New("goal references a player that does not exist")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	TopScorers(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
	TopAssists(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

type postgresGoalRepository struct {
	db *sql.DB
}

func NewPostgresGoalRepository(db *sql.DB) GoalRepository {
	return &postgresGoalRepository{db: db}
}

func (r *postgresGoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := `
		INSERT INTO goals (match_id, player_id, assist_player_id, minute)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		goal.MatchID,
		goal.PlayerID,
		goal.AssistPlayerID,
		goal.Minute,
	).Scan(&goal.ID)

	if err != nil {
		if pqErr, ok := pqError(err); ok && pqErr.Code == pqForeignKeyViolation {
			switch pqErr.Constraint {
			case "goals_match_id_fkey":
				return ErrGoalMatchInvalid
			case "goals_player_id_fkey", "goals_assist_player_id_fkey":
				return ErrGoalPlayerInvalid
			}
		}
		return err
	}
	return nil
}

const leaderboardQuery = `
	SELECT p.id AS player_id, p.name AS player_name, COALESCE(t.name, '') AS team_name, COUNT(*) AS count
	FROM goals g
	JOIN players p ON p.id = g.%s
	LEFT JOIN teams t ON t.id = p.team_id
	WHERE p.is_staff = false
	GROUP BY p.id, p.name, t.name
	ORDER BY count DESC, p.name ASC
	LIMIT $1`

func (r *postgresGoalRepository) TopScorers(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	return r.leaderboard(ctx, "player_id", limit)
}

func (r *postgresGoalRepository) TopAssists(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	return r.leaderboard(ctx, "assist_player_id", limit)
}

// column is one of the two fixed goal columns, never user input.
func (r *postgresGoalRepository) leaderboard(ctx context.Context, column string, limit int) ([]*models.LeaderboardEntry, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(leaderboardQuery, column), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.LeaderboardEntry, 0)
	for rows.Next() {
		var e models.LeaderboardEntry
		if scanErr := rows.Scan(&e.PlayerID, &e.PlayerName, &e.TeamName, &e.Count); scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
