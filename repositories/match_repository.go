package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/oac-maputo/supertaca/models"
)

var (
	ErrMatchTeamInvalid  = errors.New("match team does not exist")
	ErrMatchScoreInvalid = errors.New("match score or round violates constraints")
)

type MatchRepository interface {
	// Create inserts the match and fills in its generated ID and creation time.
	Create(ctx context.Context, match *models.Match) error
	List(ctx context.Context) ([]*models.Match, error)
	Count(ctx context.Context) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (home_team_id, away_team_id, home_goals, away_goals, round)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.HomeTeamID,
		match.AwayTeamID,
		match.HomeGoals,
		match.AwayGoals,
		match.Round,
	).Scan(&match.ID, &match.CreatedAt)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) List(ctx context.Context) ([]*models.Match, error) {
	query := `
		SELECT id, home_team_id, away_team_id, home_goals, away_goals, round, created_at
		FROM matches
		ORDER BY round ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		var m models.Match
		if scanErr := rows.Scan(
			&m.ID,
			&m.HomeTeamID,
			&m.AwayTeamID,
			&m.HomeGoals,
			&m.AwayGoals,
			&m.Round,
			&m.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	return count, err
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := pqError(err); ok {
		switch pqErr.Code {
		case pqForeignKeyViolation:
			switch pqErr.Constraint {
			case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
				return ErrMatchTeamInvalid
			}
		case pqCheckViolation:
			return ErrMatchScoreInvalid
		}
	}
	return err
}
