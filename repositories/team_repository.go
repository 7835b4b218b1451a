package repositories

import (
	"context"
	"database/sql"

	"github.com/oac-maputo/supertaca/models"
)

type TeamRepository interface {
	ListOrderedByName(ctx context.Context) ([]*models.Team, error)
	Count(ctx context.Context) (int, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) ListOrderedByName(ctx context.Context) ([]*models.Team, error) {
	query := `SELECT id, name, "group" FROM teams ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		var t models.Team
		if scanErr := rows.Scan(&t.ID, &t.Name, &t.Group); scanErr != nil {
			return nil, scanErr
		}
		teams = append(teams, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *postgresTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count)
	return count, err
}
