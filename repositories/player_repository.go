package repositories

import (
	"context"
	"database/sql"

	"github.com/oac-maputo/supertaca/models"
)

type PlayerRepository interface {
	// ListNonStaff returns every non-staff player joined with the name of its team.
	ListNonStaff(ctx context.Context) ([]*models.Player, error)
	CountNonStaff(ctx context.Context) (int, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) ListNonStaff(ctx context.Context) ([]*models.Player, error) {
	query := `
		SELECT p.id, p.name, p.shirt_number, p.position, p.team_id, p.is_staff, COALESCE(t.name, '')
		FROM players p
		LEFT JOIN teams t ON t.id = p.team_id
		WHERE p.is_staff = false
		ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p, scanErr := scanPlayer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) CountNonStaff(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players WHERE is_staff = false`).Scan(&count)
	return count, err
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var (
		p           models.Player
		shirtNumber sql.NullInt64
		position    sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &shirtNumber, &position, &p.TeamID, &p.IsStaff, &p.TeamName); err != nil {
		return nil, err
	}
	if shirtNumber.Valid {
		n := int(shirtNumber.Int64)
		p.ShirtNumber = &n
	}
	if position.Valid {
		pos := position.String
		p.Position = &pos
	}
	return &p, nil
}
