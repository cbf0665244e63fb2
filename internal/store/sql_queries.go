package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-service/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, name, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByEmailWithHash = `SELECT id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, name, created_at, updated_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, email, name, created_at, updated_at
    FROM users
    ORDER BY created_at;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`
)

// buildUpdateQuery builds a partial UPDATE statement for profile fields.
// The password hash column is deliberately unreachable from here: profile
// updates must never touch credentials.
func buildUpdateQuery(id string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, name, created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
