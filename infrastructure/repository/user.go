package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/agencyops/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/agencyops/marketing-metrics-api/internal/domain"
)

const usersTable = "users u"

type UserRepository interface {
	FindByEmail(email string) (*domain.User, error)
	FindByID(id int) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.name, u.email, u.password_hash, u.active, u.role_id, u.created_at, u.updated_at").
		From(usersTable).
		Where(squirrel.Eq{"u.email": email}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) FindByID(id int) (*domain.User, error) {
	query, args, err := squirrel.
		Select("u.id, u.name, u.email, u.password_hash, u.active, u.role_id, u.created_at, u.updated_at").
		From(usersTable).
		Where(squirrel.Eq{"u.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	return r.scanUser(r.conn.QueryRow(query, args...))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.RoleID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}
