package sqlite

import (
	"context"
	"database/sql"

	"github.com/bvpstudios/verzechat/internal/chat/domain"
)

type usersRepo struct {
	db *sql.DB
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, role)
		VALUES (?, ?, ?, ?)
		RETURNING id, created_at, updated_at`,
		u.Username, mapStringNull(u.Email), u.PasswordHash, string(u.Role),
	)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users WHERE username = ?`, username))
}

func (r *usersRepo) UpdateUsername(ctx context.Context, userID int64, username string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET username = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, username, userID)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET role = ?, updated_at = CURRENT_TIMESTAMP
		WHERE email = ?`, string(role), email)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	return err
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var (
		u     domain.User
		email sql.NullString
		role  string
	)
	err := row.Scan(&u.ID, &u.Username, &email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Email = mapNullString(email)
	u.Role = domain.Role(role)
	return u, nil
}
