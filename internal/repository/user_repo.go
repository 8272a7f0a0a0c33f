package repository

import (
	"context"
	"errors"
	"fmt"

	"rfcbot/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepo реализует хранилище пользователей GitHub на базе PostgreSQL.
// Таблица githubuser наполняется отдельным процессом синхронизации с GitHub.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// GetByLogin возвращает запись пользователя по точному совпадению логина.
// Если пользователь не найден, возвращает ErrUserNotFound.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (model.GitHubUser, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, login
FROM githubuser
WHERE login = $1
`, login)

	var u model.GitHubUser
	if err := row.Scan(&u.ID, &u.Login); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GitHubUser{}, ErrUserNotFound
		}
		return model.GitHubUser{}, fmt.Errorf("get github user: %w", err)
	}
	return u, nil
}
