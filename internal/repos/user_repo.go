package repos

import (
	"database/sql"
	"errors"

	"productgen/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,username,password_hash FROM users WHERE username=?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert creates the user or replaces its password hash.
func (r *UserRepo) Upsert(u domain.User) error {
	_, err := r.DB.Exec(`INSERT INTO users(id,username,password_hash) VALUES(?,?,?)
                         ON CONFLICT(username) DO UPDATE SET password_hash=excluded.password_hash`,
		u.ID, u.Username, u.Hash)
	return err
}
