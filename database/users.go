package database

import (
	"context"
	"database/sql"
	"errors"

	"golang-sportplans/helpers"
	"golang-sportplans/models"
)

func (s *Store) CreateUser(ctx context.Context, username, passwordHash, role string) (*models.User, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password, role) VALUES (?, ?, ?)`,
		username, passwordHash, role)
	if err != nil {
		if isDuplicate(err) {
			return nil, helpers.ErrDuplicateUsername
		}
		return nil, storeErr("inserting user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("reading user id", err)
	}
	return &models.User{ID: id, Username: username, PasswordHash: passwordHash, Role: role}, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, `SELECT id, username, password, role FROM users WHERE username = ?`, username)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, `SELECT id, username, password, role FROM users WHERE id = ?`, id)
}

func (s *Store) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, helpers.Errorf(helpers.ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, storeErr("fetching user", err)
	}
	return &user, nil
}
