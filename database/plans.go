package database

import (
	"context"
	"database/sql"
	"errors"

	"golang-sportplans/helpers"
	"golang-sportplans/models"
)

const planColumns = `id, title, length, coach, description, user_id`

func (s *Store) ListPlans(ctx context.Context, page Page) ([]models.Plan, error) {
	query, args := page.apply(`SELECT `+planColumns+` FROM plans ORDER BY id`, nil)
	plans := []models.Plan{}
	if err := s.db.SelectContext(ctx, &plans, query, args...); err != nil {
		return nil, storeErr("listing plans", err)
	}
	return plans, nil
}

func (s *Store) GetPlan(ctx context.Context, id int64) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.GetContext(ctx, &plan, `SELECT `+planColumns+` FROM plans WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(KindPlan)
	}
	if err != nil {
		return nil, storeErr("fetching plan", err)
	}
	return &plan, nil
}

// CreatePlan stores a plan owned by ownerID.
func (s *Store) CreatePlan(ctx context.Context, ownerID int64, req models.PlanRequest) (*models.Plan, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO plans (title, length, coach, description, user_id) VALUES (?, ?, ?, ?, ?)`,
		req.Title, *req.Length, req.Coach, req.Description, ownerID)
	if err != nil {
		return nil, storeErr("inserting plan", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("reading plan id", err)
	}
	return &models.Plan{
		ID:          id,
		Title:       req.Title,
		Length:      *req.Length,
		Coach:       req.Coach,
		Description: req.Description,
		UserID:      ownerID,
	}, nil
}

// UpdatePlan rewrites the mutable fields if who may still edit the plan.
// The owner column is never written.
func (s *Store) UpdatePlan(ctx context.Context, who helpers.Identity, id int64, req models.PlanRequest) error {
	args := append([]any{req.Title, *req.Length, req.Coach, req.Description, id}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`UPDATE plans SET title = ?, length = ?, coach = ?, description = ?
		WHERE id = ? AND `+owned("user_id"), args...)
	if err != nil {
		return storeErr("updating plan", err)
	}
	return applied(res, "updating plan")
}

// DeletePlan removes the plan with its workouts and their exercises.
func (s *Store) DeletePlan(ctx context.Context, who helpers.Identity, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("starting plan delete", err)
	}
	defer safeRollback(tx)

	args := append([]any{id}, ownerArgs(who)...)
	res, err := tx.ExecContext(ctx, `DELETE FROM plans WHERE id = ? AND `+owned("user_id"), args...)
	if err != nil {
		return storeErr("deleting plan", err)
	}
	if err := applied(res, "deleting plan"); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM exercises WHERE workout_id IN (SELECT id FROM workouts WHERE plan_id = ?)`, id); err != nil {
		return storeErr("deleting plan exercises", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE plan_id = ?`, id); err != nil {
		return storeErr("deleting plan workouts", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("committing plan delete", err)
	}
	return nil
}
