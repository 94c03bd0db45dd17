package database

import (
	"context"
	"database/sql"
	"errors"

	"golang-sportplans/helpers"
	"golang-sportplans/models"
)

const workoutColumns = `id, plan_id, name, length, type, frequency`

// ownedPlans selects the ids of every plan who may edit.
var ownedPlans = `SELECT id FROM plans WHERE ` + owned("user_id")

func (s *Store) ListWorkouts(ctx context.Context, page Page) ([]models.Workout, error) {
	return s.selectWorkouts(ctx, page, `SELECT `+workoutColumns+` FROM workouts ORDER BY id`)
}

func (s *Store) ListWorkoutsByPlan(ctx context.Context, planID int64, page Page) ([]models.Workout, error) {
	return s.selectWorkouts(ctx, page, `SELECT `+workoutColumns+` FROM workouts WHERE plan_id = ? ORDER BY id`, planID)
}

func (s *Store) selectWorkouts(ctx context.Context, page Page, query string, args ...any) ([]models.Workout, error) {
	query, args = page.apply(query, args)
	workouts := []models.Workout{}
	if err := s.db.SelectContext(ctx, &workouts, query, args...); err != nil {
		return nil, storeErr("listing workouts", err)
	}
	return workouts, nil
}

func (s *Store) GetWorkout(ctx context.Context, id int64) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.GetContext(ctx, &workout, `SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(KindWorkout)
	}
	if err != nil {
		return nil, storeErr("fetching workout", err)
	}
	return &workout, nil
}

// CreateWorkout inserts the workout only if its plan exists and who may edit
// it, in a single INSERT ... SELECT.
func (s *Store) CreateWorkout(ctx context.Context, who helpers.Identity, req models.CreateWorkoutRequest) (*models.Workout, error) {
	planID := *req.PlanID
	args := append([]any{req.Name, *req.Length, req.Type, *req.Frequency, planID}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO workouts (plan_id, name, length, type, frequency)
		SELECT id, ?, ?, ?, ? FROM plans WHERE id = ? AND `+owned("user_id"), args...)
	if err != nil {
		return nil, storeErr("inserting workout", err)
	}
	if err := applied(res, "inserting workout"); err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("reading workout id", err)
	}
	return &models.Workout{
		ID:        id,
		PlanID:    planID,
		Name:      req.Name,
		Length:    *req.Length,
		Type:      req.Type,
		Frequency: *req.Frequency,
	}, nil
}

func (s *Store) UpdateWorkout(ctx context.Context, who helpers.Identity, id int64, req models.WorkoutFields) error {
	args := append([]any{req.Name, *req.Length, req.Type, *req.Frequency, id}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`UPDATE workouts SET name = ?, length = ?, type = ?, frequency = ?
		WHERE id = ? AND plan_id IN (`+ownedPlans+`)`, args...)
	if err != nil {
		return storeErr("updating workout", err)
	}
	return applied(res, "updating workout")
}

// DeleteWorkout removes the workout and its exercises.
func (s *Store) DeleteWorkout(ctx context.Context, who helpers.Identity, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storeErr("starting workout delete", err)
	}
	defer safeRollback(tx)

	args := append([]any{id}, ownerArgs(who)...)
	res, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE id = ? AND plan_id IN (`+ownedPlans+`)`, args...)
	if err != nil {
		return storeErr("deleting workout", err)
	}
	if err := applied(res, "deleting workout"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises WHERE workout_id = ?`, id); err != nil {
		return storeErr("deleting workout exercises", err)
	}

	if err := tx.Commit(); err != nil {
		return storeErr("committing workout delete", err)
	}
	return nil
}
