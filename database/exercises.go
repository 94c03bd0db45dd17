package database

import (
	"context"
	"database/sql"
	"errors"

	"golang-sportplans/helpers"
	"golang-sportplans/models"
)

const exerciseColumns = `id, workout_id, name, sets, reps, restTime, tips`

// ownedWorkouts selects the ids of every workout whose plan who may edit.
var ownedWorkouts = `SELECT w.id FROM workouts w JOIN plans p ON p.id = w.plan_id WHERE ` + owned("p.user_id")

func (s *Store) ListExercises(ctx context.Context, page Page) ([]models.Exercise, error) {
	return s.selectExercises(ctx, page, `SELECT `+exerciseColumns+` FROM exercises ORDER BY id`)
}

func (s *Store) ListExercisesByWorkout(ctx context.Context, workoutID int64, page Page) ([]models.Exercise, error) {
	return s.selectExercises(ctx, page, `SELECT `+exerciseColumns+` FROM exercises WHERE workout_id = ? ORDER BY id`, workoutID)
}

func (s *Store) selectExercises(ctx context.Context, page Page, query string, args ...any) ([]models.Exercise, error) {
	query, args = page.apply(query, args)
	exercises := []models.Exercise{}
	if err := s.db.SelectContext(ctx, &exercises, query, args...); err != nil {
		return nil, storeErr("listing exercises", err)
	}
	return exercises, nil
}

func (s *Store) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	var exercise models.Exercise
	err := s.db.GetContext(ctx, &exercise, `SELECT `+exerciseColumns+` FROM exercises WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(KindExercise)
	}
	if err != nil {
		return nil, storeErr("fetching exercise", err)
	}
	return &exercise, nil
}

// CreateExercise inserts the exercise only if its workout exists and who may
// edit the workout's plan.
func (s *Store) CreateExercise(ctx context.Context, who helpers.Identity, req models.CreateExerciseRequest) (*models.Exercise, error) {
	workoutID := *req.WorkoutID
	args := append([]any{req.Name, *req.Sets, *req.Reps, *req.RestTime, req.Tips, workoutID}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO exercises (workout_id, name, sets, reps, restTime, tips)
		SELECT w.id, ?, ?, ?, ?, ? FROM workouts w JOIN plans p ON p.id = w.plan_id
		WHERE w.id = ? AND `+owned("p.user_id"), args...)
	if err != nil {
		return nil, storeErr("inserting exercise", err)
	}
	if err := applied(res, "inserting exercise"); err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("reading exercise id", err)
	}
	return &models.Exercise{
		ID:        id,
		WorkoutID: workoutID,
		Name:      req.Name,
		Sets:      *req.Sets,
		Reps:      *req.Reps,
		RestTime:  *req.RestTime,
		Tips:      req.Tips,
	}, nil
}

func (s *Store) UpdateExercise(ctx context.Context, who helpers.Identity, id int64, req models.ExerciseFields) error {
	args := append([]any{req.Name, *req.Sets, *req.Reps, *req.RestTime, req.Tips, id}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`UPDATE exercises SET name = ?, sets = ?, reps = ?, restTime = ?, tips = ?
		WHERE id = ? AND workout_id IN (`+ownedWorkouts+`)`, args...)
	if err != nil {
		return storeErr("updating exercise", err)
	}
	return applied(res, "updating exercise")
}

func (s *Store) DeleteExercise(ctx context.Context, who helpers.Identity, id int64) error {
	args := append([]any{id}, ownerArgs(who)...)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM exercises WHERE id = ? AND workout_id IN (`+ownedWorkouts+`)`, args...)
	if err != nil {
		return storeErr("deleting exercise", err)
	}
	return applied(res, "deleting exercise")
}
