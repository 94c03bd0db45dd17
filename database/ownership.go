package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang-sportplans/helpers"
)

type ResourceKind string

const (
	KindPlan     ResourceKind = "Plan"
	KindWorkout  ResourceKind = "Workout"
	KindExercise ResourceKind = "Exercise"
)

func notFound(kind ResourceKind) error {
	return helpers.Errorf(helpers.ErrNotFound, "%s not found", kind)
}

// ResolveOwner returns the user id owning the plan above the given resource.
// It follows exercise -> workout -> plan one lookup at a time and stops with
// ErrNotFound at the first missing row.
func (s *Store) ResolveOwner(ctx context.Context, kind ResourceKind, id int64) (int64, error) {
	switch kind {
	case KindExercise:
		workoutID, err := s.lookup(ctx, KindExercise, `SELECT workout_id FROM exercises WHERE id = ?`, id)
		if err != nil {
			return 0, err
		}
		id = workoutID
		fallthrough
	case KindWorkout:
		planID, err := s.lookup(ctx, KindWorkout, `SELECT plan_id FROM workouts WHERE id = ?`, id)
		if err != nil {
			return 0, err
		}
		id = planID
		fallthrough
	case KindPlan:
		return s.lookup(ctx, KindPlan, `SELECT user_id FROM plans WHERE id = ?`, id)
	}
	return 0, fmt.Errorf("unknown resource kind %q", kind)
}

func (s *Store) lookup(ctx context.Context, kind ResourceKind, query string, id int64) (int64, error) {
	var next int64
	err := s.db.GetContext(ctx, &next, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, notFound(kind)
	}
	if err != nil {
		return 0, storeErr("resolving "+string(kind)+" owner", err)
	}
	return next, nil
}
