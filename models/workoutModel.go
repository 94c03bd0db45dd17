package models

type Workout struct {
	ID        int64  `json:"id" db:"id"`
	PlanID    int64  `json:"plan_id" db:"plan_id"`
	Name      string `json:"name" db:"name"`
	Length    int    `json:"length" db:"length"`
	Type      string `json:"type" db:"type"`
	Frequency int    `json:"frequency" db:"frequency"`
}

type WorkoutFields struct {
	Name      string `json:"name" validate:"required"`
	Length    *int   `json:"length" validate:"required,gt=0"`
	Type      string `json:"type"`
	Frequency *int   `json:"frequency" validate:"required,gt=0"`
}

// CreateWorkoutRequest names the parent plan; updates never move a workout.
type CreateWorkoutRequest struct {
	PlanID *int64 `json:"plan_id" validate:"required"`
	WorkoutFields
}
