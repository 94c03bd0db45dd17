package models

type Exercise struct {
	ID        int64   `json:"id" db:"id"`
	WorkoutID int64   `json:"workout_id" db:"workout_id"`
	Name      string  `json:"name" db:"name"`
	Sets      int     `json:"sets" db:"sets"`
	Reps      int     `json:"reps" db:"reps"`
	RestTime  int     `json:"restTime" db:"restTime"`
	Tips      *string `json:"tips" db:"tips"`
}

type ExerciseFields struct {
	Name     string  `json:"name" validate:"required"`
	Sets     *int    `json:"sets" validate:"required,gt=0"`
	Reps     *int    `json:"reps" validate:"required,gt=0"`
	RestTime *int    `json:"restTime" validate:"required,gte=0"`
	Tips     *string `json:"tips"`
}

type CreateExerciseRequest struct {
	WorkoutID *int64 `json:"workout_id" validate:"required"`
	ExerciseFields
}
