package models

type Plan struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Length      int    `json:"length" db:"length"`
	Coach       string `json:"coach" db:"coach"`
	Description string `json:"description" db:"description"`
	UserID      int64  `json:"user_id" db:"user_id"`
}

// PlanRequest is the body of POST /plans and PUT /plans/:id. Numbers are
// pointers so that a missing field can be told apart from a zero.
type PlanRequest struct {
	Title       string `json:"title" validate:"required"`
	Length      *int   `json:"length" validate:"required,gt=0"`
	Coach       string `json:"coach"`
	Description string `json:"description"`
}
