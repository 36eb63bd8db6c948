package domain

type User struct {
	ID       int64   `json:"id" db:"id"`
	Email    string  `json:"email" db:"email"`
	Name     string  `json:"name" db:"name"`
	PhotoURL *string `json:"photoUrl" db:"photo_url"`
}
