package domain

// User is a registry record. Records are immutable once stored.
type User struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"gt=0"`
}
