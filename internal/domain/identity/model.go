package identity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctor table.
type Doctor struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	Email              string    `db:"email" json:"email"`
	Username           string    `db:"username" json:"username"`
	PasswordHash       string    `db:"password_hash" json:"-"`
	RegistrationNumber string    `db:"registration_number" json:"registration_number,omitempty"`
	Degree             string    `db:"degree" json:"degree,omitempty"`
	Specialization     string    `db:"specialization" json:"specialization,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// Registration is the payload accepted when a doctor signs up.
type Registration struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Username           string `json:"username"`
	Password           string `json:"password"`
	RegistrationNumber string `json:"registration_number"`
	Degree             string `json:"degree"`
	Specialization     string `json:"specialization"`
}
