package models

import (
	"time"

	"github.com/google/uuid"
)

// PoliceAlert - заявка о пропавшем ребенке. Запись создается один раз
// и в приложении больше не читается, кроме подтверждения создания.
type PoliceAlert struct {
	ID              uuid.UUID `json:"id"`
	ChildName       string    `json:"child_name"`
	SchoolName      string    `json:"school_name"`
	OverdueBy       string    `json:"overdue_by"`
	TimeLeftSchool  string    `json:"time_left_school"`
	SchoolContact   string    `json:"school_contact"`
	HomeLatitude    float64   `json:"home_latitude"`
	HomeLongitude   float64   `json:"home_longitude"`
	SchoolLatitude  float64   `json:"school_latitude"`
	SchoolLongitude float64   `json:"school_longitude"`
	CreatedAt       time.Time `json:"created_at"`
}
