package college

import "time"

type Student struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name" validate:"required,max=50"`
	LastName  string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name" validate:"required,max=50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string { return "student" }

func (s *Student) SetFullName(firstName, lastName string) *Student {
	s.FirstName = firstName
	s.LastName = lastName
	return s
}

func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID == other.ID &&
		s.FirstName == other.FirstName &&
		s.LastName == other.LastName
}
