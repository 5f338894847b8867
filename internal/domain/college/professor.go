package college

import "time"

type Professor struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"column:first_name;type:varchar(50);not null" json:"first_name" validate:"required,max=50"`
	LastName   string    `gorm:"column:last_name;type:varchar(50);not null" json:"last_name" validate:"required,max=50"`
	Department string    `gorm:"column:department;type:varchar(100)" json:"department" validate:"max=100"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Professor) TableName() string { return "professor" }

func (p *Professor) SetProfessor(firstName, lastName, department string) *Professor {
	p.FirstName = firstName
	p.LastName = lastName
	p.Department = department
	return p
}

func (p *Professor) Equal(other *Professor) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID &&
		p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Department == other.Department
}
