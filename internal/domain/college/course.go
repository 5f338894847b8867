package college

import "time"

type Course struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string    `gorm:"column:code;type:varchar(16);not null;uniqueIndex:idx_course_code" json:"code" validate:"required,max=16"`
	Title       string    `gorm:"column:title;type:varchar(100);not null" json:"title" validate:"required,max=100"`
	Year        int       `gorm:"column:year;not null" json:"year" validate:"gte=1900,lte=9999"`
	Term        Term      `gorm:"column:term;type:varchar(6);not null" json:"term" validate:"oneof=AUTUMN WINTER SPRING SUMMER"`
	CreditUnits int       `gorm:"column:credit_units;not null" json:"credit_units" validate:"gte=0"`
	Online      int8      `gorm:"column:online;not null;default:0" json:"online"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string { return "course" }

// SetCourse overwrites every descriptive field and returns c for chaining.
func (c *Course) SetCourse(code, title string, year int, term Term, creditUnits int, online int8) *Course {
	c.Code = code
	c.Title = title
	c.Year = year
	c.Term = term
	c.CreditUnits = creditUnits
	c.Online = online
	return c
}

// Equal compares identity and persisted attributes; timestamps are ignored.
func (c *Course) Equal(other *Course) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID &&
		c.Code == other.Code &&
		c.Title == other.Title &&
		c.Year == other.Year &&
		c.Term == other.Term &&
		c.CreditUnits == other.CreditUnits &&
		c.Online == other.Online
}
