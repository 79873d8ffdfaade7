package entities

// User rows are identified by name only. Names are not unique by
// constraint; duplicate registrations are allowed and deletion by name
// removes every matching row.
type User struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50)" json:"name"`
}

func (User) TableName() string {
	return "users"
}
