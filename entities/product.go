package entities

// Product is one expiration-tracked grocery item. ExpiryDate is kept as the
// raw ISO string so listing can sort it lexicographically, matching the
// column collation.
type Product struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName   string `gorm:"type:varchar(50)" json:"user_name"`
	ItemName   string `gorm:"type:varchar(50)" json:"item_name"`
	ExpiryType string `gorm:"type:varchar(20)" json:"expiry_type"`
	ExpiryDate string `gorm:"type:varchar(10)" json:"expiry_date"`
}

func (Product) TableName() string {
	return "product"
}
