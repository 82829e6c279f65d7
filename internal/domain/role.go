package domain

// Role Model. Users point at their role through User.RoleID.
type Role struct {
	ID   uint   `gorm:"primaryKey"`              // Primary key
	Name string `gorm:"size:64;unique;not null"` // Unique role name
}
