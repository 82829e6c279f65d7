package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`                                     // Primary key
	Email    string `gorm:"size:64;uniqueIndex;not null"`                   // Unique email, natural key
	Password string `gorm:"size:255;not null" json:"-"`                     // Hashed password, never serialized
	FullName string `gorm:"size:64;not null"`                               // Display name
	RoleID   *uint  `gorm:"index"`                                          // Nullable foreign key to Role
	Role     *Role  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"` // Resolved role, nil when unset
}

// RoleName returns the name of the user's role, or nil when no role is set
func (u User) RoleName() *string {
	if u.Role == nil {
		return nil
	}
	name := u.Role.Name
	return &name
}

// RoleLabel returns the role name, or "" when no role is set
func (u User) RoleLabel() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
