package models

// UserModel is the row of the users table. Username is NULL for profiles
// created by token login.
type UserModel struct {
	ID           string  `gorm:"primaryKey;size:128"`
	Name         string  `gorm:"size:255;not null;default:''"`
	Username     *string `gorm:"size:100;uniqueIndex"`
	Email        string  `gorm:"size:255;not null;default:'';index"`
	Role         string  `gorm:"size:20;not null;default:'cliente'"`
	EmpresaID    string  `gorm:"size:64;not null;default:''"`
	Status       string  `gorm:"size:20;not null;default:'active'"`
	PasswordHash string  `gorm:"size:255;not null;default:''"`
	CreatedAt    int64   `gorm:"autoCreateTime:false;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:false;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
