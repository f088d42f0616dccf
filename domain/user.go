package domain

// User representa un usuario registrado
// El mismo struct se guarda en Mongo (bson) y en SQL (gorm)
type User struct {
	ID       string `bson:"_id" gorm:"primaryKey;size:36" json:"_id"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `bson:"password" gorm:"not null" json:"-"` // El "-" oculta el hash en JSON
}

// TableName especifica el nombre de la tabla en SQL
func (User) TableName() string {
	return "users"
}
