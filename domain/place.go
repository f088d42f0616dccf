package domain

// Place representa un alojamiento publicado por un usuario (su owner)
type Place struct {
	ID          string   `bson:"_id" gorm:"primaryKey;size:36"`
	Owner       string   `bson:"owner" gorm:"size:36;index;not null"`
	Title       string   `bson:"title"`
	Address     string   `bson:"address"`
	Photos      []string `bson:"photos" gorm:"serializer:json"`
	Description string   `bson:"description"`
	Perks       []string `bson:"perks" gorm:"serializer:json"`
	ExtraInfo   string   `bson:"extraInfo"`
	CheckIn     int      `bson:"checkIn"`
	CheckOut    int      `bson:"checkOut"`
	MaxGuests   int      `bson:"maxGuests"`
	Price       float64  `bson:"price"`
}

func (Place) TableName() string {
	return "places"
}

// IsOwnedBy indica si el usuario es el dueño del place
func (p *Place) IsOwnedBy(userID string) bool {
	return userID != "" && p.Owner == userID
}
