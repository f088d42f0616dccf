package domain

import "time"

// Booking representa una reserva de un usuario sobre un place
// No se valida solapamiento de fechas con otras reservas.
// Las fechas son nil si no vinieron en el request (MySQL rechaza 0000-00-00)
type Booking struct {
	ID             string     `bson:"_id" gorm:"primaryKey;size:36"`
	PlaceID        string     `bson:"place" gorm:"size:36;index"`
	UserID         string     `bson:"user" gorm:"size:36;index;not null"`
	CheckIn        *time.Time `bson:"checkIn"`
	CheckOut       *time.Time `bson:"checkOut"`
	NumberOfGuests int        `bson:"numberOfGuests"`
	Name           string     `bson:"name"`
	Phone          string     `bson:"phone"`
	Price          float64    `bson:"price"`

	// Place se completa solo al listar (populate); no se persiste
	Place *Place `bson:"-" gorm:"foreignKey:PlaceID"`
}

func (Booking) TableName() string {
	return "bookings"
}
