package dto

import "booking-api/domain"

// CreatePlaceRequest es el body de POST /places
// Las fotos llegan como "addedPhotos" y se guardan como "photos"
type CreatePlaceRequest struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       float64  `json:"price"`
}

// UpdatePlaceRequest es el body de PUT /places
// Todos los campos son opcionales: solo se aplican los que vienen en el JSON
type UpdatePlaceRequest struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title"`
	Address     *string   `json:"address"`
	AddedPhotos *[]string `json:"addedPhotos"`
	Description *string   `json:"description"`
	Perks       *[]string `json:"perks"`
	ExtraInfo   *string   `json:"extraInfo"`
	CheckIn     *int      `json:"checkIn"`
	CheckOut    *int      `json:"checkOut"`
	MaxGuests   *int      `json:"maxGuests"`
	Price       *float64  `json:"price"`
}

// ApplyTo copia los campos presentes del request al place
func (r UpdatePlaceRequest) ApplyTo(p *domain.Place) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.AddedPhotos != nil {
		p.Photos = *r.AddedPhotos
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Perks != nil {
		p.Perks = *r.Perks
	}
	if r.ExtraInfo != nil {
		p.ExtraInfo = *r.ExtraInfo
	}
	if r.CheckIn != nil {
		p.CheckIn = *r.CheckIn
	}
	if r.CheckOut != nil {
		p.CheckOut = *r.CheckOut
	}
	if r.MaxGuests != nil {
		p.MaxGuests = *r.MaxGuests
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
}

// PlaceResponse es la forma pública de un place
type PlaceResponse struct {
	ID          string   `json:"_id"`
	Owner       string   `json:"owner"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Photos      []string `json:"photos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       float64  `json:"price"`
}

func NewPlaceResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID,
		Owner:       p.Owner,
		Title:       p.Title,
		Address:     p.Address,
		Photos:      nonNil(p.Photos),
		Description: p.Description,
		Perks:       nonNil(p.Perks),
		ExtraInfo:   p.ExtraInfo,
		CheckIn:     p.CheckIn,
		CheckOut:    p.CheckOut,
		MaxGuests:   p.MaxGuests,
		Price:       p.Price,
	}
}

func NewPlaceListResponse(places []domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for i := range places {
		out = append(out, NewPlaceResponse(&places[i]))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
