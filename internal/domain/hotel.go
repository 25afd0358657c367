package domain

import "time"

type Hotel struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	StarRating      int       `json:"star_rating"`
	EstablishedDate time.Time `json:"established_date"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
}
