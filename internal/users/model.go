package users

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	GoogleID   string    `json:"googleId"`
	FullName   string    `json:"fullName"`
	PictureURL string    `json:"pictureUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
