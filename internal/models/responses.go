package models

type BlogResponse struct {
	Message string `json:"message"`
	Blog    *Blog  `json:"blog"`
}

type CategoryResponse struct {
	Message  string    `json:"message"`
	Category *Category `json:"category"`
}

type UserResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}
