package entity

import (
	"context"
	"regexp"
	"time"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	}

	if r.Username == "" {
		problems["Username"] = append(problems["Username"], "Username is required")
	}

	if len(r.Username) > 16 {
		problems["Username"] = append(problems["Username"], "User name is too long")
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["Email/Username"] = append(problems["Email/Username"], "Either Email or Username is required")
	}

	if r.Email != "" {
		emailRegex := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
		if !regexp.MustCompile(emailRegex).MatchString(r.Email) {
			problems["Email"] = append(problems["Email"], "Invalid email format")
		}
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type SwipeRequest struct {
	GarmentID uint   `json:"garment_id"`
	Direction string `json:"direction"`
}

func (r *SwipeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.GarmentID == 0 {
		problems["GarmentID"] = append(problems["GarmentID"], "Garment id is required")
	}

	if !SwipeDirection(r.Direction).Valid() {
		problems["Direction"] = append(problems["Direction"], "Direction must be LEFT or RIGHT")
	}

	return problems
}

type SuperLikeRequest struct {
	GarmentID uint   `json:"garment_id"`
	Message   string `json:"message"`
}

func (r *SuperLikeRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.GarmentID == 0 {
		problems["GarmentID"] = append(problems["GarmentID"], "Garment id is required")
	}

	if len(r.Message) > 280 {
		problems["Message"] = append(problems["Message"], "Message is too long")
	}

	return problems
}

type CreateGarmentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Condition   string `json:"condition"`
	ImageURL    string `json:"image_url"`
}

func (r *CreateGarmentRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Title == "" {
		problems["Title"] = append(problems["Title"], "Title is required")
	}

	if len(r.Title) > 120 {
		problems["Title"] = append(problems["Title"], "Title is too long")
	}

	if r.Size == "" {
		problems["Size"] = append(problems["Size"], "Size is required")
	}

	return problems
}

type UpdateGarmentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Brand       *string `json:"brand"`
	Size        *string `json:"size"`
	Color       *string `json:"color"`
	Condition   *string `json:"condition"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"image_url"`
}

type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateMatchStatusRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if !MatchStatus(r.Status).Valid() {
		problems["Status"] = append(problems["Status"], "Unknown match status")
	}

	return problems
}

type ProposeGarmentRequest struct {
	GarmentID uint `json:"garment_id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (r *SendMessageRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Content == "" {
		problems["Content"] = append(problems["Content"], "Content is required")
	}

	return problems
}

type CreateEventRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	IsVirtual       bool       `json:"is_virtual"`
	Address         string     `json:"address"`
	MeetingURL      string     `json:"meeting_url"`
	MaxParticipants *int       `json:"max_participants"`
	ImageURL        string     `json:"image_url"`
}

func (r *CreateEventRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Title == "" {
		problems["Title"] = append(problems["Title"], "Title is required")
	}

	if r.StartTime.IsZero() {
		problems["StartTime"] = append(problems["StartTime"], "Start time is required")
	}

	if r.EndTime != nil && r.EndTime.Before(r.StartTime) {
		problems["EndTime"] = append(problems["EndTime"], "End time must be after start time")
	}

	return problems
}
