package models

import "time"

// RegisterRequest is the JSON body accepted by POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body accepted by POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProjectRequest is the JSON body accepted by POST /projects and
// PUT /projects/{id}/{userId}.
//
// Dates are decoded as RFC 3339 timestamps.
type ProjectRequest struct {
	GroupName   string    `json:"groupName"`
	ProjectName string    `json:"projectName"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"ownerId"`
}

// Project converts the request body into a [Project] without an ID.
func (r ProjectRequest) Project() Project {
	return Project{
		GroupName:   r.GroupName,
		ProjectName: r.ProjectName,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      r.Status,
		OwnerID:     r.OwnerID,
	}
}
