// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Project is a unit of work owned by exactly one [User].
//
// StartDate and EndDate are not cross-checked: a project may end before it
// starts. Status is a free-form label.
type Project struct {
	// ID is the opaque unique identifier assigned by the store on creation.
	ID string `json:"id"`

	GroupName   string `json:"groupName"`
	ProjectName string `json:"projectName"`
	Description string `json:"description"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Status string `json:"status"`

	// OwnerID references the owning user. The store rejects unknown owners.
	OwnerID string `json:"ownerId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}
