package model

import domainauth "github.com/nutritrack/nutritrack/internal/domain/auth"

// AdminUser is a user record as seen by the admin back-office.
type AdminUser struct {
	ID        string              `json:"id"`
	Username  string              `json:"username"`
	Email     string              `json:"email,omitempty"`
	FullName  string              `json:"fullName,omitempty"`
	Roles     domainauth.RoleList `json:"roles"`
	IsLocked  bool                `json:"isLocked"`
	CreatedAt string              `json:"createdAt,omitempty"`
}

// RetrainJob describes a triggered AI retraining run.
type RetrainJob struct {
	Status string `json:"status"`
	JobID  string `json:"jobId"`
}
