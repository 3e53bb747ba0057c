package model

import "time"

// UserRole is the RBAC role nominally assigned to a portal user. Roles are
// fixture data; the portal itself performs no authorization.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
	RoleViewer   UserRole = "viewer"
)

// User is a fixed portal user fixture.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	Avatar    string    `json:"avatar"`
	LastLogin time.Time `json:"lastLoginAt"`
}

// AuditLog is one activity-log entry. Action names are dotted
// (e.g. "incident.escalated"); the Details payload shape depends on the
// action prefix.
type AuditLog struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	UserID     string         `json:"userId"`
	UserName   string         `json:"userName"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource"`
	ResourceID string         `json:"resourceId"`
	Details    map[string]any `json:"details"`
}
