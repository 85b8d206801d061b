package audit

import "fmt"

// RoleChangeEvent represents a role assignment or removal audit event
type RoleChangeEvent struct {
	ActorID      string
	ClientIP     string
	UserID       string
	RoleID       string
	Removed      bool
	Success      bool
	ErrorMessage string
}

func (e RoleChangeEvent) MessageID() string {
	if e.Removed {
		return "role-remove"
	}
	return "role-assign"
}

func (e RoleChangeEvent) Message() string {
	verb := "assigned role %s to %s"
	if e.Removed {
		verb = "removed role %s from %s"
	}
	msg := fmt.Sprintf("%s "+verb, e.ActorID, e.RoleID, e.UserID)
	if !e.Success {
		msg = fmt.Sprintf("%s failed: %s", msg, e.ErrorMessage)
	}
	return msg
}

func (e RoleChangeEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e RoleChangeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RoleChangeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.ActorID,
		},
		SDIDSubject: {
			"user": e.UserID,
			"role": e.RoleID,
		},
		SDIDAction: {
			"operation": e.MessageID(),
			"result":    result,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}
