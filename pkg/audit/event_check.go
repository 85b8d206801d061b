package audit

import "fmt"

// CheckEvent represents a permission check audit event
type CheckEvent struct {
	UserID      string
	ClientIP    string
	Requirement string
	Allowed     bool
}

func (e CheckEvent) MessageID() string {
	return "check"
}

func (e CheckEvent) Message() string {
	if e.Allowed {
		return fmt.Sprintf("%s checked permission %s: allowed", e.UserID, e.Requirement)
	}
	return fmt.Sprintf("%s checked permission %s: denied", e.UserID, e.Requirement)
}

func (e CheckEvent) Severity() Severity {
	if e.Allowed {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e CheckEvent) Facility() int {
	return FacilityAuthPriv
}

func (e CheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Allowed {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.UserID,
		},
		SDIDAction: {
			"operation": "check",
			"privilege": e.Requirement,
			"result":    result,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}
