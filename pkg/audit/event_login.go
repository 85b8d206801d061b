package audit

import "fmt"

// LoginEvent represents a login attempt audit event
type LoginEvent struct {
	Login        string
	UserID       string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e LoginEvent) MessageID() string {
	return "login"
}

func (e LoginEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully logged in", e.Login)
	}
	msg := fmt.Sprintf("%s failed to log in", e.Login)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoginEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e LoginEvent) Facility() int {
	return FacilityAuthPriv
}

func (e LoginEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"login": e.Login,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.UserID != "" {
		sd[SDIDAuth]["user"] = e.UserID
	}
	return sd
}
