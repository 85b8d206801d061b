package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := LoginEvent{
		Login:    "admin",
		UserID:   "user-1",
		ClientIP: "192.168.1.1",
		Success:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "school") {
		t.Error("Expected app name 'school' in output")
	}
	if !strings.Contains(output, "login") {
		t.Error("Expected message ID 'login' in output")
	}
	if !strings.Contains(output, "admin") {
		t.Error("Expected login in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "successfully logged in") {
		t.Error("Expected success message in output")
	}
	if !strings.HasPrefix(output, "<") {
		t.Error("Expected RFC5424 PRI prefix")
	}
}

func TestLoginEventSeverity(t *testing.T) {
	success := LoginEvent{Login: "admin", Success: true}
	if success.Severity() != SeverityInfo {
		t.Errorf("Expected SeverityInfo, got %d", success.Severity())
	}

	failure := LoginEvent{Login: "admin", Success: false, ErrorMessage: "bad password"}
	if failure.Severity() != SeverityWarning {
		t.Errorf("Expected SeverityWarning, got %d", failure.Severity())
	}
	if !strings.Contains(failure.Message(), "bad password") {
		t.Error("Expected error message in failure message")
	}
}

func TestCheckEvent(t *testing.T) {
	denied := CheckEvent{UserID: "user-1", Requirement: "fees:collect", Allowed: false}

	if denied.MessageID() != "check" {
		t.Errorf("Expected message ID 'check', got %q", denied.MessageID())
	}
	if !strings.Contains(denied.Message(), "denied") {
		t.Error("Expected 'denied' in message")
	}
	if denied.StructuredData()[SDIDAction]["result"] != "failure" {
		t.Error("Expected failure result in structured data")
	}

	allowed := CheckEvent{UserID: "user-1", Requirement: "fees:collect", Allowed: true}
	if !strings.Contains(allowed.Message(), "allowed") {
		t.Error("Expected 'allowed' in message")
	}
}

func TestRoleChangeEvent(t *testing.T) {
	assign := RoleChangeEvent{
		ActorID: "admin-1",
		UserID:  "user-1",
		RoleID:  "role-1",
		Success: true,
	}
	if assign.MessageID() != "role-assign" {
		t.Errorf("Expected 'role-assign', got %q", assign.MessageID())
	}
	if !strings.Contains(assign.Message(), "assigned role role-1 to user-1") {
		t.Errorf("Unexpected message: %q", assign.Message())
	}

	remove := RoleChangeEvent{
		ActorID: "admin-1",
		UserID:  "user-1",
		RoleID:  "role-1",
		Removed: true,
		Success: true,
	}
	if remove.MessageID() != "role-remove" {
		t.Errorf("Expected 'role-remove', got %q", remove.MessageID())
	}
	if !strings.Contains(remove.Message(), "removed role role-1 from user-1") {
		t.Errorf("Unexpected message: %q", remove.Message())
	}
}

func TestEscapeSDValue(t *testing.T) {
	escaped := escapeSDValue(`va"lue\with]specials`)
	if escaped != `"va\"lue\\with\]specials"` {
		t.Errorf("Unexpected escaping: %s", escaped)
	}
}
