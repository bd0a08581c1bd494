package models

import "healthsync-service/internal/pkg/constvars"

// Session is the payload stored in Redis under the session ID carried by the
// client JWT.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	UserType  string `json:"user_type"`
}

func (s *Session) IsPatient() bool {
	return s.UserType == constvars.UserTypePatient
}

func (s *Session) IsDoctor() bool {
	return s.UserType == constvars.UserTypeDoctor
}
