package users

import "boxoffice/internal/domain/events"

type UserLoggedIn struct {
	Header events.Header `json:"header"`
	Email  string        `json:"email"`
}
