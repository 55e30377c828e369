package session

import "errors"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// Session is the client-held record of an authenticated user: the bearer
// token plus the identity attributes the backend returned alongside it.
// It is persisted between invocations and cleared on logout or when the
// backend signals the token is no longer valid.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Role   Role   `json:"role"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// ErrNoSession is returned by Store.Load when nobody is logged in.
var ErrNoSession = errors.New("no active session")

// Store persists the session record.
//
// Load returns ErrNoSession when no session exists. Implementations:
// file-backed (prod), in-memory (test).
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}
