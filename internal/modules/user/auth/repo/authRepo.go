package repo

import (
	"taskmanager/internal/modules/user"
)

// AuthDb defines the database operations the auth flow needs.
type AuthDb interface {
	CreateUser(u *user.User) (*user.User, error)
	GetUserByUsername(username string) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)
	UpdateUser(u *user.User) error
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
}

// Repo implements auth.Repo by delegating to the database layer.
type Repo struct {
	db AuthDb
}

func NewRepo(db AuthDb) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateUser(u *user.User) (*user.User, error) {
	return r.db.CreateUser(u)
}

func (r *Repo) GetUserByUsername(username string) (*user.User, error) {
	return r.db.GetUserByUsername(username)
}

func (r *Repo) GetUserByEmail(email string) (*user.User, error) {
	return r.db.GetUserByEmail(email)
}

func (r *Repo) UpdateUser(u *user.User) error {
	return r.db.UpdateUser(u)
}

func (r *Repo) UsernameExists(username string) (bool, error) {
	return r.db.UsernameExists(username)
}

func (r *Repo) EmailExists(email string) (bool, error) {
	return r.db.EmailExists(email)
}
