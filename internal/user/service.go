package user

import (
	"database/sql"
	"errors"
	"tinylunches/internal/auth"
	"tinylunches/internal/utils"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

type UserService struct {
	repo UserRepositoryInterface
	db   *sql.DB
}

type UserServiceInterface interface {
	Register(username, password string) (*User, error)
	Authenticate(username, password string) (*User, error)
	GetAll() ([]*User, error)
	GetByID(id int) (*User, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewUserService(repo UserRepositoryInterface, db *sql.DB) UserServiceInterface {
	return &UserService{
		repo: repo,
		db:   db,
	}
}

// Register validates the password against the policy, hashes it and inserts
// the user. There is no read-before-write uniqueness check: the unique
// constraint on users.username is the single source of truth, so two
// concurrent registrations cannot both slip through.
func (s *UserService) Register(username, password string) (*User, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := auth.GeneratePasswordHash(password, auth.RegisterHashCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username: username,
		Password: hashedPassword,
	}

	if err := utils.WithTransaction(s.db, func(tx *sql.Tx) error {
		return s.repo.Create(tx, user)
	}); err != nil {
		if isUniqueViolation(err) {
			logrus.WithField("username", username).Warn("Registration rejected, username taken")
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a login credential. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(s.db, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.ComparePasswordHash([]byte(user.Password), password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetAll() ([]*User, error) {
	return s.repo.GetAll(s.db)
}

func (s *UserService) GetByID(id int) (*User, error) {
	return s.repo.GetByID(s.db, id)
}

// Update applies a partial update. A provided password is policy-checked and
// re-hashed before it is stored.
func (s *UserService) Update(id int, fields *Update) error {
	if fields.Password != nil {
		if err := auth.ValidatePassword(*fields.Password); err != nil {
			return err
		}

		hashedPassword, err := auth.GeneratePasswordHash(*fields.Password, auth.UpdateHashCost)
		if err != nil {
			return err
		}
		fields.Password = &hashedPassword
	}

	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *UserService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
