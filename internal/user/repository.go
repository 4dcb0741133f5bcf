package user

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("user not found")

type UserRepository struct{}

type UserRepositoryInterface interface {
	Create(tx *sql.Tx, user *User) error
	GetAll(db *sql.DB) ([]*User, error)
	GetByID(db *sql.DB, id int) (*User, error)
	GetByUsername(db *sql.DB, username string) (*User, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewUserRepository() UserRepositoryInterface {
	return &UserRepository{}
}

// Create inserts the user and fills in the generated id and creation date.
// A duplicate username surfaces as the unique-constraint error from the
// database; the schema is the authoritative uniqueness guard.
func (r *UserRepository) Create(tx *sql.Tx, user *User) error {
	query := `
		INSERT INTO users (
			username, password
		)
		VALUES ($1, $2)
		RETURNING id, creation_date
	`

	err := tx.QueryRow(
		query,
		user.Username,
		user.Password,
	).Scan(&user.ID, &user.CreationDate)

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"username": user.Username,
	}).Info("User created successfully")

	return nil
}

func (r *UserRepository) GetAll(db *sql.DB) ([]*User, error) {
	query := `
		SELECT id, username, password, creation_date
		FROM users
		ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Password,
			&user.CreationDate,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) GetByID(db *sql.DB, id int) (*User, error) {
	query := `
		SELECT id, username, password, creation_date
		FROM users
		WHERE id = $1
	`

	user := &User{}
	err := db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreationDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).Error("Failed to get user by ID")
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(db *sql.DB, username string) (*User, error) {
	query := `
		SELECT id, username, password, creation_date
		FROM users
		WHERE username = $1
	`

	user := &User{}
	err := db.QueryRow(query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.CreationDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		logrus.WithError(err).Error("Failed to get user by username")
		return nil, err
	}

	return user, nil
}

// Update applies only the provided fields and returns the affected row count.
func (r *UserRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	var set []string
	var args []interface{}

	if fields.Username != nil {
		args = append(args, *fields.Username)
		set = append(set, fmt.Sprintf("username = $%d", len(args)))
	}
	if fields.Password != nil {
		args = append(args, *fields.Password)
		set = append(set, fmt.Sprintf("password = $%d", len(args)))
	}

	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d",
		strings.Join(set, ", "),
		len(args),
	)

	result, err := db.Exec(query, args...)
	if err != nil {
		logrus.WithError(err).Error("Failed to update user")
		return 0, err
	}

	return result.RowsAffected()
}

// Delete removes the user; owned pantry, lunch and join rows cascade at the
// schema level.
func (r *UserRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logrus.WithError(err).Error("Failed to delete user")
		return 0, err
	}

	return result.RowsAffected()
}
