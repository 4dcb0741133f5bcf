package lunch

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("saved lunch not found")

type LunchRepository struct{}

type LunchRepositoryInterface interface {
	Create(db *sql.DB, list *SavedLunch) error
	GetAll(db *sql.DB) ([]*SavedLunch, error)
	GetByID(db *sql.DB, id int) (*SavedLunch, error)
	GetByUserID(db *sql.DB, userID int) ([]*SavedLunch, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewLunchRepository() LunchRepositoryInterface {
	return &LunchRepository{}
}

func (r *LunchRepository) Create(db *sql.DB, list *SavedLunch) error {
	items, err := json.Marshal(list.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO saved_lunches (user_id, title, items)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := db.QueryRow(query, list.UserID, list.Title, items).Scan(&list.ID); err != nil {
		logrus.WithError(err).Error("Failed to create saved lunch")
		return err
	}

	return nil
}

func (r *LunchRepository) GetAll(db *sql.DB) ([]*SavedLunch, error) {
	query := `
		SELECT id, user_id, title, items
		FROM saved_lunches
		ORDER BY id
	`
	return r.queryLists(db, query)
}

func (r *LunchRepository) GetByID(db *sql.DB, id int) (*SavedLunch, error) {
	query := `
		SELECT id, user_id, title, items
		FROM saved_lunches
		WHERE id = $1
	`

	list := &SavedLunch{}
	var items []byte
	err := db.QueryRow(query, id).Scan(&list.ID, &list.UserID, &list.Title, &items)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &list.Items); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *LunchRepository) GetByUserID(db *sql.DB, userID int) ([]*SavedLunch, error) {
	query := `
		SELECT id, user_id, title, items
		FROM saved_lunches
		WHERE user_id = $1
		ORDER BY id
	`
	return r.queryLists(db, query, userID)
}

func (r *LunchRepository) queryLists(db *sql.DB, query string, args ...interface{}) ([]*SavedLunch, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []*SavedLunch
	for rows.Next() {
		list := &SavedLunch{}
		var items []byte
		if err := rows.Scan(&list.ID, &list.UserID, &list.Title, &items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &list.Items); err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lists, nil
}

func (r *LunchRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	var set []string
	var args []interface{}

	if fields.UserID != nil {
		args = append(args, *fields.UserID)
		set = append(set, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if fields.Title != nil {
		args = append(args, *fields.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Items != nil {
		items, err := json.Marshal(*fields.Items)
		if err != nil {
			return 0, err
		}
		args = append(args, items)
		set = append(set, fmt.Sprintf("items = $%d", len(args)))
	}

	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE saved_lunches SET %s WHERE id = $%d",
		strings.Join(set, ", "),
		len(args),
	)

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *LunchRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM saved_lunches WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
