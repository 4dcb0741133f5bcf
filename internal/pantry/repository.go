package pantry

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("pantry item not found")

type PantryRepository struct{}

type PantryRepositoryInterface interface {
	Create(db *sql.DB, item *PantryItem) error
	GetAll(db *sql.DB) ([]*PantryItem, error)
	GetByID(db *sql.DB, id int) (*PantryItem, error)
	GetByUserID(db *sql.DB, userID int) ([]*PantryItem, error)
	Search(db *sql.DB, substring string) ([]*PantryItem, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewPantryRepository() PantryRepositoryInterface {
	return &PantryRepository{}
}

const pantryColumns = `
	id, user_id, item_name,
	category_1, category_2, category_3, category_4,
	category_5, category_6, category_7,
	quantity
`

func (r *PantryRepository) Create(db *sql.DB, item *PantryItem) error {
	query := `
		INSERT INTO pantry (
			user_id, item_name,
			category_1, category_2, category_3, category_4,
			category_5, category_6, category_7,
			quantity
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := db.QueryRow(
		query,
		item.UserID,
		item.ItemName,
		item.Category1,
		item.Category2,
		item.Category3,
		item.Category4,
		item.Category5,
		item.Category6,
		item.Category7,
		item.Quantity,
	).Scan(&item.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to create pantry item")
		return err
	}

	return nil
}

func (r *PantryRepository) GetAll(db *sql.DB) ([]*PantryItem, error) {
	query := fmt.Sprintf("SELECT %s FROM pantry ORDER BY id", pantryColumns)
	return r.queryItems(db, query)
}

func (r *PantryRepository) GetByID(db *sql.DB, id int) (*PantryItem, error) {
	query := fmt.Sprintf("SELECT %s FROM pantry WHERE id = $1", pantryColumns)

	item := &PantryItem{}
	err := scanItem(db.QueryRow(query, id), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *PantryRepository) GetByUserID(db *sql.DB, userID int) ([]*PantryItem, error) {
	query := fmt.Sprintf("SELECT %s FROM pantry WHERE user_id = $1 ORDER BY id", pantryColumns)
	return r.queryItems(db, query, userID)
}

// Search matches item names containing substring, case-insensitively.
func (r *PantryRepository) Search(db *sql.DB, substring string) ([]*PantryItem, error) {
	query := fmt.Sprintf("SELECT %s FROM pantry WHERE item_name ILIKE '%%' || $1 || '%%' ORDER BY id", pantryColumns)
	return r.queryItems(db, query, substring)
}

func (r *PantryRepository) queryItems(db *sql.DB, query string, args ...interface{}) ([]*PantryItem, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*PantryItem
	for rows.Next() {
		item := &PantryItem{}
		if err := scanItem(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner, item *PantryItem) error {
	return row.Scan(
		&item.ID,
		&item.UserID,
		&item.ItemName,
		&item.Category1,
		&item.Category2,
		&item.Category3,
		&item.Category4,
		&item.Category5,
		&item.Category6,
		&item.Category7,
		&item.Quantity,
	)
}

func (r *PantryRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	var set []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.UserID != nil {
		add("user_id", *fields.UserID)
	}
	if fields.ItemName != nil {
		add("item_name", *fields.ItemName)
	}
	if fields.Category1 != nil {
		add("category_1", *fields.Category1)
	}
	if fields.Category2 != nil {
		add("category_2", *fields.Category2)
	}
	if fields.Category3 != nil {
		add("category_3", *fields.Category3)
	}
	if fields.Category4 != nil {
		add("category_4", *fields.Category4)
	}
	if fields.Category5 != nil {
		add("category_5", *fields.Category5)
	}
	if fields.Category6 != nil {
		add("category_6", *fields.Category6)
	}
	if fields.Category7 != nil {
		add("category_7", *fields.Category7)
	}
	if fields.Quantity != nil {
		add("quantity", *fields.Quantity)
	}

	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE pantry SET %s WHERE id = $%d",
		strings.Join(set, ", "),
		len(args),
	)

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *PantryRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM pantry WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
