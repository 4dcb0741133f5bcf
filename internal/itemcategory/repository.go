package itemcategory

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("item to category entry not found")

type ItemCategoryRepository struct{}

type ItemCategoryRepositoryInterface interface {
	Create(db *sql.DB, entry *ItemCategory) error
	GetAll(db *sql.DB) ([]*ItemCategory, error)
	GetByID(db *sql.DB, id int) (*ItemCategory, error)
	GetByUserID(db *sql.DB, userID int) ([]*ItemCategory, error)
	GetByItemID(db *sql.DB, itemID int) ([]*ItemCategory, error)
	GetByCategoryID(db *sql.DB, categoryID int) ([]*ItemCategory, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewItemCategoryRepository() ItemCategoryRepositoryInterface {
	return &ItemCategoryRepository{}
}

func (r *ItemCategoryRepository) Create(db *sql.DB, entry *ItemCategory) error {
	query := `
		INSERT INTO item_to_category (item_id, category_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := db.QueryRow(
		query,
		entry.ItemID,
		entry.CategoryID,
		entry.UserID,
	).Scan(&entry.ID)

	if err != nil {
		logrus.WithError(err).Error("Failed to create item to category entry")
		return err
	}

	return nil
}

func (r *ItemCategoryRepository) GetAll(db *sql.DB) ([]*ItemCategory, error) {
	return r.list(db, "", nil)
}

func (r *ItemCategoryRepository) GetByID(db *sql.DB, id int) (*ItemCategory, error) {
	query := `
		SELECT id, item_id, category_id, user_id
		FROM item_to_category
		WHERE id = $1
	`

	entry := &ItemCategory{}
	err := db.QueryRow(query, id).Scan(
		&entry.ID,
		&entry.ItemID,
		&entry.CategoryID,
		&entry.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return entry, nil
}

func (r *ItemCategoryRepository) GetByUserID(db *sql.DB, userID int) ([]*ItemCategory, error) {
	return r.list(db, "user_id", userID)
}

func (r *ItemCategoryRepository) GetByItemID(db *sql.DB, itemID int) ([]*ItemCategory, error) {
	return r.list(db, "item_id", itemID)
}

func (r *ItemCategoryRepository) GetByCategoryID(db *sql.DB, categoryID int) ([]*ItemCategory, error) {
	return r.list(db, "category_id", categoryID)
}

// list fetches entries filtered by one column, or all rows when column is
// empty. Column names are fixed by the callers above, never user input.
func (r *ItemCategoryRepository) list(db *sql.DB, column string, value interface{}) ([]*ItemCategory, error) {
	query := `
		SELECT id, item_id, category_id, user_id
		FROM item_to_category
	`
	var args []interface{}
	if column != "" {
		query += fmt.Sprintf(" WHERE %s = $1", column)
		args = append(args, value)
	}
	query += " ORDER BY id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*ItemCategory
	for rows.Next() {
		entry := &ItemCategory{}
		if err := rows.Scan(
			&entry.ID,
			&entry.ItemID,
			&entry.CategoryID,
			&entry.UserID,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *ItemCategoryRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	var set []string
	var args []interface{}

	if fields.ItemID != nil {
		args = append(args, *fields.ItemID)
		set = append(set, fmt.Sprintf("item_id = $%d", len(args)))
	}
	if fields.CategoryID != nil {
		args = append(args, *fields.CategoryID)
		set = append(set, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if fields.UserID != nil {
		args = append(args, *fields.UserID)
		set = append(set, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if len(set) == 0 {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE item_to_category SET %s WHERE id = $%d",
		strings.Join(set, ", "),
		len(args),
	)

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *ItemCategoryRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM item_to_category WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
