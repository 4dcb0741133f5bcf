package item

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("item not found")

type ItemRepository struct{}

type ItemRepositoryInterface interface {
	Create(db *sql.DB, item *Item) error
	GetAll(db *sql.DB) ([]*Item, error)
	GetByID(db *sql.DB, id int) (*Item, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewItemRepository() ItemRepositoryInterface {
	return &ItemRepository{}
}

func (r *ItemRepository) Create(db *sql.DB, item *Item) error {
	query := `
		INSERT INTO items (item_name)
		VALUES ($1)
		RETURNING id
	`

	if err := db.QueryRow(query, item.Name).Scan(&item.ID); err != nil {
		logrus.WithError(err).Error("Failed to create item")
		return err
	}

	return nil
}

func (r *ItemRepository) GetAll(db *sql.DB) ([]*Item, error) {
	query := `
		SELECT id, item_name
		FROM items
		ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) GetByID(db *sql.DB, id int) (*Item, error) {
	query := `
		SELECT id, item_name
		FROM items
		WHERE id = $1
	`

	item := &Item{}
	err := db.QueryRow(query, id).Scan(&item.ID, &item.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *ItemRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	if fields.Name == nil {
		return 0, nil
	}

	result, err := db.Exec(`UPDATE items SET item_name = $1 WHERE id = $2`, *fields.Name, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *ItemRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
