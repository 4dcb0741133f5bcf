package category

import (
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("category not found")

type CategoryRepository struct{}

type CategoryRepositoryInterface interface {
	Create(db *sql.DB, category *Category) error
	GetAll(db *sql.DB) ([]*Category, error)
	GetByID(db *sql.DB, id int) (*Category, error)
	Update(db *sql.DB, id int, fields *Update) (int64, error)
	Delete(db *sql.DB, id int) (int64, error)
}

func NewCategoryRepository() CategoryRepositoryInterface {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(db *sql.DB, category *Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`

	if err := db.QueryRow(query, category.Name).Scan(&category.ID); err != nil {
		logrus.WithError(err).Error("Failed to create category")
		return err
	}

	return nil
}

func (r *CategoryRepository) GetAll(db *sql.DB) ([]*Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY id
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *CategoryRepository) GetByID(db *sql.DB, id int) (*Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	category := &Category{}
	err := db.QueryRow(query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return category, nil
}

func (r *CategoryRepository) Update(db *sql.DB, id int, fields *Update) (int64, error) {
	if fields.Name == nil {
		return 0, nil
	}

	result, err := db.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, *fields.Name, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *CategoryRepository) Delete(db *sql.DB, id int) (int64, error) {
	result, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
