package category

import "database/sql"

type CategoryService struct {
	repo CategoryRepositoryInterface
	db   *sql.DB
}

type CategoryServiceInterface interface {
	Create(category *Category) error
	GetAll() ([]*Category, error)
	GetByID(id int) (*Category, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewCategoryService(repo CategoryRepositoryInterface, db *sql.DB) CategoryServiceInterface {
	return &CategoryService{repo: repo, db: db}
}

func (s *CategoryService) Create(category *Category) error {
	return s.repo.Create(s.db, category)
}

func (s *CategoryService) GetAll() ([]*Category, error) {
	return s.repo.GetAll(s.db)
}

func (s *CategoryService) GetByID(id int) (*Category, error) {
	return s.repo.GetByID(s.db, id)
}

func (s *CategoryService) Update(id int, fields *Update) error {
	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CategoryService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
