package itemcategory

import "database/sql"

type ItemCategoryService struct {
	repo ItemCategoryRepositoryInterface
	db   *sql.DB
}

type ItemCategoryServiceInterface interface {
	Create(entry *ItemCategory) error
	GetAll() ([]*ItemCategory, error)
	GetByID(id int) (*ItemCategory, error)
	GetByUserID(userID int) ([]*ItemCategory, error)
	GetByItemID(itemID int) ([]*ItemCategory, error)
	GetByCategoryID(categoryID int) ([]*ItemCategory, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewItemCategoryService(repo ItemCategoryRepositoryInterface, db *sql.DB) ItemCategoryServiceInterface {
	return &ItemCategoryService{repo: repo, db: db}
}

func (s *ItemCategoryService) Create(entry *ItemCategory) error {
	return s.repo.Create(s.db, entry)
}

func (s *ItemCategoryService) GetAll() ([]*ItemCategory, error) {
	return s.repo.GetAll(s.db)
}

func (s *ItemCategoryService) GetByID(id int) (*ItemCategory, error) {
	return s.repo.GetByID(s.db, id)
}

func (s *ItemCategoryService) GetByUserID(userID int) ([]*ItemCategory, error) {
	return s.repo.GetByUserID(s.db, userID)
}

func (s *ItemCategoryService) GetByItemID(itemID int) ([]*ItemCategory, error) {
	return s.repo.GetByItemID(s.db, itemID)
}

func (s *ItemCategoryService) GetByCategoryID(categoryID int) ([]*ItemCategory, error) {
	return s.repo.GetByCategoryID(s.db, categoryID)
}

func (s *ItemCategoryService) Update(id int, fields *Update) error {
	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ItemCategoryService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
