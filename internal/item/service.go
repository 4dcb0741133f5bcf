package item

import "database/sql"

type ItemService struct {
	repo ItemRepositoryInterface
	db   *sql.DB
}

type ItemServiceInterface interface {
	Create(item *Item) error
	GetAll() ([]*Item, error)
	GetByID(id int) (*Item, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewItemService(repo ItemRepositoryInterface, db *sql.DB) ItemServiceInterface {
	return &ItemService{repo: repo, db: db}
}

func (s *ItemService) Create(item *Item) error {
	return s.repo.Create(s.db, item)
}

func (s *ItemService) GetAll() ([]*Item, error) {
	return s.repo.GetAll(s.db)
}

func (s *ItemService) GetByID(id int) (*Item, error) {
	return s.repo.GetByID(s.db, id)
}

func (s *ItemService) Update(id int, fields *Update) error {
	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ItemService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
