package pantry

import "database/sql"

type PantryService struct {
	repo PantryRepositoryInterface
	db   *sql.DB
}

type PantryServiceInterface interface {
	Create(item *PantryItem) error
	GetAll() ([]*PantryItem, error)
	GetByID(id int) (*PantryItem, error)
	GetByUserID(userID int) ([]*PantryItem, error)
	Search(substring string) ([]*PantryItem, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewPantryService(repo PantryRepositoryInterface, db *sql.DB) PantryServiceInterface {
	return &PantryService{repo: repo, db: db}
}

func (s *PantryService) Create(item *PantryItem) error {
	return s.repo.Create(s.db, item)
}

func (s *PantryService) GetAll() ([]*PantryItem, error) {
	return s.repo.GetAll(s.db)
}

func (s *PantryService) GetByID(id int) (*PantryItem, error) {
	return s.repo.GetByID(s.db, id)
}

func (s *PantryService) GetByUserID(userID int) ([]*PantryItem, error) {
	return s.repo.GetByUserID(s.db, userID)
}

func (s *PantryService) Search(substring string) ([]*PantryItem, error) {
	return s.repo.Search(s.db, substring)
}

func (s *PantryService) Update(id int, fields *Update) error {
	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PantryService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
