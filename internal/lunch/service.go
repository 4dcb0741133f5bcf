package lunch

import "database/sql"

type LunchService struct {
	repo LunchRepositoryInterface
	db   *sql.DB
}

type LunchServiceInterface interface {
	Create(list *SavedLunch) error
	GetAll() ([]*SavedLunch, error)
	GetByID(id int) (*SavedLunch, error)
	GetByUserID(userID int) ([]*SavedLunch, error)
	Update(id int, fields *Update) error
	Delete(id int) error
}

func NewLunchService(repo LunchRepositoryInterface, db *sql.DB) LunchServiceInterface {
	return &LunchService{repo: repo, db: db}
}

func (s *LunchService) Create(list *SavedLunch) error {
	return s.repo.Create(s.db, list)
}

func (s *LunchService) GetAll() ([]*SavedLunch, error) {
	return s.repo.GetAll(s.db)
}

func (s *LunchService) GetByID(id int) (*SavedLunch, error) {
	return s.repo.GetByID(s.db, id)
}

func (s *LunchService) GetByUserID(userID int) ([]*SavedLunch, error) {
	return s.repo.GetByUserID(s.db, userID)
}

func (s *LunchService) Update(id int, fields *Update) error {
	rows, err := s.repo.Update(s.db, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *LunchService) Delete(id int) error {
	rows, err := s.repo.Delete(s.db, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
