package port

import "rfind/internal/domain"

type SearchStore interface {
	PutSearch(s domain.SavedSearch) error

	GetSearch(name string) (domain.SavedSearch, error)

	DeleteSearch(name string) error

	ListSearches() ([]domain.SavedSearch, error)

	Close() error
}
