package store

import "school-in-go/pkg/model"

// SchoolsStore abstracts school (tenant) storage operations.
type SchoolsStore interface {
	CreateSchool(school *model.School) error
	FetchSchool(id string) (*model.School, error)
	ListSchools() ([]model.School, error)
	UpdateSchool(school *model.School) error
	DeleteSchool(id string) error
}
