package store

import "school-in-go/pkg/model"

// TeachersStore abstracts teacher storage operations.
type TeachersStore interface {
	CreateTeacher(teacher *model.Teacher) error
	FetchTeacher(id string) (*model.Teacher, error)
	ListTeachers(schoolID string) ([]model.Teacher, error)
	UpdateTeacher(teacher *model.Teacher) error
	DeleteTeacher(id string) error
}
