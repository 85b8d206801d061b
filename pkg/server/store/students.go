package store

import "school-in-go/pkg/model"

// StudentsStore abstracts student storage operations.
type StudentsStore interface {
	CreateStudent(student *model.Student) error
	FetchStudent(id string) (*model.Student, error)

	// ListStudents returns students, optionally filtered to one school.
	ListStudents(schoolID string, limit, offset int) ([]model.Student, error)

	UpdateStudent(student *model.Student) error
	DeleteStudent(id string) error
}
