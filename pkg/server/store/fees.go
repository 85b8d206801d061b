package store

import "school-in-go/pkg/model"

// FeesStore abstracts fee record storage operations.
type FeesStore interface {
	CreateFee(fee *model.FeeRecord) error
	FetchFee(id string) (*model.FeeRecord, error)
	ListFeesForStudent(studentID string) ([]model.FeeRecord, error)

	// MarkFeePaid flips the paid flag, or ErrNotFound.
	MarkFeePaid(id string) (*model.FeeRecord, error)

	DeleteFee(id string) error
}
