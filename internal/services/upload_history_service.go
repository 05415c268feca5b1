package services

import (
	"context"

	"cabreport/internal/domain"
	"cabreport/internal/domain/models"
)

// UploadLister is the read side of the upload audit store.
type UploadLister interface {
	List(ctx context.Context, page domain.Pagination) ([]models.UploadAudit, int, error)
	GetByID(ctx context.Context, id int64) (models.UploadAudit, error)
}

// UploadHistoryService serves the admin view of past uploads.
type UploadHistoryService struct {
	Repo UploadLister
}

type UploadHistoryPage struct {
	Items      []models.UploadAudit `json:"items"`
	Pagination domain.Pagination    `json:"pagination"`
}

// List returns one page of upload audit records, newest first.
func (s UploadHistoryService) List(ctx context.Context, page domain.Pagination) (UploadHistoryPage, error) {
	page = page.Normalize(20, 100)
	items, total, err := s.Repo.List(ctx, page)
	if err != nil {
		return UploadHistoryPage{}, err
	}
	page.Total = total
	return UploadHistoryPage{Items: items, Pagination: page}, nil
}

func (s UploadHistoryService) Get(ctx context.Context, id int64) (models.UploadAudit, error) {
	if id <= 0 {
		return models.UploadAudit{}, domain.ValidationError{Field: "id", Msg: "must be a positive integer"}
	}
	return s.Repo.GetByID(ctx, id)
}
