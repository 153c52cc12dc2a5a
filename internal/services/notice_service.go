package services

import (
	"context"

	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/store"
)

type NoticeService struct {
	resource
}

func NewNoticeService(st store.Store) *NoticeService {
	return &NoticeService{
		resource: newResource(st, CollectionNotices, store.Query{OrderBy: "createdAt", Direction: store.Desc}),
	}
}

func (s *NoticeService) List(ctx context.Context) ([]store.Document, error) {
	return s.list(ctx)
}

func (s *NoticeService) GetByID(ctx context.Context, id string) (store.Document, error) {
	return s.get(ctx, id)
}

func (s *NoticeService) Create(ctx context.Context, req *models.CreateNoticeRequest) (store.Document, error) {
	return s.create(ctx, map[string]interface{}{
		"title":    req.Title,
		"content":  req.Content,
		"category": req.Category,
		"author":   req.AuthorOrDefault(),
	})
}

func (s *NoticeService) Update(ctx context.Context, id string, req *models.UpdateNoticeRequest) (store.Document, error) {
	return s.update(ctx, id, req.Fields())
}

func (s *NoticeService) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}
