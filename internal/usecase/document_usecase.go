package usecase

import (
	"context"

	"go.uber.org/zap"

	"docstamp/internal/domain/entity"
	"docstamp/internal/infrastructure/document"
	"docstamp/internal/infrastructure/pdfdoc"
	"docstamp/internal/infrastructure/redis"
)

type DocumentUsecase interface {
	ListDocuments(ctx context.Context) ([]entity.Document, error)
	GetGeometry(ctx context.Context, documentID string) (*entity.DocumentGeometry, error)
	GetPageGeometry(ctx context.Context, documentID string, page int) (*entity.PageGeometry, error)
}

type documentUsecase struct {
	store  document.Store
	source GeometrySource
	cache  GeometryCache
	logger *zap.Logger
}

func NewDocumentUsecase(
	store document.Store,
	extractor *pdfdoc.Extractor,
	cache *redis.GeometryCache,
	logger *zap.Logger,
) DocumentUsecase {
	return &documentUsecase{
		store:  store,
		source: extractor,
		cache:  cache,
		logger: logger,
	}
}

func (u *documentUsecase) ListDocuments(ctx context.Context) ([]entity.Document, error) {
	docs, err := u.store.ListIncoming()
	if err != nil {
		u.logger.Error("Failed to list documents", zap.Error(err))
		return nil, err
	}

	for i := range docs {
		path, err := u.store.ResolveIncoming(docs[i].ID)
		if err != nil {
			continue
		}
		count, err := u.source.PageCount(path)
		if err != nil {
			u.logger.Warn("Failed to count pages",
				zap.String("document_id", docs[i].ID),
				zap.Error(err),
			)
			continue
		}
		docs[i].PageCount = count
	}

	u.logger.Info("Listed incoming documents", zap.Int("count", len(docs)))
	return docs, nil
}

func (u *documentUsecase) GetGeometry(ctx context.Context, documentID string) (*entity.DocumentGeometry, error) {
	path, err := u.store.ResolveIncoming(documentID)
	if err != nil {
		return nil, err
	}

	pages, err := u.source.DocumentGeometry(path)
	if err != nil {
		u.logger.Error("Failed to extract document geometry",
			zap.String("document_id", documentID),
			zap.Error(err),
		)
		return nil, err
	}

	// Warm the cache so subsequent placement calls skip re-parsing.
	for _, geom := range pages {
		if err := u.cache.Put(ctx, documentID, geom); err != nil {
			u.logger.Warn("Failed to cache page geometry",
				zap.String("document_id", documentID),
				zap.Int("page", geom.PageNumber),
				zap.Error(err),
			)
			break
		}
	}

	return &entity.DocumentGeometry{
		DocumentID: documentID,
		Pages:      pages,
	}, nil
}

func (u *documentUsecase) GetPageGeometry(ctx context.Context, documentID string, page int) (*entity.PageGeometry, error) {
	if cached, err := u.cache.Get(ctx, documentID, page); err == nil && cached != nil {
		return cached, nil
	}

	path, err := u.store.ResolveIncoming(documentID)
	if err != nil {
		return nil, err
	}

	geom, err := u.source.PageGeometry(path, page)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Put(ctx, documentID, *geom); err != nil {
		u.logger.Warn("Failed to cache page geometry",
			zap.String("document_id", documentID),
			zap.Int("page", page),
			zap.Error(err),
		)
	}

	return geom, nil
}
