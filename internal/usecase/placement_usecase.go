package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"docstamp/internal/config"
	"docstamp/internal/domain/entity"
	"docstamp/internal/infrastructure/document"
	"docstamp/internal/infrastructure/pdfdoc"
	"docstamp/internal/infrastructure/redis"
	"docstamp/internal/infrastructure/repository"
	"docstamp/internal/infrastructure/stamper"
	"docstamp/internal/placement"
)

// GeometrySource extracts page geometry from a document on disk.
type GeometrySource interface {
	PageGeometry(path string, page int) (*entity.PageGeometry, error)
	DocumentGeometry(path string) ([]entity.PageGeometry, error)
	PageCount(path string) (int, error)
}

// GeometryCache caches extracted geometry per document/page.
type GeometryCache interface {
	Get(ctx context.Context, documentID string, page int) (*entity.PageGeometry, error)
	Put(ctx context.Context, documentID string, geom entity.PageGeometry) error
}

// StampWriter applies a computed merge placement to a document file.
type StampWriter interface {
	Apply(inPath, outPath, imagePath string, geom entity.PageGeometry, merge entity.MergeResult) error
}

type PlacementUsecase interface {
	// Validate pre-checks a placement request against the page's geometry.
	Validate(ctx context.Context, req *entity.PlacementRequest) (*entity.ValidationResult, error)
	// Preview computes overlay and merge placements without touching the document.
	Preview(ctx context.Context, req *entity.PlacementRequest) (*entity.PlacementResult, error)
	// Stamp computes the placement and permanently draws the signature image
	// into a stamped copy of the document.
	Stamp(ctx context.Context, req *entity.StampRequest) (*entity.StampResult, error)
}

type placementUsecase struct {
	config  *config.Config
	store   document.Store
	source  GeometrySource
	cache   GeometryCache
	writer  StampWriter
	logRepo repository.PlacementLogRepository
	logger  *zap.Logger
}

func NewPlacementUsecase(
	cfg *config.Config,
	store document.Store,
	extractor *pdfdoc.Extractor,
	cache *redis.GeometryCache,
	writer *stamper.Stamper,
	logRepo repository.PlacementLogRepository,
	logger *zap.Logger,
) PlacementUsecase {
	return &placementUsecase{
		config:  cfg,
		store:   store,
		source:  extractor,
		cache:   cache,
		writer:  writer,
		logRepo: logRepo,
		logger:  logger,
	}
}

func (u *placementUsecase) Validate(ctx context.Context, req *entity.PlacementRequest) (*entity.ValidationResult, error) {
	geom, err := u.pageGeometry(ctx, req.DocumentID, req.Page)
	if err != nil {
		return nil, err
	}

	res := placement.Validate(*geom, req.Box, u.withDefaults(req.Stamp))
	return &res, nil
}

func (u *placementUsecase) Preview(ctx context.Context, req *entity.PlacementRequest) (*entity.PlacementResult, error) {
	u.logger.Info("Computing placement preview",
		zap.String("document_id", req.DocumentID),
		zap.Int("page", req.Page),
	)

	geom, res, err := u.place(ctx, req)
	if err != nil {
		return nil, err
	}

	return &entity.PlacementResult{
		Geometry: *geom,
		Overlay:  res.Overlay,
		Merge:    res.Merge,
	}, nil
}

func (u *placementUsecase) Stamp(ctx context.Context, req *entity.StampRequest) (*entity.StampResult, error) {
	u.logger.Info("Stamping signature",
		zap.String("document_id", req.DocumentID),
		zap.Int("page", req.Page),
		zap.String("signature_image", req.SignatureImage),
	)

	if req.SignatureImage == "" {
		return nil, fmt.Errorf("signature_image is required")
	}

	geom, res, err := u.place(ctx, &req.PlacementRequest)
	if err != nil {
		return nil, err
	}

	inPath, err := u.store.ResolveIncoming(req.DocumentID)
	if err != nil {
		return nil, err
	}
	sigPath, err := u.store.SignaturePath(req.SignatureImage)
	if err != nil {
		return nil, err
	}

	outName := req.OutputName
	if outName == "" {
		outName = req.DocumentID + "_stamped" + u.config.Document.FileExtension
	} else if !strings.HasSuffix(outName, u.config.Document.FileExtension) {
		outName += u.config.Document.FileExtension
	}
	outPath := u.store.StampedPath(outName)

	if err := u.writer.Apply(inPath, outPath, sigPath, *geom, res.Merge); err != nil {
		return nil, err
	}

	u.logger.Info("Signature stamped successfully",
		zap.String("document_id", req.DocumentID),
		zap.Int("page", req.Page),
		zap.String("output", outPath),
	)

	return &entity.StampResult{
		PlacementResult: entity.PlacementResult{
			Geometry: *geom,
			Overlay:  res.Overlay,
			Merge:    res.Merge,
		},
		OutputFile: outName,
	}, nil
}

// place resolves geometry, runs the engine, and records the diagnostic line.
func (u *placementUsecase) place(ctx context.Context, req *entity.PlacementRequest) (*entity.PageGeometry, *placement.Result, error) {
	geom, err := u.pageGeometry(ctx, req.DocumentID, req.Page)
	if err != nil {
		return nil, nil, err
	}

	res, err := placement.Place(*geom, req.Box, u.withDefaults(req.Stamp))
	if err != nil {
		return nil, nil, err
	}

	u.logger.Debug(res.Log, zap.String("document_id", req.DocumentID))

	// Audit trail is best effort: a logging outage must not block signing.
	if err := u.logRepo.Save(ctx, &entity.PlacementLog{
		DocumentID: req.DocumentID,
		Page:       geom.PageNumber,
		Rotation:   geom.Rotation,
		Detail:     res.Log,
		CreatedAt:  time.Now(),
	}); err != nil {
		u.logger.Warn("Failed to persist placement log", zap.Error(err))
	}

	return geom, res, nil
}

// pageGeometry resolves a page's geometry, consulting the cache before
// re-extracting from the PDF. Extraction must happen before any placement
// call for the page; the single value produced here is what both the
// overlay and merge paths consume.
func (u *placementUsecase) pageGeometry(ctx context.Context, documentID string, page int) (*entity.PageGeometry, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d", page)
	}

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

// withDefaults fills in the service-wide fixed stamp size when a fixed
// strategy request omits its own, and treats an empty strategy as relative.
func (u *placementUsecase) withDefaults(cfg entity.StampConfig) entity.StampConfig {
	if cfg.Strategy == "" {
		cfg.Strategy = entity.StrategyRelative
	}
	if cfg.Strategy == entity.StrategyFixed && cfg.FixedSize == nil {
		cfg.FixedSize = &entity.StampSize{
			W: u.config.Placement.FixedStampWidth,
			H: u.config.Placement.FixedStampHeight,
		}
	}
	return cfg
}
