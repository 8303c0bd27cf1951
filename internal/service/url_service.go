package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"shortener-go/internal/apperrors"
	"shortener-go/internal/model"
	"shortener-go/internal/repository"
	"shortener-go/pkg/logging"
	"shortener-go/pkg/utils"
	"shortener-go/response"
)

const defaultPingTimeout = time.Second

// UrlCache is an optional lookup cache keyed by short code.
type UrlCache interface {
	Get(ctx context.Context, shortCode string) (*model.Url, bool)
	Set(ctx context.Context, url *model.Url)
	Delete(ctx context.Context, shortCode string)
}

type UrlService struct {
	urls        repository.UrlRepository
	clicks      *ClickService
	cache       UrlCache
	pingTimeout time.Duration
}

type Option func(*UrlService)

// WithCache enables the read-through cache.
func WithCache(cache UrlCache) Option {
	return func(s *UrlService) {
		s.cache = cache
	}
}

func WithPingTimeout(timeout time.Duration) Option {
	return func(s *UrlService) {
		if timeout > 0 {
			s.pingTimeout = timeout
		}
	}
}

func NewUrlService(urls repository.UrlRepository, clicks *ClickService, opts ...Option) *UrlService {
	s := &UrlService{
		urls:        urls,
		clicks:      clicks,
		pingTimeout: defaultPingTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateUrl returns the url stored for fullURL, creating it when absent.
// created is false when an existing row (active or not) was returned.
func (s *UrlService) CreateUrl(ctx context.Context, fullURL string) (url *model.Url, created bool, err error) {
	if err := utils.ValidateFullURL(fullURL); err != nil {
		return nil, false, apperrors.InvalidRequestError(err.Error(), "Invalid full_url")
	}

	existing, err := s.urls.Get(ctx, fullURL, repository.ByFullURL)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logging.Logger.Error("Failed to look up url", zap.String("full_url", fullURL), zap.Error(err))
		return nil, false, apperrors.SystemErrorDefault().Wrap(err)
	}

	code, err := utils.GenerateShortCode()
	if err != nil {
		return nil, false, apperrors.SystemErrorDefault().Wrap(err)
	}

	url = &model.Url{FullURL: fullURL, ShortURL: code, IsActive: true}
	if err := s.urls.Create(ctx, url); err != nil {
		return nil, false, translate(err)
	}

	logging.Logger.Info("Url created",
		zap.Uint("id", url.ID),
		zap.String("short_url", url.ShortURL))
	return url, true, nil
}

// CreateUrls resolves every full url in order. Unknown urls are inserted with a single
// statement; repeated entries share one row. Nothing is inserted when any item is rejected.
func (s *UrlService) CreateUrls(ctx context.Context, fullURLs []string) ([]model.Url, error) {
	if len(fullURLs) == 0 {
		return nil, apperrors.InvalidRequestError(apperrors.MsgEmptyBatch, "Batch must not be empty")
	}

	resolved := make(map[string]*model.Url, len(fullURLs))
	var pending []model.Url
	for _, fullURL := range fullURLs {
		if _, seen := resolved[fullURL]; seen {
			continue
		}
		if err := utils.ValidateFullURL(fullURL); err != nil {
			return nil, apperrors.InvalidRequestError(err.Error(), "Invalid full_url")
		}

		existing, err := s.urls.Get(ctx, fullURL, repository.ByFullURL)
		switch {
		case err == nil:
			resolved[fullURL] = existing
		case errors.Is(err, repository.ErrNotFound):
			code, err := utils.GenerateShortCode()
			if err != nil {
				return nil, apperrors.SystemErrorDefault().Wrap(err)
			}
			pending = append(pending, model.Url{FullURL: fullURL, ShortURL: code, IsActive: true})
			resolved[fullURL] = nil
		default:
			return nil, apperrors.SystemErrorDefault().Wrap(err)
		}
	}

	if err := s.urls.CreateMulti(ctx, pending); err != nil {
		return nil, translate(err)
	}
	for i := range pending {
		resolved[pending[i].FullURL] = &pending[i]
	}

	out := make([]model.Url, len(fullURLs))
	for i, fullURL := range fullURLs {
		out[i] = *resolved[fullURL]
	}

	logging.Logger.Info("Url batch processed",
		zap.Int("items", len(fullURLs)),
		zap.Int("created", len(pending)))
	return out, nil
}

// Resolve finds a url by short code, then by numeric id. Inactive urls are returned as well.
// Keys that are neither a well-formed short code nor an id are rejected without a query.
func (s *UrlService) Resolve(ctx context.Context, key string) (*model.Url, error) {
	return s.resolve(ctx, key, s.cache)
}

func (s *UrlService) resolve(ctx context.Context, key string, cache UrlCache) (*model.Url, error) {
	id, numeric := utils.ParseID(key)
	validCode := utils.ValidateShortCode(key) == nil
	if !validCode && !numeric {
		return nil, apperrors.NotFoundError()
	}

	if validCode {
		if cache != nil {
			if url, ok := cache.Get(ctx, key); ok {
				return url, nil
			}
		}

		url, err := s.urls.Get(ctx, key, repository.ByShortURL)
		if err == nil {
			if cache != nil && url.IsActive {
				cache.Set(ctx, url)
			}
			return url, nil
		}
		if !errors.Is(err, repository.ErrNotFound) || !numeric {
			return nil, translate(err)
		}
	}

	url, err := s.urls.Get(ctx, id, repository.ByID)
	if err != nil {
		return nil, translate(err)
	}
	return url, nil
}

// Redirect resolves key and records a click from client. It returns the url to redirect to.
func (s *UrlService) Redirect(ctx context.Context, key, client string) (*model.Url, error) {
	url, err := s.Resolve(ctx, key)
	if err != nil {
		return nil, err
	}
	if !url.IsActive {
		return nil, apperrors.GoneError()
	}

	updated, err := s.clicks.Record(ctx, url.ID, client)
	if err != nil {
		if errors.Is(err, repository.ErrInactive) && s.cache != nil {
			s.cache.Delete(ctx, url.ShortURL)
		}
		return nil, translate(err)
	}
	return updated, nil
}

// Status returns the active url with id. history is nil unless fullInfo is set.
func (s *UrlService) Status(ctx context.Context, id uint, fullInfo bool, skip, limit int) (*model.Url, *response.PageResponse[model.Click], error) {
	url, err := s.urls.Get(ctx, id, repository.ByID)
	if err != nil {
		return nil, nil, translate(err)
	}
	if !url.IsActive {
		return nil, nil, apperrors.GoneError()
	}
	if !fullInfo {
		return url, nil, nil
	}

	history, err := s.clicks.History(ctx, id, skip, limit)
	if err != nil {
		return nil, nil, translate(err)
	}
	return url, history, nil
}

// Stats is Status for operators: key may be a short code or an id and inactive urls are included.
// The url is always read from the database since cached rows carry a stale counter.
func (s *UrlService) Stats(ctx context.Context, key string, skip, limit int) (*model.Url, *response.PageResponse[model.Click], error) {
	url, err := s.resolve(ctx, key, nil)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.clicks.History(ctx, url.ID, skip, limit)
	if err != nil {
		return nil, nil, translate(err)
	}
	return url, history, nil
}

// Deactivate soft-deletes the url with id and returns it.
func (s *UrlService) Deactivate(ctx context.Context, id uint) (*model.Url, error) {
	url, err := s.urls.Update(ctx, id, repository.FieldIsActive)
	if err != nil {
		return nil, translate(err)
	}
	if s.cache != nil {
		s.cache.Delete(ctx, url.ShortURL)
	}

	logging.Logger.Info("Url deactivated", zap.Uint("id", id), zap.String("short_url", url.ShortURL))
	return url, nil
}

// Ping checks that both tables answer within the configured timeout.
func (s *UrlService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	if err := s.urls.Ping(ctx); err != nil {
		logging.Logger.Warn("Database ping failed", zap.Error(err))
		return apperrors.UnavailableError().Wrap(err)
	}
	return nil
}

// Reconcile delegates to the click service.
func (s *UrlService) Reconcile(ctx context.Context) (int, error) {
	fixed, err := s.clicks.Reconcile(ctx)
	if err != nil {
		return fixed, apperrors.SystemErrorDefault().Wrap(err)
	}
	return fixed, nil
}

// translate maps repository errors onto AppErrors.
func translate(err error) error {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFoundError()
	case errors.Is(err, repository.ErrInactive):
		return apperrors.GoneError()
	case errors.Is(err, repository.ErrConflict):
		return apperrors.ConflictError()
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.UnavailableError().Wrap(err)
	default:
		logging.Logger.Error("Unexpected repository error", zap.Error(err))
		return apperrors.SystemErrorDefault().Wrap(err)
	}
}
