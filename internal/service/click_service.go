package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"shortener-go/internal/model"
	"shortener-go/internal/repository"
	"shortener-go/pkg/logging"
	"shortener-go/response"
)

const maxClientLength = 100

// ClickService records redirects and keeps the denormalized counter honest.
type ClickService struct {
	urls   repository.UrlRepository
	clicks repository.ClickRepository
	now    func() time.Time
}

func NewClickService(urls repository.UrlRepository, clicks repository.ClickRepository) *ClickService {
	return &ClickService{urls: urls, clicks: clicks, now: time.Now}
}

// Record increments the counter of urlID and appends a click row for client.
// An inactive url is returned together with repository.ErrInactive and no row is written.
func (s *ClickService) Record(ctx context.Context, urlID uint, client string) (*model.Url, error) {
	url, err := s.urls.Update(ctx, urlID, repository.FieldClicks)
	if err != nil {
		return url, err
	}

	if len(client) > maxClientLength {
		client = client[:maxClientLength]
	}
	click := &model.Click{
		UrlID:  urlID,
		Date:   s.now(),
		Client: client,
	}
	if err := s.clicks.Create(ctx, click); err != nil {
		// the counter stays one ahead of the rows
		logging.Logger.Error("Failed to record click",
			zap.Uint("url_id", urlID),
			zap.String("client", client),
			zap.Error(err))
		return url, err
	}
	return url, nil
}

// History returns one page of clicks of urlID.
func (s *ClickService) History(ctx context.Context, urlID uint, skip, limit int) (*response.PageResponse[model.Click], error) {
	total, err := s.clicks.Count(ctx, urlID)
	if err != nil {
		return nil, err
	}
	if total == 0 || int64(skip) >= total {
		return response.NewPage[model.Click](nil, skip, limit, total), nil
	}

	clicks, err := s.clicks.GetMulti(ctx, urlID, skip, limit)
	if err != nil {
		return nil, err
	}
	return response.NewPage(clicks, skip, limit, total), nil
}

// Reconcile raises every counter that lags behind its click rows and returns how
// many urls were corrected. Counters ahead of their rows are left alone.
func (s *ClickService) Reconcile(ctx context.Context) (int, error) {
	fixed, err := s.urls.SyncClicks(ctx)
	if err != nil {
		return 0, err
	}
	if fixed > 0 {
		logging.Logger.Info("Click counters corrected", zap.Int64("urls", fixed))
	}
	return int(fixed), nil
}
