package minio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/DRSN-tech/fitplan-backend/internal/usecase"
	"github.com/DRSN-tech/fitplan-backend/pkg/e"
	"github.com/DRSN-tech/fitplan-backend/pkg/jitter"
	"github.com/DRSN-tech/fitplan-backend/pkg/logger"
)

const (
	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 5 * time.Second
)

// ArtifactSource загружает артефакты из объектного хранилища с повторами.
type ArtifactSource struct {
	repo    usecase.ArtifactRepository
	retries int
	logger  logger.Logger
	backoff func(attempt int) time.Duration
}

func NewArtifactSource(repo usecase.ArtifactRepository, retries int, logger logger.Logger) *ArtifactSource {
	if retries < 1 {
		retries = 1
	}

	return &ArtifactSource{
		repo:    repo,
		retries: retries,
		logger:  logger,
		backoff: jitter.NewBackoff(baseBackoff, maxBackoff).Delay,
	}
}

// Fetch читает объект по ключу. Отсутствующий объект не повторяется.
func (a *ArtifactSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	const op = "ArtifactSource.Fetch"

	var lastErr error
	for attempt := 0; attempt < a.retries; attempt++ {
		data, err := a.repo.Get(ctx, key)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			return nil, e.Wrap(op, err)
		}

		lastErr = err
		if attempt == a.retries-1 {
			break
		}

		delay := a.backoff(attempt)
		a.logger.Warnf("%s: attempt %d/%d for %q failed, retry in %s: %v", op, attempt+1, a.retries, key, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, e.Wrap(op, ctx.Err())
		}
	}

	return nil, e.Wrap(op, fmt.Errorf("after %d attempts: %w", a.retries, lastErr))
}
