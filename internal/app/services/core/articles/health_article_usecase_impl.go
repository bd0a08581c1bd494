package articles

import (
	"context"
	"healthsync-service/internal/app/contracts"
	"healthsync-service/internal/app/models"
	"healthsync-service/internal/pkg/constvars"
	"healthsync-service/internal/pkg/dto/responses"
	"healthsync-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"go.uber.org/zap"
)

type healthArticleUsecase struct {
	HealthArticleRepository contracts.HealthArticleRepository
	Log                     *zap.Logger
}

var (
	healthArticleUsecaseInstance contracts.HealthArticleUsecase
	onceHealthArticleUsecase     sync.Once
)

func NewHealthArticleUsecase(healthArticleRepository contracts.HealthArticleRepository, logger *zap.Logger) contracts.HealthArticleUsecase {
	onceHealthArticleUsecase.Do(func() {
		healthArticleUsecaseInstance = &healthArticleUsecase{
			HealthArticleRepository: healthArticleRepository,
			Log:                     logger,
		}
	})
	return healthArticleUsecaseInstance
}

func (uc *healthArticleUsecase) FindAll(ctx context.Context) ([]responses.HealthArticle, error) {
	articles, err := uc.HealthArticleRepository.FindAll(ctx)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Error("healthArticleUsecase.FindAll error finding articles",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// Newest publication first.
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})

	result := make([]responses.HealthArticle, 0, len(articles))
	for _, article := range articles {
		result = append(result, buildHealthArticleResponse(&article))
	}
	return result, nil
}

func (uc *healthArticleUsecase) FindByID(ctx context.Context, articleID string) (*responses.HealthArticle, error) {
	article, err := uc.HealthArticleRepository.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBFailedToFindDocument)
	}
	response := buildHealthArticleResponse(article)
	return &response, nil
}

func buildHealthArticleResponse(article *models.HealthArticle) responses.HealthArticle {
	return responses.HealthArticle{
		ID:          article.ID,
		Title:       article.Title,
		Summary:     article.Summary,
		Content:     article.Content,
		PublishedAt: article.PublishedAt,
	}
}
