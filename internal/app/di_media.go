package app

import (
	"fmt"

	mediahttp "github.com/allisson/vidshare/internal/media/http"
	mediarepository "github.com/allisson/vidshare/internal/media/repository"
	mediaservice "github.com/allisson/vidshare/internal/media/service"
	mediausecase "github.com/allisson/vidshare/internal/media/usecase"
)

// CapabilityURLIssuer returns the signed-URL issuer over the blob bucket.
func (c *Container) CapabilityURLIssuer() (mediaservice.CapabilityURLIssuer, error) {
	var err error
	c.capabilityIssuerInit.Do(func() {
		c.capabilityIssuer, err = c.initCapabilityURLIssuer()
		if err != nil {
			c.initErrors["capabilityIssuer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["capabilityIssuer"]; exists {
		return nil, storedErr
	}
	return c.capabilityIssuer, nil
}

// VideoRepository returns the video metadata repository.
func (c *Container) VideoRepository() (mediausecase.VideoRepository, error) {
	var err error
	c.videoRepoInit.Do(func() {
		c.videoRepo, err = c.initVideoRepository()
		if err != nil {
			c.initErrors["videoRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["videoRepo"]; exists {
		return nil, storedErr
	}
	return c.videoRepo, nil
}

// CommentRepository returns the comment repository.
func (c *Container) CommentRepository() (mediausecase.CommentRepository, error) {
	var err error
	c.commentRepoInit.Do(func() {
		c.commentRepo, err = c.initCommentRepository()
		if err != nil {
			c.initErrors["commentRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["commentRepo"]; exists {
		return nil, storedErr
	}
	return c.commentRepo, nil
}

// RatingRepository returns the rating repository.
func (c *Container) RatingRepository() (mediausecase.RatingRepository, error) {
	var err error
	c.ratingRepoInit.Do(func() {
		c.ratingRepo, err = c.initRatingRepository()
		if err != nil {
			c.initErrors["ratingRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ratingRepo"]; exists {
		return nil, storedErr
	}
	return c.ratingRepo, nil
}

// VideoUseCase returns the video use case.
func (c *Container) VideoUseCase() (mediausecase.VideoUseCase, error) {
	var err error
	c.videoUseCaseInit.Do(func() {
		c.videoUseCase, err = c.initVideoUseCase()
		if err != nil {
			c.initErrors["videoUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["videoUseCase"]; exists {
		return nil, storedErr
	}
	return c.videoUseCase, nil
}

// EngagementUseCase returns the engagement use case.
func (c *Container) EngagementUseCase() (mediausecase.EngagementUseCase, error) {
	var err error
	c.engagementUseCaseInit.Do(func() {
		c.engagementUseCase, err = c.initEngagementUseCase()
		if err != nil {
			c.initErrors["engagementUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["engagementUseCase"]; exists {
		return nil, storedErr
	}
	return c.engagementUseCase, nil
}

// VideoHandler returns the HTTP handler for video operations.
func (c *Container) VideoHandler() (*mediahttp.VideoHandler, error) {
	var err error
	c.videoHandlerInit.Do(func() {
		c.videoHandler, err = c.initVideoHandler()
		if err != nil {
			c.initErrors["videoHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["videoHandler"]; exists {
		return nil, storedErr
	}
	return c.videoHandler, nil
}

// EngagementHandler returns the HTTP handler for comments and ratings.
func (c *Container) EngagementHandler() (*mediahttp.EngagementHandler, error) {
	var err error
	c.engagementHandlerInit.Do(func() {
		c.engagementHandler, err = c.initEngagementHandler()
		if err != nil {
			c.initErrors["engagementHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["engagementHandler"]; exists {
		return nil, storedErr
	}
	return c.engagementHandler, nil
}

// initCapabilityURLIssuer creates the signed-URL issuer over the bucket.
func (c *Container) initCapabilityURLIssuer() (mediaservice.CapabilityURLIssuer, error) {
	bucket, err := c.Bucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket for capability url issuer: %w", err)
	}

	return mediaservice.NewCapabilityURLIssuer(
		bucket,
		c.config.UploadURLWindow,
		c.config.PlaybackURLWindow,
	), nil
}

// initVideoRepository creates the video repository on the document store.
func (c *Container) initVideoRepository() (mediausecase.VideoRepository, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get document store for video repository: %w", err)
	}

	db := client.Database(c.config.MongoDatabase)
	return mediarepository.NewMongoVideoRepository(db), nil
}

// initCommentRepository creates the comment repository on the document store.
func (c *Container) initCommentRepository() (mediausecase.CommentRepository, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get document store for comment repository: %w", err)
	}

	db := client.Database(c.config.MongoDatabase)
	return mediarepository.NewMongoCommentRepository(db), nil
}

// initRatingRepository creates the rating repository on the document store.
func (c *Container) initRatingRepository() (mediausecase.RatingRepository, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get document store for rating repository: %w", err)
	}

	db := client.Database(c.config.MongoDatabase)
	return mediarepository.NewMongoRatingRepository(db), nil
}

// initVideoUseCase creates the video use case with all its dependencies.
func (c *Container) initVideoUseCase() (mediausecase.VideoUseCase, error) {
	videoRepo, err := c.VideoRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get video repository for video use case: %w", err)
	}

	issuer, err := c.CapabilityURLIssuer()
	if err != nil {
		return nil, fmt.Errorf("failed to get capability url issuer for video use case: %w", err)
	}

	baseUseCase := mediausecase.NewVideoUseCase(videoRepo, issuer, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for video use case: %w", err)
		}
		return mediausecase.NewVideoUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initEngagementUseCase creates the engagement use case with all its dependencies.
func (c *Container) initEngagementUseCase() (mediausecase.EngagementUseCase, error) {
	videoRepo, err := c.VideoRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get video repository for engagement use case: %w", err)
	}

	commentRepo, err := c.CommentRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get comment repository for engagement use case: %w", err)
	}

	ratingRepo, err := c.RatingRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get rating repository for engagement use case: %w", err)
	}

	return mediausecase.NewEngagementUseCase(videoRepo, commentRepo, ratingRepo, c.Logger()), nil
}

// initVideoHandler creates the video HTTP handler with all its dependencies.
func (c *Container) initVideoHandler() (*mediahttp.VideoHandler, error) {
	videoUseCase, err := c.VideoUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get video use case for video handler: %w", err)
	}

	return mediahttp.NewVideoHandler(videoUseCase, c.Logger()), nil
}

// initEngagementHandler creates the engagement HTTP handler with all its dependencies.
func (c *Container) initEngagementHandler() (*mediahttp.EngagementHandler, error) {
	engagementUseCase, err := c.EngagementUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get engagement use case for engagement handler: %w", err)
	}

	return mediahttp.NewEngagementHandler(engagementUseCase, c.Logger()), nil
}
