package app

import (
	"fmt"

	identityhttp "github.com/allisson/vidshare/internal/identity/http"
	identityrepository "github.com/allisson/vidshare/internal/identity/repository"
	identityservice "github.com/allisson/vidshare/internal/identity/service"
	identityusecase "github.com/allisson/vidshare/internal/identity/usecase"
)

// TokenService returns the identity token service.
func (c *Container) TokenService() (identityservice.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = identityservice.NewTokenService(c.config)
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// PasswordService returns the password hashing and verification service.
func (c *Container) PasswordService() identityservice.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = identityservice.NewPasswordService(c.config)
	})
	return c.passwordService
}

// PrincipalResolver returns the request principal resolver.
func (c *Container) PrincipalResolver() (identityservice.PrincipalResolver, error) {
	var err error
	c.principalResolverInit.Do(func() {
		var tokens identityservice.TokenService
		tokens, err = c.TokenService()
		if err != nil {
			c.initErrors["principalResolver"] = err
			return
		}
		c.principalResolver = identityservice.NewPrincipalResolver(tokens, c.config.DevHeadersEnabled)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["principalResolver"]; exists {
		return nil, storedErr
	}
	return c.principalResolver, nil
}

// UserRepository returns the user record repository.
func (c *Container) UserRepository() (identityusecase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// AuthUseCase returns the identity use case.
func (c *Container) AuthUseCase() (identityusecase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for registration, login and the
// current account endpoint.
func (c *Container) AuthHandler() (*identityhttp.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// AdminHandler returns the HTTP handler for privileged role assignment.
func (c *Container) AdminHandler() (*identityhttp.AdminHandler, error) {
	var err error
	c.adminHandlerInit.Do(func() {
		c.adminHandler, err = c.initAdminHandler()
		if err != nil {
			c.initErrors["adminHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminHandler"]; exists {
		return nil, storedErr
	}
	return c.adminHandler, nil
}

// initUserRepository creates the user repository on the document store.
func (c *Container) initUserRepository() (identityusecase.UserRepository, error) {
	client, err := c.MongoClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get document store for user repository: %w", err)
	}

	db := client.Database(c.config.MongoDatabase)
	return identityrepository.NewMongoUserRepository(db), nil
}

// initAuthUseCase creates the identity use case with all its dependencies.
func (c *Container) initAuthUseCase() (identityusecase.AuthUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokens, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	passwords := c.PasswordService()

	baseUseCase := identityusecase.NewAuthUseCase(
		userRepo,
		tokens,
		passwords,
		c.config.AutoProvisionUsers,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return identityusecase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the auth HTTP handler with all its dependencies.
func (c *Container) initAuthHandler() (*identityhttp.AuthHandler, error) {
	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return identityhttp.NewAuthHandler(authUseCase, c.Logger()), nil
}

// initAdminHandler creates the admin HTTP handler with all its dependencies.
func (c *Container) initAdminHandler() (*identityhttp.AdminHandler, error) {
	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for admin handler: %w", err)
	}

	return identityhttp.NewAdminHandler(authUseCase, c.config.AdminAPIKey, c.Logger()), nil
}
