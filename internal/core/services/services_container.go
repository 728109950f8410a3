package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/sme_tax_estimator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sme_tax_estimator/internal/core/ports/services"
	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/SscSPs/sme_tax_estimator/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker portssvc.EventTracker) (*portssvc.ServiceContainer, error) {
	engine, err := newTaxEngine(cfg.DefaultRulesetVersion)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	// Business service first since the others authorize through it
	container.Business = NewBusinessService(repos.BusinessRepo)
	authorizer := container.Business.(portssvc.BusinessAuthorizerSvc)

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg, container.User)
	container.Expense = NewExpenseService(repos.ExpenseRepo, WithExpenseBusinessAuthorizer(authorizer))
	container.Revenue = NewRevenueService(repos.RevenueRepo, authorizer)
	container.Tax = NewTaxService(repos.AssessmentRepo,
		WithTaxBusinessAuthorizer(authorizer),
		WithTaxEngine(engine),
		WithEventTracker(tracker),
	)

	return container, nil
}

func newTaxEngine(defaultVersion string) (*taxengine.Engine, error) {
	reg := taxengine.DefaultRegistry()
	if defaultVersion == "" || defaultVersion == reg.DefaultVersion() {
		return taxengine.New(reg), nil
	}
	reg, err := reg.WithDefault(defaultVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_RULESET_VERSION: %w", err)
	}
	return taxengine.New(reg), nil
}
