package services

import (
	portsrepo "github.com/retailcore/branch_retail_app/internal/core/ports/repositories"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Auth comes first: the directory needs it to bind credentials during
	// employee registration.
	container.Auth = NewAuthService(repos.EmployeeRepo)
	container.Directory = NewDirectoryService(repos.EmployeeRepo, repos.CustomerRepo, repos.BranchRepo, container.Auth)
	container.Catalog = NewCatalogService(repos.ProductRepo)
	container.Sale = NewSaleService(repos.CustomerRepo, repos.ProductRepo, repos.SaleRepo)
	container.Chat = NewChatService(repos.ChatRepo, repos.BranchRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.AuthSvcFacade      = (*authService)(nil)
	_ portssvc.DirectorySvcFacade = (*directoryService)(nil)
	_ portssvc.CatalogSvcFacade   = (*catalogService)(nil)
	_ portssvc.SaleSvcFacade      = (*saleService)(nil)
	_ portssvc.ChatSvcFacade      = (*chatService)(nil)
)
