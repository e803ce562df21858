package services

// ServiceContainer holds every core service so transport-facing code (the
// TCP session engine and the HTTP handlers) receives one wiring value.
type ServiceContainer struct {
	Auth      AuthSvcFacade
	Directory DirectorySvcFacade
	Catalog   CatalogSvcFacade
	Sale      SaleSvcFacade
	Chat      ChatSvcFacade
}
