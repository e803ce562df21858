package repositories

// RepositoryProvider bundles every repository implementation so wiring code
// can pass the full set to the service container in one value.
type RepositoryProvider struct {
	EmployeeRepo EmployeeRepository
	CustomerRepo CustomerRepository
	ProductRepo  ProductRepository
	BranchRepo   BranchRepository
	SaleRepo     SaleRepository
	ChatRepo     ChatRepository
}
