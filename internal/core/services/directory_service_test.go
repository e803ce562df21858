package services_test

import (
	"context"
	"testing"

	"github.com/retailcore/branch_retail_app/internal/adapters/memstore"
	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/core/services"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

type DirectoryServiceTestSuite struct {
	suite.Suite
	employees *memstore.EmployeeRepository
	customers *memstore.CustomerRepository
	branches  *memstore.BranchRepository
	auth      portssvc.AuthSvcFacade
	service   portssvc.DirectorySvcFacade
}

func (s *DirectoryServiceTestSuite) SetupTest() {
	s.employees = memstore.NewEmployeeRepository()
	s.customers = memstore.NewCustomerRepository()
	s.branches = memstore.NewBranchRepository()
	s.auth = services.NewAuthService(s.employees)
	s.service = services.NewDirectoryService(s.employees, s.customers, s.branches, s.auth)

	s.Require().NoError(s.branches.SaveBranch(context.Background(), domain.Branch{BranchID: "TV01", Name: "Tel Aviv"}))
}

func validEmployeeRequest() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:        "Jane Doe",
		EmployeeID:  "123456789",
		Phone:       "0501234567",
		BankAccount: "ACC1",
		BranchID:    "TV01",
		Number:      5,
		Role:        "ADMIN",
		Username:    "janedoe",
		Password:    "pass1",
	}
}

func (s *DirectoryServiceTestSuite) TestCreateEmployeeSuccess() {
	employee, err := s.service.CreateEmployee(context.Background(), validEmployeeRequest(), "boss")
	s.Require().NoError(err)
	s.Equal("123456789", employee.EmployeeID)
	s.Equal(domain.RoleAdmin, employee.Role)
	s.Equal("boss", employee.CreatedBy)

	// The credentials must be usable immediately.
	loggedIn, err := s.auth.Login(context.Background(), "janedoe", "pass1")
	s.Require().NoError(err)
	s.Equal(employee.EmployeeID, loggedIn.EmployeeID)
}

func (s *DirectoryServiceTestSuite) TestCreateEmployeeUnknownBranch() {
	req := validEmployeeRequest()
	req.BranchID = "XX99"

	_, err := s.service.CreateEmployee(context.Background(), req, "boss")
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DirectoryServiceTestSuite) TestCreateEmployeeInvalidIdentity() {
	testCases := []struct {
		name   string
		mutate func(*dto.CreateEmployeeRequest)
	}{
		{name: "short id", mutate: func(r *dto.CreateEmployeeRequest) { r.EmployeeID = "12345" }},
		{name: "alphabetic id", mutate: func(r *dto.CreateEmployeeRequest) { r.EmployeeID = "12345678X" }},
		{name: "short phone", mutate: func(r *dto.CreateEmployeeRequest) { r.Phone = "050123" }},
		{name: "digits in name", mutate: func(r *dto.CreateEmployeeRequest) { r.Name = "Jane 2" }},
		{name: "unknown role", mutate: func(r *dto.CreateEmployeeRequest) { r.Role = "OWNER" }},
		{name: "short password", mutate: func(r *dto.CreateEmployeeRequest) { r.Password = "abc" }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := validEmployeeRequest()
			tc.mutate(&req)
			_, err := s.service.CreateEmployee(context.Background(), req, "boss")
			s.Require().ErrorIs(err, apperrors.ErrValidation)
		})
	}
}

func (s *DirectoryServiceTestSuite) TestCreateEmployeeDuplicateID() {
	_, err := s.service.CreateEmployee(context.Background(), validEmployeeRequest(), "boss")
	s.Require().NoError(err)

	req := validEmployeeRequest()
	req.Number = 6
	req.Username = "janedoe2"
	_, err = s.service.CreateEmployee(context.Background(), req, "boss")
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *DirectoryServiceTestSuite) TestCreateEmployeeDuplicateNumber() {
	_, err := s.service.CreateEmployee(context.Background(), validEmployeeRequest(), "boss")
	s.Require().NoError(err)

	req := validEmployeeRequest()
	req.EmployeeID = "987654321"
	req.Username = "janedoe2"
	_, err = s.service.CreateEmployee(context.Background(), req, "boss")
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

// A duplicate username must leave the employee directory unchanged: the
// employee insert is compensated when the credential binding conflicts.
func (s *DirectoryServiceTestSuite) TestCreateEmployeeDuplicateUsernameCompensates() {
	_, err := s.service.CreateEmployee(context.Background(), validEmployeeRequest(), "boss")
	s.Require().NoError(err)

	req := validEmployeeRequest()
	req.EmployeeID = "987654321"
	req.Number = 6
	_, err = s.service.CreateEmployee(context.Background(), req, "boss")
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)

	employees, err := s.service.ListEmployees(context.Background())
	s.Require().NoError(err)
	s.Len(employees, 1)
	s.Equal("123456789", employees[0].EmployeeID)
}

func (s *DirectoryServiceTestSuite) TestCreateCustomerSuccess() {
	customer, err := s.service.CreateCustomer(context.Background(), dto.CreateCustomerRequest{
		Name:       "Avi Cohen",
		CustomerID: "000000001",
		Phone:      "0501234567",
		Tier:       "VIP",
	}, "janedoe")
	s.Require().NoError(err)
	s.Equal(domain.TierVIP, customer.Tier)

	found, err := s.service.GetCustomerByID(context.Background(), "000000001")
	s.Require().NoError(err)
	s.Equal("Avi Cohen", found.Name)
}

func (s *DirectoryServiceTestSuite) TestCreateCustomerDuplicateID() {
	req := dto.CreateCustomerRequest{
		Name:       "Avi Cohen",
		CustomerID: "000000001",
		Phone:      "0501234567",
		Tier:       "NEW",
	}
	_, err := s.service.CreateCustomer(context.Background(), req, "janedoe")
	s.Require().NoError(err)

	req.Name = "Someone Else"
	_, err = s.service.CreateCustomer(context.Background(), req, "janedoe")
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *DirectoryServiceTestSuite) TestCreateCustomerInvalidTier() {
	_, err := s.service.CreateCustomer(context.Background(), dto.CreateCustomerRequest{
		Name:       "Avi Cohen",
		CustomerID: "000000001",
		Phone:      "0501234567",
		Tier:       "GOLD",
	}, "janedoe")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}
