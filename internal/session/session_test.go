package session

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/retailcore/branch_retail_app/internal/adapters/memstore"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	portssvc "github.com/retailcore/branch_retail_app/internal/core/ports/services"
	"github.com/retailcore/branch_retail_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// protocolClient drives one end of a net.Pipe against a running session.
type protocolClient struct {
	t       *testing.T
	conn    net.Conn
	scanner *bufio.Scanner
}

func (c *protocolClient) send(line string) {
	c.t.Helper()
	_, err := io.WriteString(c.conn, line+"\n")
	require.NoError(c.t, err)
}

func (c *protocolClient) expect(substr string) string {
	c.t.Helper()
	require.True(c.t, c.scanner.Scan(), "connection closed while waiting for %q", substr)
	line := c.scanner.Text()
	require.Contains(c.t, line, substr)
	return line
}

func newTestContainer(t *testing.T) *portssvc.ServiceContainer {
	t.Helper()
	ctx := context.Background()

	repos := memstore.NewRepositoryProvider()
	container := services.NewServiceContainer(repos)

	for _, branch := range []domain.Branch{
		{BranchID: "TV01", Name: "Tel Aviv"},
		{BranchID: "HF01", Name: "Haifa"},
	} {
		require.NoError(t, repos.BranchRepo.SaveBranch(ctx, branch))
	}

	admin := domain.Employee{EmployeeID: "100000001", Name: "Noa Peretz", Phone: "0501111111", BranchID: "TV01", Number: 1, Role: domain.RoleAdmin}
	cashier := domain.Employee{EmployeeID: "100000002", Name: "Dana Levi", Phone: "0502222222", BranchID: "TV01", Number: 2, Role: domain.RoleCashier}
	for _, e := range []domain.Employee{admin, cashier} {
		require.NoError(t, repos.EmployeeRepo.SaveEmployee(ctx, e))
	}
	require.NoError(t, container.Auth.Register(ctx, admin, "noa", "admin1"))
	require.NoError(t, container.Auth.Register(ctx, cashier, "dana", "secret"))

	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, domain.Product{
		ProductID: "P1",
		Name:      "Desk Lamp",
		Category:  "Lighting",
		Price:     decimal.NewFromInt(100),
		Stock:     10,
		BranchID:  "TV01",
	}))
	require.NoError(t, repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{
		CustomerID: "000000001",
		Name:       "Avi Cohen",
		Phone:      "0501234567",
		Tier:       domain.TierReturning,
	}))

	return container
}

func startSession(t *testing.T, container *portssvc.ServiceContainer) *protocolClient {
	t.Helper()

	serverEnd, clientEnd := net.Pipe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		NewSession(serverEnd, container, Collaborators{}, logger).Run(ctx)
	}()

	t.Cleanup(func() {
		clientEnd.Close()
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("session did not terminate")
		}
	})

	return &protocolClient{t: t, conn: clientEnd, scanner: bufio.NewScanner(clientEnd)}
}

func login(c *protocolClient, username, password string) {
	c.expect("Username:")
	c.send(username)
	c.expect("Password:")
	c.send(password)
	c.expect("Welcome")
}

func TestSessionCashierFlow(t *testing.T) {
	container := newTestContainer(t)
	c := startSession(t, container)

	login(c, "dana", "secret")

	// 3 x 100 with the returning customer's 10 percent discount.
	c.send("SELL P1 3 000000001")
	c.expect("270.00")

	c.send("START_CHAT TV01")
	c.expect("cannot start a chat with your own branch")

	c.send("JOIN_CHAT CHAT-9999")
	c.expect("Error: no chat found.")

	c.send("START_CHAT HF01")
	c.expect("CHAT-1000")

	c.send("SEND_MSG low on lamps at TV01")
	c.expect("Message sent.")

	c.send("SHOW_CHAT")
	c.expect("CHAT-1000")
	c.expect("low on lamps at TV01")

	// Unknown and malformed input.
	c.send("FROBNICATE")
	c.expect("Unknown command")
	c.send("SELL P1")
	c.expect("Error:")

	// LOGOUT releases the slot and returns to the username prompt.
	c.send("LOGOUT")
	c.expect("Logged out.")
	c.expect("Username:")
	c.send("dana")
	c.expect("Password:")
	c.send("secret")
	c.expect("Welcome")

	c.send("EXIT")
	c.expect("Goodbye.")
	assert.False(t, c.scanner.Scan(), "connection should be closed after EXIT")
}

func TestSessionAdminFlow(t *testing.T) {
	container := newTestContainer(t)
	c := startSession(t, container)

	login(c, "noa", "admin1")

	// Admins are excluded from selling.
	c.send("SELL P1 1 000000001")
	c.expect("not available to ADMIN")

	c.send("ADD_EMPLOYEE Jane Doe 123456789 0501234567 ACC1 TV01 5 ADMIN janedoe pass1")
	line := c.expect("Employee added")
	assert.Contains(t, line, "123456789")
	assert.Contains(t, line, "TV01")
	assert.Contains(t, line, "ADMIN")

	// Listing is ordered by employee number: header, then 1, 2, 5.
	c.send("SHOW_EMPLOYEES")
	c.expect("NAME")
	c.expect("Noa Peretz")
	c.expect("Dana Levi")
	c.expect("Jane Doe")

	c.send("ADD_CUSTOMER Rina Bar 000000002 0509999999 VIP")
	c.expect("Customer added: id 000000002, tier VIP")

	c.send("EXIT")
	c.expect("Goodbye.")
}

func TestSessionRejectsBadLoginAndDuplicateLogin(t *testing.T) {
	container := newTestContainer(t)

	c1 := startSession(t, container)
	c1.expect("Username:")
	c1.send("dana")
	c1.expect("Password:")
	c1.send("wrong")
	c1.expect("Error:")
	c1.expect("Username:")

	// Correct credentials now claim the slot.
	c1.send("dana")
	c1.expect("Password:")
	c1.send("secret")
	c1.expect("Welcome")

	// A second connection for the same account is rejected.
	c2 := startSession(t, container)
	c2.expect("Username:")
	c2.send("dana")
	c2.expect("Password:")
	c2.send("secret")
	c2.expect("already logged in")
	c2.expect("Username:")
}

func TestSessionCommandGates(t *testing.T) {
	container := newTestContainer(t)
	c := startSession(t, container)

	login(c, "dana", "secret")

	c.send("SHOW_EMPLOYEES")
	c.expect("requires the ADMIN role")
	c.send("LIST_CHATS")
	c.expect("requires the ADMIN role")

	// Restocking another branch is rejected by the catalog service.
	c.send("PURCHASE_PRODUCT P1 HF01 5")
	c.expect("Error:")

	// Restocking the own branch adds stock.
	c.send("PURCHASE_PRODUCT P1 TV01 5")
	c.expect("15 units on hand")
}
