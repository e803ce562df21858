package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/retailcore/branch_retail_app/internal/apperrors"
	"github.com/retailcore/branch_retail_app/internal/core/domain"
	"github.com/retailcore/branch_retail_app/internal/dto"
	"github.com/retailcore/branch_retail_app/internal/reports"
	"github.com/retailcore/branch_retail_app/internal/utils"
	"github.com/shopspring/decimal"
)

// controlAction tells the session loop what to do after a command's reply.
type controlAction int

const (
	actionNone controlAction = iota
	actionLogout
	actionExit
)

// roleGate restricts who may run a command.
type roleGate int

const (
	anyRole roleGate = iota
	adminOnly
	operatorOnly // Any non-admin role
)

type command struct {
	gate roleGate
	help string
	run  func(s *Session, ctx context.Context, args []string) string
}

// commandOrder fixes the MENU listing order.
var commandOrder = []string{
	"MENU",
	"ADD_EMPLOYEE",
	"SHOW_EMPLOYEES",
	"SHOW_CUSTOMERS",
	"SHOW_PRODUCTS",
	"ADD_CUSTOMER",
	"SELL",
	"PURCHASE_PRODUCT",
	"SAVE_SALES",
	"VIEW_SALES_LOGS",
	"LOGS_TO_WORD",
	"START_CHAT",
	"JOIN_CHAT",
	"SEND_MSG",
	"SHOW_CHAT",
	"LIST_CHATS",
	"LOGOUT",
	"EXIT",
}

// commands is populated in init to avoid an initialization cycle with cmdMenu.
var commands map[string]command

func init() {
	commands = map[string]command{
		"MENU": {gate: anyRole, help: "MENU - list available commands",
			run: (*Session).cmdMenu},
		"ADD_EMPLOYEE": {gate: adminOnly, help: "ADD_EMPLOYEE <name...> <id> <phone> <bank> <branch> <number> <role> <username> <password>",
			run: (*Session).cmdAddEmployee},
		"SHOW_EMPLOYEES": {gate: adminOnly, help: "SHOW_EMPLOYEES - list all employees",
			run: (*Session).cmdShowEmployees},
		"SHOW_CUSTOMERS": {gate: adminOnly, help: "SHOW_CUSTOMERS - list all customers",
			run: (*Session).cmdShowCustomers},
		"SHOW_PRODUCTS": {gate: anyRole, help: "SHOW_PRODUCTS - list products (admins see every branch)",
			run: (*Session).cmdShowProducts},
		"ADD_CUSTOMER": {gate: anyRole, help: "ADD_CUSTOMER <name...> <id> <phone> <NEW|RETURNING|VIP>",
			run: (*Session).cmdAddCustomer},
		"SELL": {gate: operatorOnly, help: "SELL <productId> <quantity> <customerId>",
			run: (*Session).cmdSell},
		"PURCHASE_PRODUCT": {gate: operatorOnly, help: "PURCHASE_PRODUCT <productId> <branch> <quantity> [<price> <category> <name...>]",
			run: (*Session).cmdPurchaseProduct},
		"SAVE_SALES": {gate: adminOnly, help: "SAVE_SALES - persist the sales ledger",
			run: (*Session).cmdSaveSales},
		"VIEW_SALES_LOGS": {gate: adminOnly, help: "VIEW_SALES_LOGS - list the sales ledger",
			run: (*Session).cmdViewSalesLogs},
		"LOGS_TO_WORD": {gate: adminOnly, help: "LOGS_TO_WORD - export the sales ledger as a report document",
			run: (*Session).cmdLogsToWord},
		"START_CHAT": {gate: anyRole, help: "START_CHAT <branch> - open a chat with another branch",
			run: (*Session).cmdStartChat},
		"JOIN_CHAT": {gate: anyRole, help: "JOIN_CHAT <chatId> - join an existing chat",
			run: (*Session).cmdJoinChat},
		"SHOW_CHAT": {gate: anyRole, help: "SHOW_CHAT - show the current chat's messages",
			run: (*Session).cmdShowChat},
		"LIST_CHATS": {gate: adminOnly, help: "LIST_CHATS - list all chat sessions",
			run: (*Session).cmdListChats},
	}
}

// dispatch resolves one authenticated command line to a reply and a control
// action. Command tokens are case-insensitive; SEND_MSG treats the remainder
// of the line verbatim as message content.
func (s *Session) dispatch(ctx context.Context, line string) (string, controlAction) {
	fields := strings.Fields(line)
	token := strings.ToUpper(fields[0])

	switch token {
	case "LOGOUT":
		return "Logged out.", actionLogout
	case "EXIT":
		return "Goodbye.", actionExit
	case "SEND_MSG":
		rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		return s.cmdSendMsg(ctx, rest), actionNone
	}

	cmd, ok := commands[token]
	if !ok {
		return "Unknown command. Type MENU for available commands.", actionNone
	}
	if reply, ok := s.checkGate(cmd.gate, token); !ok {
		return reply, actionNone
	}

	s.logger.Debug("command dispatched", slog.String("command", token))
	return cmd.run(s, ctx, fields[1:]), actionNone
}

func (s *Session) checkGate(gate roleGate, token string) (string, bool) {
	switch gate {
	case adminOnly:
		if !s.operator.Role.IsAdmin() {
			return fmt.Sprintf("Error: %s: %s requires the ADMIN role", apperrors.ErrForbidden, token), false
		}
	case operatorOnly:
		if s.operator.Role.IsAdmin() {
			return fmt.Sprintf("Error: %s: %s is not available to ADMIN accounts", apperrors.ErrForbidden, token), false
		}
	}
	return "", true
}

func (s *Session) cmdMenu(ctx context.Context, _ []string) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, name := range commandOrder {
		switch name {
		case "LOGOUT":
			b.WriteString("\n  LOGOUT - end this login, keep the connection")
			continue
		case "EXIT":
			b.WriteString("\n  EXIT - close the connection")
			continue
		case "SEND_MSG":
			b.WriteString("\n  SEND_MSG <text> - send a message to the current chat")
			continue
		}
		cmd := commands[name]
		if cmd.gate == adminOnly && !s.operator.Role.IsAdmin() {
			continue
		}
		if cmd.gate == operatorOnly && s.operator.Role.IsAdmin() {
			continue
		}
		b.WriteString("\n  " + cmd.help)
	}
	return b.String()
}

func (s *Session) cmdAddEmployee(ctx context.Context, args []string) string {
	// Variable-length name followed by 8 fixed fields.
	if len(args) < 9 {
		return fmt.Sprintf("Error: %s: expected <name...> and 8 fields, see MENU", apperrors.ErrValidation)
	}
	fixed := args[len(args)-8:]
	name := strings.Join(args[:len(args)-8], " ")

	number, err := strconv.Atoi(fixed[4])
	if err != nil {
		return fmt.Sprintf("Error: %s: employee number %q is not a number", apperrors.ErrValidation, fixed[4])
	}

	req := dto.CreateEmployeeRequest{
		Name:        name,
		EmployeeID:  fixed[0],
		Phone:       fixed[1],
		BankAccount: fixed[2],
		BranchID:    fixed[3],
		Number:      number,
		Role:        strings.ToUpper(fixed[5]),
		Username:    fixed[6],
		Password:    fixed[7],
	}
	employee, err := s.services.Directory.CreateEmployee(ctx, req, s.username)
	if err != nil {
		return "Error: " + err.Error()
	}

	s.audit("ADD_EMPLOYEE " + employee.EmployeeID)
	return fmt.Sprintf("Employee added: id %s, branch %s, role %s", employee.EmployeeID, employee.BranchID, employee.Role)
}

func (s *Session) cmdShowEmployees(ctx context.Context, _ []string) string {
	employees, err := s.services.Directory.ListEmployees(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(employees) == 0 {
		return "No employees registered."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-4s %-20s %-10s %-8s %-8s %-11s", "NUM", "NAME", "ID", "BRANCH", "ROLE", "PHONE"))
	for _, e := range employees {
		b.WriteString(fmt.Sprintf("\n%-4d %-20s %-10s %-8s %-8s %-11s", e.Number, e.Name, e.EmployeeID, e.BranchID, e.Role, e.Phone))
	}
	return b.String()
}

func (s *Session) cmdShowCustomers(ctx context.Context, _ []string) string {
	customers, err := s.services.Directory.ListCustomers(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(customers) == 0 {
		return "No customers registered."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-10s %-20s %-11s %-9s", "ID", "NAME", "PHONE", "TIER"))
	for _, c := range customers {
		b.WriteString(fmt.Sprintf("\n%-10s %-20s %-11s %-9s", c.CustomerID, c.Name, c.Phone, c.Tier))
	}
	return b.String()
}

func (s *Session) cmdShowProducts(ctx context.Context, _ []string) string {
	var (
		products []domain.Product
		err      error
	)
	if s.operator.Role.IsAdmin() {
		products, err = s.services.Catalog.ListProducts(ctx)
	} else {
		products, err = s.services.Catalog.ListProductsByBranch(ctx, s.operator.BranchID)
	}
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(products) == 0 {
		return "No products in catalog."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-10s %-20s %-12s %-10s %-6s %-8s", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "BRANCH"))
	for _, p := range products {
		b.WriteString(fmt.Sprintf("\n%-10s %-20s %-12s %-10s %-6d %-8s",
			p.ProductID, p.Name, p.Category, utils.FormatPrice(p.Price), p.Stock, p.BranchID))
	}
	return b.String()
}

func (s *Session) cmdAddCustomer(ctx context.Context, args []string) string {
	// Variable-length name terminated by the 9-digit id, then phone and tier.
	if len(args) < 4 {
		return fmt.Sprintf("Error: %s: expected <name...> <id> <phone> <tier>", apperrors.ErrValidation)
	}
	req := dto.CreateCustomerRequest{
		Name:       strings.Join(args[:len(args)-3], " "),
		CustomerID: args[len(args)-3],
		Phone:      args[len(args)-2],
		Tier:       strings.ToUpper(args[len(args)-1]),
	}
	customer, err := s.services.Directory.CreateCustomer(ctx, req, s.username)
	if err != nil {
		return "Error: " + err.Error()
	}

	s.audit("ADD_CUSTOMER " + customer.CustomerID)
	return fmt.Sprintf("Customer added: id %s, tier %s", customer.CustomerID, customer.Tier)
}

func (s *Session) cmdSell(ctx context.Context, args []string) string {
	if len(args) != 3 {
		return fmt.Sprintf("Error: %s: expected SELL <productId> <quantity> <customerId>", apperrors.ErrValidation)
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Sprintf("Error: %s: quantity %q is not a number", apperrors.ErrValidation, args[1])
	}

	req := dto.SellRequest{
		ProductID:  args[0],
		BranchID:   s.operator.BranchID, // Sales only against the caller's own branch
		Quantity:   quantity,
		CustomerID: args[2],
	}
	record, err := s.services.Sale.Sell(ctx, *s.operator, req)
	if err != nil {
		return "Error: " + err.Error()
	}

	s.audit(fmt.Sprintf("SELL %s x%d for %s", record.ProductID, record.Quantity, utils.FormatPrice(record.FinalPrice)))
	return fmt.Sprintf("Sale recorded: %s x%d, final price %s", record.Name, record.Quantity, utils.FormatPrice(record.FinalPrice))
}

func (s *Session) cmdPurchaseProduct(ctx context.Context, args []string) string {
	if len(args) < 3 {
		return fmt.Sprintf("Error: %s: expected PURCHASE_PRODUCT <productId> <branch> <quantity> [<price> <category> <name...>]", apperrors.ErrValidation)
	}
	quantity, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Sprintf("Error: %s: quantity %q is not a number", apperrors.ErrValidation, args[2])
	}

	req := dto.RestockRequest{
		ProductID: args[0],
		BranchID:  args[1],
		Quantity:  quantity,
	}
	if len(args) > 3 {
		if len(args) < 6 {
			return fmt.Sprintf("Error: %s: new products need <price> <category> <name...>", apperrors.ErrValidation)
		}
		price, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Sprintf("Error: %s: price %q is not a number", apperrors.ErrValidation, args[3])
		}
		req.UnitPrice = price
		req.Category = args[4]
		req.Name = strings.Join(args[5:], " ")
	}

	product, err := s.services.Catalog.Restock(ctx, *s.operator, req)
	if err != nil {
		return "Error: " + err.Error()
	}

	s.audit(fmt.Sprintf("PURCHASE_PRODUCT %s x%d", product.ProductID, quantity))
	return fmt.Sprintf("Product %s stocked: %d units on hand", product.ProductID, product.Stock)
}

func (s *Session) cmdSaveSales(ctx context.Context, _ []string) string {
	sales, err := s.services.Sale.ListSales(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	if err := s.collab.Store.SaveSales(sales); err != nil {
		return "Error: " + err.Error()
	}

	s.audit(fmt.Sprintf("SAVE_SALES %d records", len(sales)))
	return fmt.Sprintf("Saved %d sale records.", len(sales))
}

func (s *Session) cmdViewSalesLogs(ctx context.Context, _ []string) string {
	sales, err := s.services.Sale.ListSales(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(sales) == 0 {
		return "No sales recorded."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-20s %-10s %-20s %-8s %-4s %-10s", "TIME", "PRODUCT", "NAME", "BRANCH", "QTY", "PRICE"))
	for _, sale := range sales {
		b.WriteString(fmt.Sprintf("\n%-20s %-10s %-20s %-8s %-4d %-10s",
			sale.SoldAt.Format("2006-01-02 15:04:05"), sale.ProductID, sale.Name,
			sale.BranchID, sale.Quantity, utils.FormatPrice(sale.FinalPrice)))
	}
	return b.String()
}

func (s *Session) cmdLogsToWord(ctx context.Context, _ []string) string {
	sales, err := s.services.Sale.ListSales(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	path, err := reports.WriteSalesWorkbook(s.collab.ReportDir, sales)
	if err != nil {
		return "Error: " + err.Error()
	}

	s.audit("LOGS_TO_WORD " + path)
	return "Sales report written to " + path
}

func (s *Session) cmdStartChat(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return fmt.Sprintf("Error: %s: expected START_CHAT <branch>", apperrors.ErrValidation)
	}
	chat, err := s.services.Chat.StartChat(ctx, s.operator.BranchID, args[0])
	if err != nil {
		return "Error: " + err.Error()
	}

	s.chatID = chat.ChatID
	s.audit("START_CHAT " + chat.ChatID)
	return fmt.Sprintf("Chat %s started with branch %s.", chat.ChatID, args[0])
}

func (s *Session) cmdJoinChat(ctx context.Context, args []string) string {
	if len(args) != 1 {
		return fmt.Sprintf("Error: %s: expected JOIN_CHAT <chatId>", apperrors.ErrValidation)
	}
	chat, err := s.services.Chat.JoinChat(ctx, args[0], s.operator.BranchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "Error: no chat found."
		}
		return "Error: " + err.Error()
	}

	s.chatID = chat.ChatID
	s.audit("JOIN_CHAT " + chat.ChatID)
	return fmt.Sprintf("Joined chat %s (branches: %s).", chat.ChatID, strings.Join(chat.BranchIDs, ", "))
}

func (s *Session) cmdSendMsg(ctx context.Context, content string) string {
	if s.chatID == "" {
		return fmt.Sprintf("Error: %s: no active chat, use START_CHAT or JOIN_CHAT first", apperrors.ErrValidation)
	}
	if content == "" {
		return fmt.Sprintf("Error: %s: empty message", apperrors.ErrValidation)
	}
	if err := s.services.Chat.SendMessage(ctx, s.chatID, *s.operator, content); err != nil {
		return "Error: " + err.Error()
	}

	s.audit("SEND_MSG " + s.chatID)
	return "Message sent."
}

func (s *Session) cmdShowChat(ctx context.Context, _ []string) string {
	if s.chatID == "" {
		return fmt.Sprintf("Error: %s: no active chat, use START_CHAT or JOIN_CHAT first", apperrors.ErrValidation)
	}
	chat, err := s.services.Chat.GetChat(ctx, s.chatID, *s.operator)
	if err != nil {
		return "Error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Chat %s (branches: %s)", chat.ChatID, strings.Join(chat.BranchIDs, ", ")))
	if len(chat.Messages) == 0 {
		b.WriteString("\n  (no messages)")
	}
	for _, msg := range chat.Messages {
		b.WriteString(fmt.Sprintf("\n  [%s] %s@%s: %s",
			msg.SentAt.Format("15:04:05"), msg.SenderName, msg.SenderBranch, msg.Content))
	}
	return b.String()
}

func (s *Session) cmdListChats(ctx context.Context, _ []string) string {
	chats, err := s.services.Chat.ListChats(ctx)
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(chats) == 0 {
		return "No chat sessions."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-10s %-24s %-9s %-7s", "ID", "BRANCHES", "MESSAGES", "ACTIVE"))
	for _, chat := range chats {
		b.WriteString(fmt.Sprintf("\n%-10s %-24s %-9d %-7t",
			chat.ChatID, strings.Join(chat.BranchIDs, ","), len(chat.Messages), chat.Active))
	}
	return b.String()
}
