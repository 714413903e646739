package main

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/internal/account"
	"github.com/dmitrymomot/guardian/internal/catalog"
)

func productScenario(d *demo) {
	d.section("Product sample")
	defer d.end()

	p, err := catalog.NewProduct(uuid.New(), "Gaming Laptop", "Laptop with a 240Hz display",
		decimal.RequireFromString("1299.99"), 15, catalog.CategoryElectronics)
	if d.unexpected(err) {
		return
	}
	d.done("Created product: %s (%s) - $%s", p.Name, p.Category.Label(), p.Price.StringFixed(2))

	if !d.unexpected(p.UpdatePrice(decimal.RequireFromString("1199.99"))) {
		d.done("Updated price to: $%s", p.Price.StringFixed(2))
	}
	if !d.unexpected(p.AddStock(10)) {
		d.done("Added stock. Current quantity: %d", p.StockQuantity)
	}

	_, err = catalog.NewProduct(uuid.Nil, "Test", "Test product", decimal.NewFromInt(100), 5, catalog.CategoryToys)
	d.rejects(err, "empty product id")
	d.rejects(p.RemoveStock(1000), "removing more stock than available")
}

func orderScenario(d *demo) {
	d.section("Order sample")
	defer d.end()

	lines := []struct {
		name  string
		price string
		qty   int
	}{
		{"Keyboard", "99.99", 1},
		{"Monitor", "100.00", 2},
	}
	items := make([]catalog.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := catalog.NewOrderItem(uuid.New(), line.name, decimal.RequireFromString(line.price), line.qty)
		if d.unexpected(err) {
			return
		}
		items = append(items, item)
	}

	o, err := catalog.NewOrder(uuid.New(), "Jane Doe", "customer@example.com", "1 Main Street, Springfield", items)
	if d.unexpected(err) {
		return
	}
	d.done("Created order with %d items", len(o.Items))
	d.done("Customer email: %s", o.CustomerEmail)
	d.done("Total amount: $%s", o.TotalAmount.StringFixed(2))

	extra, err := catalog.NewOrderItem(uuid.New(), "Mouse", decimal.NewFromInt(25), 1)
	if !d.unexpected(err) && !d.unexpected(o.AddItem(&extra)) {
		d.done("Added item. Total items: %d, total amount: $%s", len(o.Items), o.TotalAmount.StringFixed(2))
		d.rejects(o.AddItem(&extra), "duplicate product")
	}

	if !d.unexpected(o.UpdateStatus(catalog.StatusCancelled)) {
		d.done("Order status: %s", o.Status)
	}
	d.rejects(o.UpdateStatus(catalog.StatusShipped), "shipping a cancelled order")

	_, err = catalog.NewOrder(uuid.New(), "Jane Doe", "invalid-email", "1 Main Street, Springfield", items)
	d.rejects(err, "invalid email")
}

func registrationScenario(d *demo) {
	d.section("User registration sample")
	defer d.end()

	u, err := account.NewRegistration("JohnDoe", "john.doe@example.com", 25, "SecurePass123!")
	if !d.unexpected(err) {
		d.done("Registered user: %s", u.Username)
		d.done("Email: %s", u.Email)
		d.done("Age: %d", u.Age)
		if !d.unexpected(u.CheckPassword("SecurePass123!")) {
			d.done("Password verified against stored hash")
		}
	}

	for _, tc := range []struct {
		username, email string
		age             int
		password, what  string
	}{
		{"", "test@example.com", 25, "Pass1234!", "empty username"},
		{"Jo", "test@example.com", 25, "Pass1234!", "username too short"},
		{"ValidUser", "invalid", 25, "Pass1234!", "invalid email"},
		{"ValidUser", "test@example.com", 17, "Pass1234!", "age too young"},
		{"ValidUser", "test@example.com", 25, "short", "password too short"},
	} {
		_, err := account.NewRegistration(tc.username, tc.email, tc.age, tc.password)
		d.rejects(err, tc.what)
	}
}

func bankScenario(d *demo) {
	d.section("Bank account sample")
	defer d.end()

	acc, err := account.NewBankAccount("1234567890", "John Doe", decimal.NewFromInt(1000))
	if d.unexpected(err) {
		return
	}
	d.done("Created account: %s", acc.Number)
	d.done("Account holder: %s", acc.Holder)
	d.done("Initial balance: $%s", acc.Balance.StringFixed(2))

	if !d.unexpected(acc.Deposit(decimal.NewFromInt(500))) {
		d.done("Deposited $500. New balance: $%s", acc.Balance.StringFixed(2))
	}
	if !d.unexpected(acc.Withdraw(decimal.NewFromInt(200))) {
		d.done("Withdrew $200. New balance: $%s", acc.Balance.StringFixed(2))
	}
	d.rejects(acc.Withdraw(decimal.NewFromInt(2000)), "overdraft")

	target, err := account.NewBankAccount("0987654321", "Jane Doe", decimal.NewFromInt(500))
	if d.unexpected(err) {
		return
	}
	if !d.unexpected(acc.Transfer(target, decimal.NewFromInt(300))) {
		d.done("Transferred $300. Source balance: $%s, target balance: $%s",
			acc.Balance.StringFixed(2), target.Balance.StringFixed(2))
	}
}
