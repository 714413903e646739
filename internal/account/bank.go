package account

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/guardian/pkg/guard"
)

var (
	accountNumberFormat = regexp.MustCompile(`^\d{10}$`)
	maxDeposit          = decimal.NewFromInt(1_000_000)
)

// BankAccount holds a balance that never goes negative.
// It is not safe for concurrent use.
type BankAccount struct {
	Number  string
	Holder  string
	Balance decimal.Decimal
}

// NewBankAccount validates a ten-digit account number, the holder name and
// a non-negative opening balance.
func NewBankAccount(number, holder string, balance decimal.Decimal) (*BankAccount, error) {
	holder, holderErr := guard.NullOrWhiteSpace("holder", holder)
	if holderErr == nil {
		holder, holderErr = guard.InvalidLength("holder", holder, 2, 100)
	}

	if err := guard.Collect(
		guard.Err(guard.InvalidFormatRegexp("number", number, accountNumberFormat)),
		holderErr,
		guard.Err(guard.NegativeCmp("balance", balance)),
	); err != nil {
		return nil, err
	}
	return &BankAccount{Number: number, Holder: holder, Balance: balance}, nil
}

// Deposit adds amount, which must be in (0, 1000000].
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if err := validDeposit(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	amount, err := guard.NegativeOrZeroCmp("amount", amount)
	if err != nil {
		return err
	}
	if err := a.covers(amount, fmt.Sprintf("insufficient funds: available %s, requested %s",
		a.Balance.StringFixed(2), amount.StringFixed(2))); err != nil {
		return err
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Transfer moves amount to target. Either both balances change or neither does.
func (a *BankAccount) Transfer(target *BankAccount, amount decimal.Decimal) error {
	target, err := guard.Null("target", target)
	if err != nil {
		return err
	}
	if err := guard.Condition("target", target != a, guard.WithMessage("cannot transfer to the same account")); err != nil {
		return err
	}
	if err := validDeposit(amount); err != nil {
		return err
	}
	if err := a.covers(amount, "insufficient funds for transfer"); err != nil {
		return err
	}

	a.Balance = a.Balance.Sub(amount)
	target.Balance = target.Balance.Add(amount)
	return nil
}

func (a *BankAccount) covers(amount decimal.Decimal, msg string) error {
	return guard.Condition("amount", amount.LessThanOrEqual(a.Balance), guard.WithMessage(msg))
}

func validDeposit(amount decimal.Decimal) error {
	amount, err := guard.NegativeOrZeroCmp("amount", amount)
	if err != nil {
		return err
	}
	_, err = guard.GreaterThanCmp("amount", amount, maxDeposit)
	return err
}
