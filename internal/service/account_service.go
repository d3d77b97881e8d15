package service

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

type AccountService struct {
	store  domain.Store
	logger *slog.Logger
}

func NewAccountService(store domain.Store, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  store,
		logger: logger,
	}
}

// LedgerOverview is the landing-page payload: every account, the full
// transaction history, and the aggregate balance.
type LedgerOverview struct {
	Accounts     []*domain.Account     `json:"customers"`
	History      []*domain.Transaction `json:"history"`
	TotalBalance decimal.Decimal       `json:"total_balance"`
}

// Overview fetches all accounts and transactions and sums the balances.
// An empty store yields a zero total.
func (s *AccountService) Overview() (*LedgerOverview, error) {
	accounts, err := s.store.Account().ListAccounts()
	if err != nil {
		return nil, err
	}

	history, err := s.store.Transaction().ListTransactions()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}

	return &LedgerOverview{
		Accounts:     accounts,
		History:      history,
		TotalBalance: total,
	}, nil
}

func (s *AccountService) GetAccount(accountID string) (*domain.Account, error) {
	id, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	return s.store.Account().GetAccount(id)
}

// UpdateAccountRequest carries the raw editor form fields. Money values
// arrive as strings and are parsed explicitly; zero is a legitimate
// value, absent or non-numeric input is not.
type UpdateAccountRequest struct {
	Balance        string
	Debt           string
	InvestmentPlan string
	VerifyStatus   string
}

// UpdateAccount overwrites exactly the four editor-controlled fields.
// On any validation failure the stored account is left untouched.
func (s *AccountService) UpdateAccount(accountID string, req *UpdateAccountRequest) (*domain.Account, error) {
	id, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Balance) == "" ||
		strings.TrimSpace(req.Debt) == "" ||
		strings.TrimSpace(req.InvestmentPlan) == "" ||
		strings.TrimSpace(req.VerifyStatus) == "" {
		return nil, errors.ErrMissingFields
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(req.Balance))
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidAmount, "balance must be numeric").WithDetails(err.Error())
	}
	debt, err := decimal.NewFromString(strings.TrimSpace(req.Debt))
	if err != nil {
		return nil, errors.NewAppError(errors.InvalidAmount, "debt must be numeric").WithDetails(err.Error())
	}

	verifyStatus := strings.TrimSpace(req.VerifyStatus)
	if !domain.ValidVerifyStatus(verifyStatus) {
		return nil, errors.NewAppErrorf(errors.InvalidInput, "unknown verify_status %q", verifyStatus)
	}

	account, err := s.store.Account().GetAccount(id)
	if err != nil {
		return nil, err
	}

	upd := domain.AccountUpdate{
		Balance:        balance,
		Debt:           debt,
		InvestmentPlan: strings.TrimSpace(req.InvestmentPlan),
		VerifyStatus:   verifyStatus,
	}
	if err := s.store.Account().UpdateAccountFields(id, upd); err != nil {
		return nil, err
	}

	s.logger.Info("Account updated", "account_id", id, "balance", balance, "verify_status", verifyStatus)

	account.Balance = upd.Balance
	account.Debt = upd.Debt
	account.InvestmentPlan = upd.InvestmentPlan
	account.VerifyStatus = upd.VerifyStatus
	return account, nil
}

// DeleteAccount removes the account. Unknown ids succeed silently and
// the transaction history is never cascaded.
func (s *AccountService) DeleteAccount(accountID string) error {
	id, err := parseAccountID(accountID)
	if err != nil {
		return err
	}

	if err := s.store.Account().DeleteAccount(id); err != nil {
		return err
	}

	s.logger.Info("Account deleted", "account_id", id)
	return nil
}

func parseAccountID(accountID string) (uuid.UUID, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, errors.NewAppError(errors.InvalidInput, "invalid account id").WithDetails(err.Error())
	}
	return id, nil
}
