package service

import (
	"github.com/google/uuid"

	"ledger-admin/internal/domain"
	"ledger-admin/internal/errors"
)

// fakeStore is an in-memory domain.Store. WithTransaction snapshots the
// state and restores it when the callback fails, so atomicity checks
// are meaningful.
type fakeStore struct {
	accounts     map[uuid.UUID]*domain.Account
	accountOrder []uuid.UUID
	transactions map[uuid.UUID]*domain.Transaction
	txOrder      []uuid.UUID
	admins       map[uuid.UUID]*domain.Admin
	failAccounts error // forced error for account reads
	failTxCreate error // forced error for transaction inserts
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:     make(map[uuid.UUID]*domain.Account),
		transactions: make(map[uuid.UUID]*domain.Transaction),
		admins:       make(map[uuid.UUID]*domain.Admin),
	}
}

func (f *fakeStore) Account() domain.AccountRepository         { return &fakeAccountRepo{f} }
func (f *fakeStore) Transaction() domain.TransactionRepository { return &fakeTransactionRepo{f} }
func (f *fakeStore) Admin() domain.AdminRepository             { return &fakeAdminRepo{f} }

func (f *fakeStore) WithTransaction(fn func(domain.Store) error) error {
	snapAccounts := make(map[uuid.UUID]*domain.Account, len(f.accounts))
	for id, a := range f.accounts {
		cp := *a
		snapAccounts[id] = &cp
	}
	snapTxs := make(map[uuid.UUID]*domain.Transaction, len(f.transactions))
	for id, t := range f.transactions {
		cp := *t
		snapTxs[id] = &cp
	}
	snapAccountOrder := append([]uuid.UUID(nil), f.accountOrder...)
	snapTxOrder := append([]uuid.UUID(nil), f.txOrder...)

	if err := fn(f); err != nil {
		f.accounts = snapAccounts
		f.transactions = snapTxs
		f.accountOrder = snapAccountOrder
		f.txOrder = snapTxOrder
		return err
	}
	return nil
}

func (f *fakeStore) addAccount(a *domain.Account) {
	cp := *a
	f.accounts[a.ID] = &cp
	f.accountOrder = append(f.accountOrder, a.ID)
}

type fakeAccountRepo struct{ s *fakeStore }

func (r *fakeAccountRepo) CreateAccount(account *domain.Account) error {
	r.s.addAccount(account)
	return nil
}

func (r *fakeAccountRepo) ListAccounts() ([]*domain.Account, error) {
	if r.s.failAccounts != nil {
		return nil, r.s.failAccounts
	}
	out := make([]*domain.Account, 0, len(r.s.accountOrder))
	for _, id := range r.s.accountOrder {
		if a, ok := r.s.accounts[id]; ok {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) GetAccount(id uuid.UUID) (*domain.Account, error) {
	if r.s.failAccounts != nil {
		return nil, r.s.failAccounts
	}
	a, ok := r.s.accounts[id]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAccountRepo) GetAccountForUpdate(id uuid.UUID) (*domain.Account, error) {
	return r.GetAccount(id)
}

func (r *fakeAccountRepo) UpdateAccountFields(id uuid.UUID, upd domain.AccountUpdate) error {
	a, ok := r.s.accounts[id]
	if !ok {
		return errors.ErrAccountNotFound
	}
	a.Balance = upd.Balance
	a.Debt = upd.Debt
	a.InvestmentPlan = upd.InvestmentPlan
	a.VerifyStatus = upd.VerifyStatus
	return nil
}

func (r *fakeAccountRepo) ApplyDeposit(id uuid.UUID, upd domain.DepositUpdate) error {
	a, ok := r.s.accounts[id]
	if !ok {
		return errors.ErrAccountNotFound
	}
	a.Balance = upd.Balance
	a.ActiveDeposit = upd.ActiveDeposit
	a.Debt = upd.Debt
	a.TotalDeposit = upd.TotalDeposit
	return nil
}

func (r *fakeAccountRepo) DeleteAccount(id uuid.UUID) error {
	delete(r.s.accounts, id)
	return nil
}

type fakeTransactionRepo struct{ s *fakeStore }

func (r *fakeTransactionRepo) CreateTransaction(tx *domain.Transaction) error {
	if r.s.failTxCreate != nil {
		return r.s.failTxCreate
	}
	cp := *tx
	r.s.transactions[tx.ID] = &cp
	r.s.txOrder = append(r.s.txOrder, tx.ID)
	return nil
}

func (r *fakeTransactionRepo) GetTransactionByID(id uuid.UUID) (*domain.Transaction, error) {
	t, ok := r.s.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTransactionRepo) ListTransactions() ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, 0, len(r.s.txOrder))
	for _, id := range r.s.txOrder {
		if t, ok := r.s.transactions[id]; ok {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) ListPendingByTypes(types ...string) ([]*domain.Transaction, error) {
	all, _ := r.ListTransactions()
	out := make([]*domain.Transaction, 0)
	for _, t := range all {
		if t.Status != domain.StatusPending {
			continue
		}
		for _, typ := range types {
			if t.Type == typ {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) UpdateTransactionStatus(id uuid.UUID, status string) error {
	t, ok := r.s.transactions[id]
	if !ok {
		return errors.ErrTransactionNotFound
	}
	if t.Status != domain.StatusPending {
		return nil
	}
	t.Status = status
	return nil
}

type fakeAdminRepo struct{ s *fakeStore }

func (r *fakeAdminRepo) CreateAdmin(admin *domain.Admin) error {
	cp := *admin
	r.s.admins[admin.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) GetAdminByID(id uuid.UUID) (*domain.Admin, error) {
	a, ok := r.s.admins[id]
	if !ok {
		return nil, errors.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdminRepo) GetAdminByUsername(username string) (*domain.Admin, error) {
	for _, a := range r.s.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, errors.ErrAdminNotFound
}

func (r *fakeAdminRepo) UpdateAdminPassword(id uuid.UUID, passwordHash string) error {
	a, ok := r.s.admins[id]
	if !ok {
		return errors.ErrAdminNotFound
	}
	a.PasswordHash = passwordHash
	return nil
}
