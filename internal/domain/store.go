package domain

// Store groups the repositories behind a single unit of work. Inside
// WithTransaction the callback receives a Store whose repositories are
// bound to the same database transaction; the callback returning an
// error rolls everything back.
type Store interface {
	Account() AccountRepository
	Transaction() TransactionRepository
	Admin() AdminRepository
	WithTransaction(fn func(Store) error) error
}
