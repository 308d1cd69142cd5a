package repository

// Repositories groups every repository the use cases depend on
type Repositories struct {
	Merchant    MerchantRepository
	APIKey      APIKeyRepository
	Payment     PaymentRepository
	Transaction TransactionRepository
	Transactor  Transactor
}
