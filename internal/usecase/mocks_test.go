package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wekeepgrowing/merchant-gateway/internal/domain/entity"
)

// MockMerchantRepository is a mock implementation of MerchantRepository
type MockMerchantRepository struct {
	mock.Mock
}

func (m *MockMerchantRepository) FindByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) FindByEmail(ctx context.Context, email string) (*entity.Merchant, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockMerchantRepository) Create(ctx context.Context, merchant *entity.Merchant) error {
	args := m.Called(ctx, merchant)
	return args.Error(0)
}

func (m *MockMerchantRepository) UpdateStatus(ctx context.Context, merchant *entity.Merchant, from entity.MerchantStatus) (bool, error) {
	args := m.Called(ctx, merchant, from)
	return args.Bool(0), args.Error(1)
}

// MockAPIKeyRepository is a mock implementation of APIKeyRepository
type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, key *entity.APIKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) FindByHash(ctx context.Context, keyHash string) (*entity.APIKey, error) {
	args := m.Called(ctx, keyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) FindByID(ctx context.Context, id int64) (*entity.APIKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) ListByMerchant(ctx context.Context, merchantID int64, activeOnly bool) ([]*entity.APIKey, error) {
	args := m.Called(ctx, merchantID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByMerchant(ctx context.Context, merchantID int64, limit, offset int) ([]*entity.Payment, int64, error) {
	args := m.Called(ctx, merchantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByPayment(ctx context.Context, paymentID int64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByMerchant(ctx context.Context, merchantID int64) ([]*entity.Transaction, error) {
	args := m.Called(ctx, merchantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

// MockPasswordHasher is a mock implementation of PasswordHasher
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) HashPassword(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) VerifyPassword(plain, digest string) (bool, error) {
	args := m.Called(plain, digest)
	return args.Bool(0), args.Error(1)
}

// MockAPIKeyGenerator is a mock implementation of APIKeyGenerator
type MockAPIKeyGenerator struct {
	mock.Mock
}

func (m *MockAPIKeyGenerator) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAPIKeyGenerator) Digest(plainKey string) (string, error) {
	args := m.Called(plainKey)
	return args.String(0), args.Error(1)
}

func (m *MockAPIKeyGenerator) Verify(plainKey, digest string) bool {
	args := m.Called(plainKey, digest)
	return args.Bool(0)
}

// MockEventPublisher is a mock implementation of PaymentEventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *entity.PaymentEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockTransitionRecorder is a mock implementation of TransitionRecorder
type MockTransitionRecorder struct {
	mock.Mock
}

func (m *MockTransitionRecorder) Record(name, from, to string) {
	m.Called(name, from, to)
}

// fakeTransactor runs fn directly and counts calls
type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
