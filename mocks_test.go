package devconnect_test

import (
	"context"
	"database/sql"

	"github.com/goliatone/devconnect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/bun"
)

// MockConfig implements devconnect.Config
type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) GetSigningKey() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetSigningMethod() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetContextKey() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetTokenExpiration() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockConfig) GetTokenLookup() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetAuthScheme() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetIssuer() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockConfig) GetAudience() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func newMockConfig() *MockConfig {
	mockConfig := new(MockConfig)
	mockConfig.On("GetSigningKey").Return("test-signing-key")
	mockConfig.On("GetTokenExpiration").Return(24)
	mockConfig.On("GetIssuer").Return("test-issuer")
	mockConfig.On("GetAudience").Return([]string{"test:audience"})
	return mockConfig
}

// MockUsers mocks the Users repository. Only the methods exercised by the
// tests are implemented; the embedded interface covers the rest.
type MockUsers struct {
	mock.Mock
	devconnect.Users
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*devconnect.User, error) {
	args := m.Called(ctx, email)
	var user *devconnect.User
	if u := args.Get(0); u != nil {
		user = u.(*devconnect.User)
	}
	return user, args.Error(1)
}

func (m *MockUsers) GetByEmailTx(ctx context.Context, tx bun.IDB, email string) (*devconnect.User, error) {
	args := m.Called(ctx, tx, email)
	var user *devconnect.User
	if u := args.Get(0); u != nil {
		user = u.(*devconnect.User)
	}
	return user, args.Error(1)
}

func (m *MockUsers) RegisterTx(ctx context.Context, tx bun.IDB, user *devconnect.User) (*devconnect.User, error) {
	args := m.Called(ctx, tx, user)
	var record *devconnect.User
	if u := args.Get(0); u != nil {
		record = u.(*devconnect.User)
	}
	return record, args.Error(1)
}

func (m *MockUsers) DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

// MockProfiles mocks the Profiles repository
type MockProfiles struct {
	mock.Mock
	devconnect.Profiles
}

func (m *MockProfiles) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

// MockPosts mocks the Posts repository
type MockPosts struct {
	mock.Mock
	devconnect.Posts
}

func (m *MockPosts) DeleteByUserIDTx(ctx context.Context, tx bun.IDB, userID uuid.UUID) error {
	args := m.Called(ctx, tx, userID)
	return args.Error(0)
}

// MockRepositoryManager wires the repository mocks together. RunInTx runs
// the callback with a zero transaction so command handlers can be tested
// without a database.
type MockRepositoryManager struct {
	users    *MockUsers
	profiles *MockProfiles
	posts    *MockPosts
}

func newMockRepositoryManager() *MockRepositoryManager {
	return &MockRepositoryManager{
		users:    &MockUsers{},
		profiles: &MockProfiles{},
		posts:    &MockPosts{},
	}
}

func (m *MockRepositoryManager) Validate() error {
	return nil
}

func (m *MockRepositoryManager) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return f(ctx, bun.Tx{})
}

func (m *MockRepositoryManager) Users() devconnect.Users {
	return m.users
}

func (m *MockRepositoryManager) Profiles() devconnect.Profiles {
	return m.profiles
}

func (m *MockRepositoryManager) Posts() devconnect.Posts {
	return m.posts
}
