//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/iho/gobalance/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockBalanceRepository is a mock of BalanceRepository interface.
type MockBalanceRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBalanceRepositoryMockRecorder
	isgomock struct{}
}

// MockBalanceRepositoryMockRecorder is the mock recorder for MockBalanceRepository.
type MockBalanceRepositoryMockRecorder struct {
	mock *MockBalanceRepository
}

// NewMockBalanceRepository creates a new mock instance.
func NewMockBalanceRepository(ctrl *gomock.Controller) *MockBalanceRepository {
	mock := &MockBalanceRepository{ctrl: ctrl}
	mock.recorder = &MockBalanceRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBalanceRepository) EXPECT() *MockBalanceRepositoryMockRecorder {
	return m.recorder
}

// GetPostingEntries mocks base method.
func (m *MockBalanceRepository) GetPostingEntries(ctx context.Context, query domain.TrialBalanceQuery) ([]*domain.TrialBalanceEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPostingEntries", ctx, query)
	ret0, _ := ret[0].([]*domain.TrialBalanceEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPostingEntries indicates an expected call of GetPostingEntries.
func (mr *MockBalanceRepositoryMockRecorder) GetPostingEntries(ctx, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPostingEntries", reflect.TypeOf((*MockBalanceRepository)(nil).GetPostingEntries), ctx, query)
}

// MockChartRepository is a mock of ChartRepository interface.
type MockChartRepository struct {
	ctrl     *gomock.Controller
	recorder *MockChartRepositoryMockRecorder
	isgomock struct{}
}

// MockChartRepositoryMockRecorder is the mock recorder for MockChartRepository.
type MockChartRepositoryMockRecorder struct {
	mock *MockChartRepository
}

// NewMockChartRepository creates a new mock instance.
func NewMockChartRepository(ctrl *gomock.Controller) *MockChartRepository {
	mock := &MockChartRepository{ctrl: ctrl}
	mock.recorder = &MockChartRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChartRepository) EXPECT() *MockChartRepositoryMockRecorder {
	return m.recorder
}

// LoadChart mocks base method.
func (m *MockChartRepository) LoadChart(ctx context.Context) (*domain.Chart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadChart", ctx)
	ret0, _ := ret[0].(*domain.Chart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadChart indicates an expected call of LoadChart.
func (mr *MockChartRepositoryMockRecorder) LoadChart(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadChart", reflect.TypeOf((*MockChartRepository)(nil).LoadChart), ctx)
}

// LoadSectors mocks base method.
func (m *MockChartRepository) LoadSectors(ctx context.Context) (*domain.SectorTree, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadSectors", ctx)
	ret0, _ := ret[0].(*domain.SectorTree)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadSectors indicates an expected call of LoadSectors.
func (mr *MockChartRepositoryMockRecorder) LoadSectors(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadSectors", reflect.TypeOf((*MockChartRepository)(nil).LoadSectors), ctx)
}

// LoadSubledgerAccounts mocks base method.
func (m *MockChartRepository) LoadSubledgerAccounts(ctx context.Context) (domain.SubledgerMap, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadSubledgerAccounts", ctx)
	ret0, _ := ret[0].(domain.SubledgerMap)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadSubledgerAccounts indicates an expected call of LoadSubledgerAccounts.
func (mr *MockChartRepositoryMockRecorder) LoadSubledgerAccounts(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadSubledgerAccounts", reflect.TypeOf((*MockChartRepository)(nil).LoadSubledgerAccounts), ctx)
}

// MockExchangeRateRepository is a mock of ExchangeRateRepository interface.
type MockExchangeRateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockExchangeRateRepositoryMockRecorder
	isgomock struct{}
}

// MockExchangeRateRepositoryMockRecorder is the mock recorder for MockExchangeRateRepository.
type MockExchangeRateRepositoryMockRecorder struct {
	mock *MockExchangeRateRepository
}

// NewMockExchangeRateRepository creates a new mock instance.
func NewMockExchangeRateRepository(ctrl *gomock.Controller) *MockExchangeRateRepository {
	mock := &MockExchangeRateRepository{ctrl: ctrl}
	mock.recorder = &MockExchangeRateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExchangeRateRepository) EXPECT() *MockExchangeRateRepositoryMockRecorder {
	return m.recorder
}

// GetList mocks base method.
func (m *MockExchangeRateRepository) GetList(ctx context.Context, rateType string, date time.Time) ([]domain.ExchangeRate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetList", ctx, rateType, date)
	ret0, _ := ret[0].([]domain.ExchangeRate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetList indicates an expected call of GetList.
func (mr *MockExchangeRateRepositoryMockRecorder) GetList(ctx, rateType, date any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetList", reflect.TypeOf((*MockExchangeRateRepository)(nil).GetList), ctx, rateType, date)
}

// MockIDGenerator is a mock of IDGenerator interface.
type MockIDGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockIDGeneratorMockRecorder
	isgomock struct{}
}

// MockIDGeneratorMockRecorder is the mock recorder for MockIDGenerator.
type MockIDGeneratorMockRecorder struct {
	mock *MockIDGenerator
}

// NewMockIDGenerator creates a new mock instance.
func NewMockIDGenerator(ctrl *gomock.Controller) *MockIDGenerator {
	mock := &MockIDGenerator{ctrl: ctrl}
	mock.recorder = &MockIDGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDGenerator) EXPECT() *MockIDGeneratorMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockIDGenerator) Generate() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate")
	ret0, _ := ret[0].(string)
	return ret0
}

// Generate indicates an expected call of Generate.
func (mr *MockIDGeneratorMockRecorder) Generate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockIDGenerator)(nil).Generate))
}

// MockCache is a mock of Cache interface.
type MockCache struct {
	ctrl     *gomock.Controller
	recorder *MockCacheMockRecorder
	isgomock struct{}
}

// MockCacheMockRecorder is the mock recorder for MockCache.
type MockCacheMockRecorder struct {
	mock *MockCache
}

// NewMockCache creates a new mock instance.
func NewMockCache(ctrl *gomock.Controller) *MockCache {
	mock := &MockCache{ctrl: ctrl}
	mock.recorder = &MockCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCache) EXPECT() *MockCacheMockRecorder {
	return m.recorder
}

// Get mocks base method.
func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockCacheMockRecorder) Get(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockCache)(nil).Get), ctx, key)
}

// Set mocks base method.
func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, key, value, ttl)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockCacheMockRecorder) Set(ctx, key, value, ttl any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockCache)(nil).Set), ctx, key, value, ttl)
}

// Delete mocks base method.
func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Delete", ctx, key)
	ret0, _ := ret[0].(error)
	return ret0
}

// Delete indicates an expected call of Delete.
func (mr *MockCacheMockRecorder) Delete(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Delete", reflect.TypeOf((*MockCache)(nil).Delete), ctx, key)
}
