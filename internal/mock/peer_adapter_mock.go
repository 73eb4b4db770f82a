// GoMock doubles for the interfaces in internal/adapter/interfaces.go,
// written in mockgen's layout. Running go generate on that package replaces
// this file with mockgen output.

package mock

import (
	context "context"
	json "encoding/json"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPeerAdapter is a mock of PeerAdapter interface.
type MockPeerAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockPeerAdapterMockRecorder
	isgomock struct{}
}

// MockPeerAdapterMockRecorder is the mock recorder for MockPeerAdapter.
type MockPeerAdapterMockRecorder struct {
	mock *MockPeerAdapter
}

// NewMockPeerAdapter creates a new mock instance.
func NewMockPeerAdapter(ctrl *gomock.Controller) *MockPeerAdapter {
	mock := &MockPeerAdapter{ctrl: ctrl}
	mock.recorder = &MockPeerAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPeerAdapter) EXPECT() *MockPeerAdapterMockRecorder {
	return m.recorder
}

// Ping mocks base method.
func (m *MockPeerAdapter) Ping(ctx context.Context) (int, json.RawMessage, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(json.RawMessage)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Ping indicates an expected call of Ping.
func (mr *MockPeerAdapterMockRecorder) Ping(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockPeerAdapter)(nil).Ping), ctx)
}
