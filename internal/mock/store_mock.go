// GoMock doubles for the interfaces in internal/store/interfaces.go,
// written in mockgen's layout. Running go generate on that package replaces
// this file with mockgen output.

// Package mock holds GoMock doubles for the store and adapter interfaces.
package mock

import (
	context "context"
	reflect "reflect"

	models "github.com/MKhiriev/hola-servers/models"
	gomock "go.uber.org/mock/gomock"
)

// MockPersonaRepository is a mock of PersonaRepository interface.
type MockPersonaRepository struct {
	ctrl     *gomock.Controller
	recorder *MockPersonaRepositoryMockRecorder
	isgomock struct{}
}

// MockPersonaRepositoryMockRecorder is the mock recorder for MockPersonaRepository.
type MockPersonaRepositoryMockRecorder struct {
	mock *MockPersonaRepository
}

// NewMockPersonaRepository creates a new mock instance.
func NewMockPersonaRepository(ctrl *gomock.Controller) *MockPersonaRepository {
	mock := &MockPersonaRepository{ctrl: ctrl}
	mock.recorder = &MockPersonaRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPersonaRepository) EXPECT() *MockPersonaRepositoryMockRecorder {
	return m.recorder
}

// ListPersonas mocks base method.
func (m *MockPersonaRepository) ListPersonas(ctx context.Context, page models.Page) ([]models.Persona, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListPersonas", ctx, page)
	ret0, _ := ret[0].([]models.Persona)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListPersonas indicates an expected call of ListPersonas.
func (mr *MockPersonaRepositoryMockRecorder) ListPersonas(ctx, page any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListPersonas", reflect.TypeOf((*MockPersonaRepository)(nil).ListPersonas), ctx, page)
}

// FindPersonaByRut mocks base method.
func (m *MockPersonaRepository) FindPersonaByRut(ctx context.Context, rut int64) (models.Persona, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindPersonaByRut", ctx, rut)
	ret0, _ := ret[0].(models.Persona)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindPersonaByRut indicates an expected call of FindPersonaByRut.
func (mr *MockPersonaRepositoryMockRecorder) FindPersonaByRut(ctx, rut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindPersonaByRut", reflect.TypeOf((*MockPersonaRepository)(nil).FindPersonaByRut), ctx, rut)
}

// CreatePersona mocks base method.
func (m *MockPersonaRepository) CreatePersona(ctx context.Context, persona models.Persona) (models.Persona, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePersona", ctx, persona)
	ret0, _ := ret[0].(models.Persona)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePersona indicates an expected call of CreatePersona.
func (mr *MockPersonaRepositoryMockRecorder) CreatePersona(ctx, persona any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePersona", reflect.TypeOf((*MockPersonaRepository)(nil).CreatePersona), ctx, persona)
}

// UpdatePersona mocks base method.
func (m *MockPersonaRepository) UpdatePersona(ctx context.Context, rut int64, update models.PersonaUpdate) (models.Persona, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdatePersona", ctx, rut, update)
	ret0, _ := ret[0].(models.Persona)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdatePersona indicates an expected call of UpdatePersona.
func (mr *MockPersonaRepositoryMockRecorder) UpdatePersona(ctx, rut, update any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdatePersona", reflect.TypeOf((*MockPersonaRepository)(nil).UpdatePersona), ctx, rut, update)
}

// DeletePersona mocks base method.
func (m *MockPersonaRepository) DeletePersona(ctx context.Context, rut int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeletePersona", ctx, rut)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeletePersona indicates an expected call of DeletePersona.
func (mr *MockPersonaRepositoryMockRecorder) DeletePersona(ctx, rut any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeletePersona", reflect.TypeOf((*MockPersonaRepository)(nil).DeletePersona), ctx, rut)
}

// SelectOne mocks base method.
func (m *MockPersonaRepository) SelectOne(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SelectOne", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SelectOne indicates an expected call of SelectOne.
func (mr *MockPersonaRepositoryMockRecorder) SelectOne(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SelectOne", reflect.TypeOf((*MockPersonaRepository)(nil).SelectOne), ctx)
}

// MockVersionProbe is a mock of VersionProbe interface.
type MockVersionProbe struct {
	ctrl     *gomock.Controller
	recorder *MockVersionProbeMockRecorder
	isgomock struct{}
}

// MockVersionProbeMockRecorder is the mock recorder for MockVersionProbe.
type MockVersionProbeMockRecorder struct {
	mock *MockVersionProbe
}

// NewMockVersionProbe creates a new mock instance.
func NewMockVersionProbe(ctrl *gomock.Controller) *MockVersionProbe {
	mock := &MockVersionProbe{ctrl: ctrl}
	mock.recorder = &MockVersionProbeMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVersionProbe) EXPECT() *MockVersionProbeMockRecorder {
	return m.recorder
}

// ServerVersion mocks base method.
func (m *MockVersionProbe) ServerVersion(ctx context.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ServerVersion", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ServerVersion indicates an expected call of ServerVersion.
func (mr *MockVersionProbeMockRecorder) ServerVersion(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ServerVersion", reflect.TypeOf((*MockVersionProbe)(nil).ServerVersion), ctx)
}
