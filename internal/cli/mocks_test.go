package cli

import (
	"context"
	"sync"

	"github.com/alnah/go-adobeconnect/internal/adobeconnect"
	"github.com/alnah/go-adobeconnect/internal/config"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{
		URL:   "https://meet.example.com",
		Login: "api@example.com",
	}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock ClientFactory
// ---------------------------------------------------------------------------

type clientCall struct {
	BaseURL  string
	Login    string
	Password string
	Options  int
}

type mockClientFactory struct {
	NewClientErr error

	mu      sync.Mutex
	calls   []clientCall
	mockAPI *mockAPI
}

func (m *mockClientFactory) NewClient(baseURL, login, password string, opts ...adobeconnect.ClientOption) (API, error) {
	m.mu.Lock()
	m.calls = append(m.calls, clientCall{BaseURL: baseURL, Login: login, Password: password, Options: len(opts)})
	m.mu.Unlock()

	if m.NewClientErr != nil {
		return nil, m.NewClientErr
	}
	if m.mockAPI != nil {
		return m.mockAPI, nil
	}
	return &mockAPI{}, nil
}

func (m *mockClientFactory) Calls() []clientCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]clientCall(nil), m.calls...)
}

// ---------------------------------------------------------------------------
// Mock API
// ---------------------------------------------------------------------------

// mockAPI records the name of every method called, in order.
// Each *Func field overrides the default success behavior.
type mockAPI struct {
	CommonInfoFunc      func(ctx context.Context) (adobeconnect.CommonInfo, error)
	LoginFunc           func(ctx context.Context) error
	MeetingsFolderFunc  func(ctx context.Context) (adobeconnect.Sco, error)
	CreateMeetingFunc   func(ctx context.Context, folderID string, req adobeconnect.MeetingRequest) (adobeconnect.Sco, error)
	UpdateMeetingFunc   func(ctx context.Context, scoID string, req adobeconnect.MeetingRequest) error
	DeleteScoFunc       func(ctx context.Context, scoID string) error
	ScoInfoAllFunc      func(ctx context.Context, ids []string, maxParallel int) ([]adobeconnect.Sco, error)
	FindPrincipalFunc   func(ctx context.Context, login string) (adobeconnect.Principal, error)
	CreatePrincipalFunc func(ctx context.Context, req adobeconnect.PrincipalRequest) (adobeconnect.Principal, error)
	SetPermissionFunc   func(ctx context.Context, aclID, principalID string, perm adobeconnect.Permission) error
	MakePublicFunc      func(ctx context.Context, scoID string) error

	mu    sync.Mutex
	calls []string
}

func (m *mockAPI) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *mockAPI) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockAPI) CommonInfo(ctx context.Context) (adobeconnect.CommonInfo, error) {
	m.record("CommonInfo")
	if m.CommonInfoFunc != nil {
		return m.CommonInfoFunc(ctx)
	}
	return adobeconnect.CommonInfo{Version: "12.4.0", Host: "https://meet.example.com", AccountID: "7"}, nil
}

func (m *mockAPI) Login(ctx context.Context) error {
	m.record("Login")
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx)
	}
	return nil
}

func (m *mockAPI) Logout(context.Context) error {
	m.record("Logout")
	return nil
}

func (m *mockAPI) MeetingsFolder(ctx context.Context) (adobeconnect.Sco, error) {
	m.record("MeetingsFolder")
	if m.MeetingsFolderFunc != nil {
		return m.MeetingsFolderFunc(ctx)
	}
	return adobeconnect.Sco{ID: "100", Type: "meetings", Name: "Shared Meetings"}, nil
}

func (m *mockAPI) CreateMeeting(ctx context.Context, folderID string, req adobeconnect.MeetingRequest) (adobeconnect.Sco, error) {
	m.record("CreateMeeting")
	if m.CreateMeetingFunc != nil {
		return m.CreateMeetingFunc(ctx, folderID, req)
	}
	return adobeconnect.Sco{
		ID: "200", FolderID: folderID, Type: "meeting", Name: req.Name,
		URLPath: "/" + req.URLPath + "/", DateBegin: req.Begin, DateEnd: req.End,
	}, nil
}

func (m *mockAPI) UpdateMeeting(ctx context.Context, scoID string, req adobeconnect.MeetingRequest) error {
	m.record("UpdateMeeting")
	if m.UpdateMeetingFunc != nil {
		return m.UpdateMeetingFunc(ctx, scoID, req)
	}
	return nil
}

func (m *mockAPI) DeleteSco(ctx context.Context, scoID string) error {
	m.record("DeleteSco")
	if m.DeleteScoFunc != nil {
		return m.DeleteScoFunc(ctx, scoID)
	}
	return nil
}

func (m *mockAPI) ScoInfoAll(ctx context.Context, ids []string, maxParallel int) ([]adobeconnect.Sco, error) {
	m.record("ScoInfoAll")
	if m.ScoInfoAllFunc != nil {
		return m.ScoInfoAllFunc(ctx, ids, maxParallel)
	}
	scos := make([]adobeconnect.Sco, len(ids))
	for i, id := range ids {
		scos[i] = adobeconnect.Sco{ID: id, Type: "meeting", Name: "Meeting " + id}
	}
	return scos, nil
}

func (m *mockAPI) FindPrincipal(ctx context.Context, login string) (adobeconnect.Principal, error) {
	m.record("FindPrincipal")
	if m.FindPrincipalFunc != nil {
		return m.FindPrincipalFunc(ctx, login)
	}
	return adobeconnect.Principal{ID: "300", Login: login, Name: "Jo Doe", Type: "user"}, nil
}

func (m *mockAPI) CreatePrincipal(ctx context.Context, req adobeconnect.PrincipalRequest) (adobeconnect.Principal, error) {
	m.record("CreatePrincipal")
	if m.CreatePrincipalFunc != nil {
		return m.CreatePrincipalFunc(ctx, req)
	}
	return adobeconnect.Principal{
		ID: "301", Login: req.Login, Name: req.FirstName + " " + req.LastName,
		Email: req.Email, Type: "user",
	}, nil
}

func (m *mockAPI) SetPermission(ctx context.Context, aclID, principalID string, perm adobeconnect.Permission) error {
	m.record("SetPermission")
	if m.SetPermissionFunc != nil {
		return m.SetPermissionFunc(ctx, aclID, principalID, perm)
	}
	return nil
}

func (m *mockAPI) MakePublic(ctx context.Context, scoID string) error {
	m.record("MakePublic")
	if m.MakePublicFunc != nil {
		return m.MakePublicFunc(ctx, scoID)
	}
	return nil
}

// Compile-time interface verification.
var (
	_ ConfigLoader  = (*mockConfigLoader)(nil)
	_ ClientFactory = (*mockClientFactory)(nil)
	_ API           = (*mockAPI)(nil)
)
