package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurin-kami/packchann-client/internal/client/config"
	"github.com/yurin-kami/packchann-client/internal/client/guard"
	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/client/packs"
	"github.com/yurin-kami/packchann-client/internal/client/session"
	"github.com/yurin-kami/packchann-client/internal/client/storage"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

type fakeGateway struct {
	token string

	loginReq    *models.LoginRequest
	loginRes    *models.AuthResult
	loginErr    error
	checkoutReq *models.CheckOutRequest
	checkoutRes *models.Pack
	detailRes   *models.Pack
	packsRes    []models.Pack
	users       []models.User
	deletedUser int64
}

func (f *fakeGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	f.loginReq = &req
	return f.loginRes, f.loginErr
}

func (f *fakeGateway) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	return f.loginRes, f.loginErr
}

func (f *fakeGateway) Ping(ctx context.Context) error { return nil }

func (f *fakeGateway) UpdateUserInfo(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	return &models.User{UserID: req.UserID, UserName: req.UserName, Role: models.RoleUser}, nil
}

func (f *fakeGateway) CheckInPack(ctx context.Context, req models.CheckInRequest) (*models.Pack, error) {
	return &models.Pack{PackID: req.PackID, UserID: req.UserID, Status: models.StatusArrived, PickupCode: "12-3456"}, nil
}

func (f *fakeGateway) CheckOutPack(ctx context.Context, req models.CheckOutRequest) (*models.Pack, error) {
	f.checkoutReq = &req
	return f.checkoutRes, nil
}

func (f *fakeGateway) CreateMailPack(ctx context.Context, req models.MailPackRequest) (*models.Pack, error) {
	return &models.Pack{PackID: 900, Status: models.StatusInTransit}, nil
}

func (f *fakeGateway) CancelMailPack(ctx context.Context, req models.CheckOutRequest) (*models.Envelope, error) {
	return &models.Envelope{Message: "cancel success"}, nil
}

func (f *fakeGateway) UpdatePackStatus(ctx context.Context, req models.UpdatePackStatusRequest) (*models.Pack, error) {
	return &models.Pack{PackID: req.PackID, Status: req.Status}, nil
}

func (f *fakeGateway) PackDetails(ctx context.Context, packID int64) (*models.Pack, error) {
	return f.detailRes, nil
}

func (f *fakeGateway) PacksByUser(ctx context.Context, userID int64) ([]models.Pack, error) {
	return f.packsRes, nil
}

func (f *fakeGateway) AdminUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func (f *fakeGateway) AdminPacks(ctx context.Context, status string) ([]models.Pack, error) {
	return f.packsRes, nil
}

func (f *fakeGateway) AdminUpdatePack(ctx context.Context, req models.AdminUpdatePackRequest) (*models.Pack, error) {
	return &models.Pack{PackID: req.PackID}, nil
}

func (f *fakeGateway) AdminDeleteUser(ctx context.Context, userID int64) error {
	f.deletedUser = userID
	return nil
}

func (f *fakeGateway) SetAccessToken(token string) { f.token = token }
func (f *fakeGateway) OnUnauthorized(fn func())    {}

// newTestApp builds an App over a fake gateway and an in-memory store.
func newTestApp(t *testing.T, gw *fakeGateway) *App {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	log := logging.Nop()
	store := storage.NewMemoryStore()
	sess := session.New(gw, store, log)
	pk := packs.New(gw, log)
	home, _ := guard.Lookup(guard.RouteHome)

	return &App{
		config:  cfg,
		log:     log,
		store:   store,
		gw:      gw,
		session: sess,
		packs:   pk,
		route:   home,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput replaces the interactive input seams with canned answers.
func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()

	origText := getSimpleText
	origPass := getPassword
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})

	i := 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if i >= len(texts) {
			return "", fmt.Errorf("unexpected prompt %d", i)
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(io.Writer) (string, error) {
		return password, nil
	}
}

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func loginAs(t *testing.T, a *App, gw *fakeGateway, role models.Role) {
	t.Helper()

	gw.loginRes = &models.AuthResult{
		User:        &models.User{UserID: 11, UserName: "kami", StudentID: "20230001", Role: role},
		AccessToken: "token-abc",
	}
	stubInput(t, []string{"20230001"}, "pw")
	require.NoError(t, a.Login(context.Background()))
}

func TestAppLogin_EstablishesSessionAndRoute(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)

	loginAs(t, a, gw, models.RoleUser)

	assert.True(t, a.isLoggedIn())
	assert.False(t, a.isAdmin())
	assert.Equal(t, "token-abc", gw.token)
	require.NotNil(t, gw.loginReq)
	assert.Equal(t, "20230001", gw.loginReq.StudentID)
	assert.Equal(t, guard.RouteUserDashboard, a.route.Name)
}

func TestAppLogin_AdminLandsOnAdminDashboard(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)

	loginAs(t, a, gw, models.RoleAdmin)

	assert.True(t, a.isAdmin())
	assert.Equal(t, guard.RouteAdminDashboard, a.route.Name)
}

func TestAppLogout_ReturnsToLoginRoute(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, guard.RouteLogin, a.route.Name)
	assert.Equal(t, "", gw.token)
}

func TestAppCheckout_SendsOwnPackIDs(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{checkoutRes: &models.Pack{PackID: 42, Status: models.StatusCheckedOut}}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.Checkout(context.Background(), []string{"42"}))

	require.NotNil(t, gw.checkoutReq)
	assert.Equal(t, int64(42), gw.checkoutReq.PackID)
	assert.Equal(t, int64(11), gw.checkoutReq.UserID)
}

func TestAppCheckout_BadIDPrintsUsage(t *testing.T) {
	lines := capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.Checkout(context.Background(), []string{"not-a-number"}))

	assert.Nil(t, gw.checkoutReq)
	assert.Contains(t, strings.Join(*lines, ""), "Usage: checkout")
}

func TestAppShowPack_AbsentRecord(t *testing.T) {
	lines := capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.ShowPack(context.Background(), []string{"404"}))

	assert.Contains(t, strings.Join(*lines, ""), "<none>")
}

func TestAppShowPack_PickupDetails(t *testing.T) {
	lines := capturePrintln(t)
	gw := &fakeGateway{detailRes: &models.Pack{
		PackID:     42,
		UserID:     11,
		Status:     models.StatusArrived,
		PickupCode: "12-3456",
		ShelfCode:  12,
	}}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.ShowPack(context.Background(), []string{"42"}))

	out := strings.Join(*lines, "")
	assert.Contains(t, out, "#42")
	assert.Contains(t, out, "pickup code: 12-3456")
}

func TestAppAdminCommands_RejectedForUser(t *testing.T) {
	lines := capturePrintln(t)
	gw := &fakeGateway{users: []models.User{{UserID: 1}}}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.Users(context.Background()))
	require.NoError(t, a.SetStatus(context.Background(), []string{"5", "arrived"}))

	assert.Contains(t, strings.Join(*lines, ""), "Admin only.")
}

func TestAppDeleteUser_ConfirmMismatchAborts(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleAdmin)

	stubInput(t, []string{"999"}, "")
	require.NoError(t, a.DeleteUser(context.Background(), []string{"7"}))

	assert.Equal(t, int64(0), gw.deletedUser)
}

func TestAppDeleteUser_Confirmed(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleAdmin)

	stubInput(t, []string{"7"}, "")
	require.NoError(t, a.DeleteUser(context.Background(), []string{"7"}))

	assert.Equal(t, int64(7), gw.deletedUser)
}

func TestAppOpen_RedirectsAnonymousToLogin(t *testing.T) {
	lines := capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)

	require.NoError(t, a.Open(context.Background(), []string{"user-packs"}))

	assert.Equal(t, guard.RouteLogin, a.route.Name)
	assert.Contains(t, strings.Join(*lines, ""), "Redirected to login")
}

func TestAppOpen_AllowsMatchingRole(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleUser)

	require.NoError(t, a.Open(context.Background(), []string{"user-packs"}))

	assert.Equal(t, guard.RouteUserPacks, a.route.Name)
}

func TestAppOpen_ByPath(t *testing.T) {
	capturePrintln(t)
	gw := &fakeGateway{}
	a := newTestApp(t, gw)
	loginAs(t, a, gw, models.RoleAdmin)

	require.NoError(t, a.Open(context.Background(), []string{"/admin/packs"}))

	assert.Equal(t, guard.RouteAdminPacks, a.route.Name)
}
