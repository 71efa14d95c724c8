package packs

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yurin-kami/packchann-client/internal/client/gateway"
	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

// ---- fake gateway ----

type fakeGateway struct {
	packsRet []models.Pack
	packsErr error

	detailsRet *models.Pack
	detailsErr error

	checkOutRet *models.Pack
	checkOutErr error

	mailRet *models.Pack
	mailErr error

	cancelRet *models.Envelope
	cancelErr error

	checkInRet *models.Pack
	checkInErr error

	statusRet *models.Pack
	statusErr error

	lastCheckOut models.CheckOutRequest
	lastCancel   models.CheckOutRequest
}

func (f *fakeGateway) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResult, error) {
	return nil, nil
}
func (f *fakeGateway) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	return nil, nil
}
func (f *fakeGateway) Ping(ctx context.Context) error { return nil }
func (f *fakeGateway) UpdateUserInfo(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	return nil, nil
}

func (f *fakeGateway) CheckInPack(ctx context.Context, req models.CheckInRequest) (*models.Pack, error) {
	return f.checkInRet, f.checkInErr
}

func (f *fakeGateway) CheckOutPack(ctx context.Context, req models.CheckOutRequest) (*models.Pack, error) {
	f.lastCheckOut = req
	return f.checkOutRet, f.checkOutErr
}

func (f *fakeGateway) CreateMailPack(ctx context.Context, req models.MailPackRequest) (*models.Pack, error) {
	return f.mailRet, f.mailErr
}

func (f *fakeGateway) CancelMailPack(ctx context.Context, req models.CheckOutRequest) (*models.Envelope, error) {
	f.lastCancel = req
	return f.cancelRet, f.cancelErr
}

func (f *fakeGateway) UpdatePackStatus(ctx context.Context, req models.UpdatePackStatusRequest) (*models.Pack, error) {
	return f.statusRet, f.statusErr
}

func (f *fakeGateway) PackDetails(ctx context.Context, packID int64) (*models.Pack, error) {
	return f.detailsRet, f.detailsErr
}

func (f *fakeGateway) PacksByUser(ctx context.Context, userID int64) ([]models.Pack, error) {
	return f.packsRet, f.packsErr
}

func (f *fakeGateway) AdminUsers(ctx context.Context) ([]models.User, error) { return nil, nil }
func (f *fakeGateway) AdminPacks(ctx context.Context, status string) ([]models.Pack, error) {
	return nil, nil
}
func (f *fakeGateway) AdminUpdatePack(ctx context.Context, req models.AdminUpdatePackRequest) (*models.Pack, error) {
	return nil, nil
}
func (f *fakeGateway) AdminDeleteUser(ctx context.Context, userID int64) error { return nil }
func (f *fakeGateway) SetAccessToken(token string)                             {}
func (f *fakeGateway) OnUnauthorized(fn func())                                {}

// ---- helpers ----

func seeded(t *testing.T, gw *fakeGateway, packs ...models.Pack) *Service {
	t.Helper()
	gw.packsRet = packs
	s := New(gw, logging.Nop())
	_, err := s.FetchUserPacks(context.Background(), 2)
	require.NoError(t, err)
	return s
}

func threePacks() []models.Pack {
	return []models.Pack{
		{PackID: 4, UserID: 2, Status: models.StatusPending},
		{PackID: 5, UserID: 2, Status: models.StatusPending},
		{PackID: 7, UserID: 2, Status: models.StatusInTransit},
	}
}

// ---- TESTS ----

func TestFetchUserPacks_ReplacesCollection(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)
	require.Len(t, s.Packs(), 3)

	gw.packsRet = []models.Pack{{PackID: 9, UserID: 2, Status: models.StatusArrived}}
	got, err := s.FetchUserPacks(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].PackID)
}

func TestFetchUserPacks_EmptyIsValid(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.packsRet = nil
	got, err := s.FetchUserPacks(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, s.Err())
}

func TestFetchUserPacks_FailureKeepsCollection(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.packsErr = &gateway.APIError{Status: http.StatusInternalServerError, Message: "Database error"}
	_, err := s.FetchUserPacks(context.Background(), 2)
	require.Error(t, err)

	assert.Len(t, s.Packs(), 3)
	assert.Equal(t, "Database error", s.Err())
	assert.False(t, s.Loading())
}

func TestFetchPackDetails(t *testing.T) {
	gw := &fakeGateway{detailsRet: &models.Pack{PackID: 5, Status: models.StatusPending, PickupCode: "3-1978"}}
	s := New(gw, logging.Nop())

	pack, err := s.FetchPackDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "3-1978", pack.PickupCode)
	assert.Equal(t, pack, s.Current())
}

func TestFetchPackDetails_AbsentRecord(t *testing.T) {
	gw := &fakeGateway{detailsRet: &models.Pack{PackID: 5}}
	s := New(gw, logging.Nop())

	_, err := s.FetchPackDetails(context.Background(), 5)
	require.NoError(t, err)

	gw.detailsRet = nil
	pack, err := s.FetchPackDetails(context.Background(), 6)
	require.NoError(t, err)
	assert.Nil(t, pack)
	assert.Nil(t, s.Current())
}

func TestCheckOutPack_ReplacesRecordInPlace(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.checkOutRet = &models.Pack{PackID: 5, UserID: 2, Status: models.StatusCheckedOut}
	pack, err := s.CheckOutPack(context.Background(), 5, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCheckedOut, pack.Status)
	assert.Equal(t, models.CheckOutRequest{PackID: 5, UserID: 2}, gw.lastCheckOut)

	got := s.Packs()
	require.Len(t, got, 3)
	// index preserved, status taken from the server record
	assert.Equal(t, int64(5), got[1].PackID)
	assert.Equal(t, models.StatusCheckedOut, got[1].Status)
}

func TestCheckOutPack_NoLocalRecordNoMutation(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.checkOutRet = &models.Pack{PackID: 99, UserID: 2, Status: models.StatusCheckedOut}
	pack, err := s.CheckOutPack(context.Background(), 99, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(99), pack.PackID)

	assert.Equal(t, threePacks(), s.Packs())
}

func TestCheckOutPack_FailureKeepsCollection(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.checkOutErr = &gateway.APIError{Status: http.StatusNotFound, Message: "No pending pack found for checkout"}
	_, err := s.CheckOutPack(context.Background(), 5, 2)
	require.Error(t, err)

	assert.Equal(t, threePacks(), s.Packs())
	assert.Equal(t, "No pending pack found for checkout", s.Err())
}

func TestCreateMailPack_PrependsNewRecord(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.mailRet = &models.Pack{PackID: 100, UserID: 2, Status: models.StatusInTransit}
	_, err := s.CreateMailPack(context.Background(), models.MailPackRequest{
		ShippingAddress: "Dorm 1",
		Recipient:       "Bob",
		ReceivingAddr:   "Dorm 9",
		ShipperPhone:    "111",
		RecipientPhone:  "222",
	})
	require.NoError(t, err)

	got := s.Packs()
	require.Len(t, got, 4)
	assert.Equal(t, int64(100), got[0].PackID)
}

func TestCreateMailPack_ValidationFailure(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	_, err := s.CreateMailPack(context.Background(), models.MailPackRequest{Recipient: "Bob"})
	require.Error(t, err)
	assert.Len(t, s.Packs(), 3)
	assert.NotEmpty(t, s.Err())
}

func TestCancelMailPack_ForcesCancelledStatus(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	// the response claims the pack shipped; the local override wins
	gw.cancelRet = &models.Envelope{CancelledMailPack: &models.Pack{PackID: 7, Status: models.StatusShipped}}
	env, err := s.CancelMailPack(context.Background(), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, env.CancelledMailPack.Status)

	got := s.Packs()
	assert.Equal(t, models.StatusCancelled, got[2].Status)
	assert.Len(t, got, 3)
}

func TestCancelMailPack_NoLocalRecord(t *testing.T) {
	gw := &fakeGateway{cancelRet: &models.Envelope{}}
	s := seeded(t, gw, threePacks()...)

	_, err := s.CancelMailPack(context.Background(), 404, 2)
	require.NoError(t, err)
	assert.Equal(t, threePacks(), s.Packs())
}

func TestCancelMailPack_FailureKeepsStatus(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.cancelErr = &gateway.APIError{Status: http.StatusNotFound, Message: "pack not found"}
	_, err := s.CancelMailPack(context.Background(), 7, 2)
	require.Error(t, err)

	got := s.Packs()
	assert.Equal(t, models.StatusInTransit, got[2].Status)
	assert.Equal(t, "pack not found", s.Err())
}

func TestUpdatePackStatus_ReplacesLocalRecord(t *testing.T) {
	gw := &fakeGateway{}
	s := seeded(t, gw, threePacks()...)

	gw.statusRet = &models.Pack{PackID: 4, UserID: 2, Status: models.StatusArrived}
	pack, err := s.UpdatePackStatus(context.Background(), 4, models.StatusArrived)
	require.NoError(t, err)
	assert.Equal(t, models.StatusArrived, pack.Status)
	assert.Equal(t, models.StatusArrived, s.Packs()[0].Status)
}

func TestCheckInPack_DoesNotTouchCollection(t *testing.T) {
	gw := &fakeGateway{checkInRet: &models.Pack{PackID: 11, UserID: 3, Status: models.StatusPending}}
	s := seeded(t, gw, threePacks()...)

	pack, err := s.CheckInPack(context.Background(), models.CheckInRequest{PackID: 11, UserID: 3, ShelfCode: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(11), pack.PackID)
	assert.Len(t, s.Packs(), 3)
}

func TestLoadingFlagClearedOnFailure(t *testing.T) {
	gw := &fakeGateway{packsErr: &gateway.APIError{Status: http.StatusInternalServerError, Message: "boom"}}
	s := New(gw, logging.Nop())

	_, err := s.FetchUserPacks(context.Background(), 2)
	require.Error(t, err)
	assert.False(t, s.Loading())
}
