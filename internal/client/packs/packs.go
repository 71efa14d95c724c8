// Package packs owns the in-memory package collection of the current actor
// and the state-changing lifecycle operations (check-out, mail creation,
// mail cancellation) plus the read operations feeding the presentation
// layer. Mutations are applied only after a successful server response; a
// failed call leaves the collection exactly as it was.
//
// Like the session, the collection is process-wide shared mutable state
// without locking: overlapping operations on the same record are
// last-write-wins.
package packs

import (
	"context"

	"github.com/yurin-kami/packchann-client/internal/client/gateway"
	"github.com/yurin-kami/packchann-client/internal/client/models"
	"github.com/yurin-kami/packchann-client/internal/logging"
)

const (
	fetchFailedText    = "failed to load packages"
	detailsFailedText  = "failed to load package details"
	checkoutFailedText = "checkout failed"
	mailFailedText     = "failed to create mail pack"
	cancelFailedText   = "failed to cancel mail pack"
	checkInFailedText  = "check-in failed"
	statusFailedText   = "status update failed"
)

// Service is the package lifecycle manager. Construct with New; a single
// instance is shared per process.
type Service struct {
	gw  gateway.Gateway
	log logging.Logger

	packs   []models.Pack
	current *models.Pack
	loading bool
	err     string

	observers []func()
}

func New(gw gateway.Gateway, log logging.Logger) *Service {
	return &Service{gw: gw, log: log.With("component", "packs")}
}

// Subscribe registers fn to run after every state change.
func (s *Service) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Service) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Packs returns a copy of the collection in its display order: server order
// for fetched packages, newest mail creations first.
func (s *Service) Packs() []models.Pack {
	out := make([]models.Pack, len(s.packs))
	copy(out, s.packs)
	return out
}

func (s *Service) Current() *models.Pack { return s.current }
func (s *Service) Loading() bool         { return s.loading }
func (s *Service) Err() string           { return s.err }

func (s *Service) begin() {
	s.loading = true
	s.err = ""
	s.notify()
}

func (s *Service) end() {
	s.loading = false
	s.notify()
}

// indexOf returns the position of pack_id in the collection, or -1.
func (s *Service) indexOf(packID int64) int {
	for i := range s.packs {
		if s.packs[i].PackID == packID {
			return i
		}
	}
	return -1
}

// FetchUserPacks replaces the whole local collection with the server's list
// for the owner. An empty result is a valid outcome, not an error.
func (s *Service) FetchUserPacks(ctx context.Context, userID int64) ([]models.Pack, error) {
	s.begin()
	defer s.end()

	packs, err := s.gw.PacksByUser(ctx, userID)
	if err != nil {
		s.err = gateway.ErrorMessage(err, fetchFailedText)
		return nil, err
	}
	s.packs = packs
	return s.Packs(), nil
}

// FetchPackDetails replaces the current detail record, nil when the server
// returned none.
func (s *Service) FetchPackDetails(ctx context.Context, packID int64) (*models.Pack, error) {
	s.begin()
	defer s.end()

	pack, err := s.gw.PackDetails(ctx, packID)
	if err != nil {
		s.err = gateway.ErrorMessage(err, detailsFailedText)
		return nil, err
	}
	s.current = pack
	return pack, nil
}

// CheckOutPack releases a pending package. On success the matching local
// record is replaced in place with the server's record, keeping its index;
// with no matching record the collection is untouched and the record is
// still returned.
func (s *Service) CheckOutPack(ctx context.Context, packID, userID int64) (*models.Pack, error) {
	s.begin()
	defer s.end()

	pack, err := s.gw.CheckOutPack(ctx, models.CheckOutRequest{PackID: packID, UserID: userID})
	if err != nil {
		s.err = gateway.ErrorMessage(err, checkoutFailedText)
		return nil, err
	}
	if pack != nil {
		if i := s.indexOf(packID); i >= 0 {
			s.packs[i] = *pack
		}
	}
	s.log.Info("pack checked out", "pack_id", packID)
	return pack, nil
}

// CreateMailPack creates an outbound mail pack and prepends the returned
// record, keeping the collection newest-first.
func (s *Service) CreateMailPack(ctx context.Context, req models.MailPackRequest) (*models.Pack, error) {
	s.begin()
	defer s.end()

	if err := models.Validate(req); err != nil {
		s.err = err.Error()
		return nil, err
	}

	pack, err := s.gw.CreateMailPack(ctx, req)
	if err != nil {
		s.err = gateway.ErrorMessage(err, mailFailedText)
		return nil, err
	}
	if pack != nil {
		s.packs = append([]models.Pack{*pack}, s.packs...)
	}
	s.log.Info("mail pack created", "pack_id", packIDOf(pack))
	return pack, nil
}

// CancelMailPack cancels an in-transit mail pack. On success the local
// record's status is force-set to cancelled, independent of whatever status
// the response payload carries. This is a deliberate local-authority
// override, not a reconciliation: the server replies under its own
// cancelled_mail_pack key, which the client does not trust for state.
func (s *Service) CancelMailPack(ctx context.Context, packID, userID int64) (*models.Envelope, error) {
	s.begin()
	defer s.end()

	env, err := s.gw.CancelMailPack(ctx, models.CheckOutRequest{PackID: packID, UserID: userID})
	if err != nil {
		s.err = gateway.ErrorMessage(err, cancelFailedText)
		return nil, err
	}
	if i := s.indexOf(packID); i >= 0 {
		s.packs[i].Status = models.StatusCancelled
	}
	s.log.Info("mail pack cancelled", "pack_id", packID)
	return env, nil
}

// CheckInPack shelves an arrived package (operator action). The owner-scoped
// local collection is not mutated; the created record is returned.
func (s *Service) CheckInPack(ctx context.Context, req models.CheckInRequest) (*models.Pack, error) {
	s.begin()
	defer s.end()

	if err := models.Validate(req); err != nil {
		s.err = err.Error()
		return nil, err
	}

	pack, err := s.gw.CheckInPack(ctx, req)
	if err != nil {
		s.err = gateway.ErrorMessage(err, checkInFailedText)
		return nil, err
	}
	s.log.Info("pack checked in", "pack_id", req.PackID, "shelf_code", req.ShelfCode)
	return pack, nil
}

// UpdatePackStatus moves a package to an explicit status. The updated record
// replaces a matching local one in place when present.
func (s *Service) UpdatePackStatus(ctx context.Context, packID int64, status models.PackStatus) (*models.Pack, error) {
	s.begin()
	defer s.end()

	pack, err := s.gw.UpdatePackStatus(ctx, models.UpdatePackStatusRequest{PackID: packID, Status: status})
	if err != nil {
		s.err = gateway.ErrorMessage(err, statusFailedText)
		return nil, err
	}
	if pack != nil {
		if i := s.indexOf(packID); i >= 0 {
			s.packs[i] = *pack
		}
	}
	return pack, nil
}

func packIDOf(p *models.Pack) int64 {
	if p == nil {
		return 0
	}
	return p.PackID
}
