package lifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-swap-service/swap/internal/errs"
	"github.com/Astemirdum/book-swap-service/swap/internal/model"
	"github.com/Astemirdum/book-swap-service/swap/internal/repository"
)

const maxCancelReason = 500

type Store interface {
	GetBook(ctx context.Context, bookID string) (model.Book, error)
	repository.SwapRepository
}

// Notifier delivers in-app notifications. Delivery problems are its own concern.
type Notifier interface {
	Emit(ctx context.Context, userID string, typ model.NotificationType, title, message, relatedSwapID string)
}

type Service struct {
	log    *zap.Logger
	repo   Store
	notify Notifier

	clearAvailabilityOnComplete bool
	now                         func() time.Time
}

type Option func(*Service)

// WithClearAvailabilityOnComplete makes a completed swap take both books off the market.
func WithClearAvailabilityOnComplete(clear bool) Option {
	return func(s *Service) {
		s.clearAvailabilityOnComplete = clear
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo Store, notify Notifier, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log.Named("lifecycle"),
		repo:   repo,
		notify: notify,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateSwapRequest(ctx context.Context, requesterID, bookRequestedID, bookOfferedID string) (model.SwapRequest, error) {
	if requesterID == "" {
		return model.SwapRequest{}, errs.ErrAuthRequired
	}
	switch {
	case bookRequestedID == "" || bookOfferedID == "":
		return model.SwapRequest{}, errs.Invalid("both the requested and the offered book are required")
	case bookRequestedID == bookOfferedID:
		return model.SwapRequest{}, errs.Invalid("a book cannot be swapped for itself")
	}

	offered, err := s.getBook(ctx, bookOfferedID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	requested, err := s.getBook(ctx, bookRequestedID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	switch {
	case offered.OwnerID != requesterID:
		return model.SwapRequest{}, errs.Invalid("offered book is not yours")
	case requested.OwnerID == requesterID:
		return model.SwapRequest{}, errs.Invalid("you cannot request your own book")
	case !offered.AvailableForSwap:
		return model.SwapRequest{}, errs.Invalid("offered book is not available for swap")
	case !requested.AvailableForSwap:
		return model.SwapRequest{}, errs.Invalid("requested book is not available for swap")
	}

	busy, err := s.repo.HasPendingOffer(ctx, offered.ID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if busy {
		return model.SwapRequest{}, errs.Invalid("offered book already backs a pending request")
	}
	active, err := s.repo.FindActiveRequest(ctx, requesterID, requested.ID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if active {
		return model.SwapRequest{}, errs.Invalid("you already have an open request for this book")
	}

	now := s.now()
	swap := model.SwapRequest{
		ID:              uuid.NewString(),
		RequesterID:     requesterID,
		OwnerID:         requested.OwnerID,
		BookRequestedID: requested.ID,
		BookOfferedID:   offered.ID,
		Status:          model.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	history := model.HistoryPair(swap, model.HistoryRequested, model.HistoryReceivedRequest, now)
	if swap.ID, err = s.repo.InsertSwapRequest(ctx, swap, history); err != nil {
		return model.SwapRequest{}, err
	}
	s.log.Info("swap requested",
		zap.String("swap", swap.ID), zap.String("requester", requesterID), zap.String("owner", swap.OwnerID))

	s.notify.Emit(ctx, swap.OwnerID, model.NotifSwapRequest, "New swap request",
		fmt.Sprintf("You were offered %q for your %q.", offered.Title, requested.Title), swap.ID)
	return swap, nil
}

func (s *Service) HandleSwapRequest(ctx context.Context, swapID, reviewerID string, action model.Action) (model.SwapRequest, error) {
	if reviewerID == "" {
		return model.SwapRequest{}, errs.ErrAuthRequired
	}
	var (
		next                   model.Status
		requesterAct, ownerAct model.HistoryAction
		notifType              model.NotificationType
		title, verb            string
	)
	switch action {
	case model.ActionApprove:
		next, requesterAct, ownerAct = model.StatusApproved, model.HistoryRequestApproved, model.HistoryApproved
		notifType, title, verb = model.NotifSwapApproved, "Swap request approved", "approved"
	case model.ActionDeny:
		next, requesterAct, ownerAct = model.StatusDenied, model.HistoryRequestDenied, model.HistoryDenied
		notifType, title, verb = model.NotifSwapDenied, "Swap request denied", "denied"
	default:
		return model.SwapRequest{}, errs.Invalid(fmt.Sprintf("unknown action %q", action))
	}

	swap, err := s.getSwap(ctx, swapID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if swap.OwnerID != reviewerID {
		return model.SwapRequest{}, errs.Forbidden("only the owner of the requested book can decide")
	}
	swap, err = s.transition(ctx, swap, next, nil, requesterAct, ownerAct)
	if err != nil {
		return model.SwapRequest{}, err
	}

	s.notify.Emit(ctx, swap.RequesterID, notifType, title,
		fmt.Sprintf("Your swap request was %s.", verb), swap.ID)
	return swap, nil
}

func (s *Service) CancelSwapRequest(ctx context.Context, swapID, requesterID, reason string) (model.SwapRequest, error) {
	if requesterID == "" {
		return model.SwapRequest{}, errs.ErrAuthRequired
	}
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) > maxCancelReason {
		return model.SwapRequest{}, errs.Invalid(fmt.Sprintf("cancel reason is longer than %d characters", maxCancelReason))
	}
	var cancelReason *string
	if reason != "" {
		cancelReason = &reason
	}

	swap, err := s.getSwap(ctx, swapID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if swap.RequesterID != requesterID {
		return model.SwapRequest{}, errs.Forbidden("only the requester can cancel")
	}
	swap, err = s.transition(ctx, swap, model.StatusCancelled, cancelReason,
		model.HistoryCancelled, model.HistoryRequestCancelled)
	if err != nil {
		return model.SwapRequest{}, err
	}

	msg := "A swap request for your book was cancelled."
	if cancelReason != nil {
		msg = fmt.Sprintf("A swap request for your book was cancelled: %s", reason)
	}
	s.notify.Emit(ctx, swap.OwnerID, model.NotifSwapCancelled, "Swap request cancelled", msg, swap.ID)
	return swap, nil
}

// CompleteSwap finalizes an approved swap. Either participant may complete it.
func (s *Service) CompleteSwap(ctx context.Context, swapID, actorID string) (model.SwapRequest, error) {
	if actorID == "" {
		return model.SwapRequest{}, errs.ErrAuthRequired
	}
	swap, err := s.getSwap(ctx, swapID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if !swap.IsParticipant(actorID) {
		return model.SwapRequest{}, errs.Forbidden("only swap participants can complete it")
	}
	if !model.CanTransition(swap.Status, model.StatusCompleted) {
		return model.SwapRequest{}, stateError(swap.Status, model.StatusCompleted)
	}

	res, err := s.repo.CompleteSwap(ctx, swap.ID, actorID, s.clearAvailabilityOnComplete)
	if err != nil {
		return model.SwapRequest{}, err
	}
	switch res.Outcome {
	case model.CompleteOK:
	case model.CompleteNotFound:
		return model.SwapRequest{}, errs.NotFound("swap request")
	case model.CompleteForbidden:
		return model.SwapRequest{}, errs.Forbidden("only swap participants can complete it")
	case model.CompleteInvalidState:
		return model.SwapRequest{}, stateError(res.Status, model.StatusCompleted)
	default:
		return model.SwapRequest{}, fmt.Errorf("complete swap: unexpected outcome %q", res.Outcome)
	}

	// the stored timestamp is authoritative
	at := s.now()
	if res.CompletedAt != nil {
		at = res.CompletedAt.UTC()
	}
	swap.Status = model.StatusCompleted
	swap.CompletedAt = &at
	swap.UpdatedAt = at
	s.log.Info("swap completed", zap.String("swap", swap.ID), zap.String("actor", actorID))

	s.notify.Emit(ctx, swap.Counterpart(actorID), model.NotifSwapCompleted, "Swap completed",
		"Your book swap was marked as completed.", swap.ID)
	return swap, nil
}

func (s *Service) GetSwap(ctx context.Context, swapID, actorID string) (model.SwapRequest, error) {
	if actorID == "" {
		return model.SwapRequest{}, errs.ErrAuthRequired
	}
	swap, err := s.getSwap(ctx, swapID)
	if err != nil {
		return model.SwapRequest{}, err
	}
	if !swap.IsParticipant(actorID) {
		return model.SwapRequest{}, errs.Forbidden("not a participant of this swap")
	}
	return swap, nil
}

func (s *Service) ListSwaps(ctx context.Context, actorID string, direction model.Direction, status model.Status) ([]model.SwapRequest, error) {
	if actorID == "" {
		return nil, errs.ErrAuthRequired
	}
	switch direction {
	case "":
		direction = model.DirectionAll
	case model.DirectionIncoming, model.DirectionOutgoing, model.DirectionAll:
	default:
		return nil, errs.Invalid(fmt.Sprintf("unknown direction %q", direction))
	}
	if status != "" && !status.Valid() {
		return nil, errs.Invalid(fmt.Sprintf("unknown status %q", status))
	}
	return s.repo.ListSwaps(ctx, model.SwapFilter{UserID: actorID, Direction: direction, Status: status})
}

func (s *Service) ListHistory(ctx context.Context, actorID string) ([]model.SwapHistory, error) {
	if actorID == "" {
		return nil, errs.ErrAuthRequired
	}
	return s.repo.ListSwapHistory(ctx, actorID)
}

// transition applies a conditional status update. Losing a race to another writer is reported
// as ErrInvalidState with the status that writer left behind.
func (s *Service) transition(
	ctx context.Context,
	swap model.SwapRequest,
	next model.Status,
	cancelReason *string,
	requesterAct, ownerAct model.HistoryAction,
) (model.SwapRequest, error) {
	if !model.CanTransition(swap.Status, next) {
		return model.SwapRequest{}, stateError(swap.Status, next)
	}
	at := s.now()
	applied, err := s.repo.UpdateSwapStatus(ctx, model.StatusUpdate{
		SwapID:       swap.ID,
		Expected:     swap.Status,
		Next:         next,
		At:           at,
		CancelReason: cancelReason,
		History:      model.HistoryPair(swap, requesterAct, ownerAct, at),
	})
	if err != nil {
		return model.SwapRequest{}, err
	}
	if !applied {
		current, err := s.repo.GetSwapRequest(ctx, swap.ID)
		if err != nil {
			return model.SwapRequest{}, err
		}
		s.log.Info("stale transition",
			zap.String("swap", swap.ID), zap.String("want", string(next)), zap.String("status", string(current.Status)))
		return model.SwapRequest{}, stateError(current.Status, next)
	}

	swap.Status = next
	swap.UpdatedAt = at
	switch next {
	case model.StatusApproved:
		swap.ApprovedAt = &at
	case model.StatusDenied:
		swap.DeniedAt = &at
	case model.StatusCancelled:
		swap.CancelledAt = &at
		swap.CancelReason = cancelReason
	}
	s.log.Info("swap transitioned", zap.String("swap", swap.ID), zap.String("status", string(next)))
	return swap, nil
}

func (s *Service) getSwap(ctx context.Context, swapID string) (model.SwapRequest, error) {
	if _, err := uuid.Parse(swapID); err != nil {
		return model.SwapRequest{}, errs.NotFound("swap request")
	}
	return s.repo.GetSwapRequest(ctx, swapID)
}

func (s *Service) getBook(ctx context.Context, bookID string) (model.Book, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return model.Book{}, errs.NotFound("book")
	}
	return s.repo.GetBook(ctx, bookID)
}

func stateError(current, next model.Status) error {
	return errs.InvalidState(fmt.Sprintf("swap is %s and cannot become %s", current, next))
}
