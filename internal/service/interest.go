package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sportsreader/internal/domain"
)

// ErrInvalidTarget is returned when an interest's target fails the
// exactly-one-of invariant.
var ErrInvalidTarget = errors.New("invalid interest target")

// InterestService manages a subscriber's followed entities. Mutations are
// single-row writes; concurrent toggles on the same interest are
// last-writer-wins.
type InterestService struct {
	store  InterestStore
	logger *slog.Logger
}

func NewInterestService(store InterestStore, logger *slog.Logger) *InterestService {
	return &InterestService{
		store:  store,
		logger: logger.With("component", "interests"),
	}
}

func (s *InterestService) List(ctx context.Context, subscriberID string) ([]domain.Interest, error) {
	interests, err := s.store.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, fmt.Errorf("list interests: %w", err)
	}
	return interests, nil
}

// Follow creates a new interest. The target is validated but not resolved:
// following an entity the catalog no longer knows is allowed and degrades at
// display time.
func (s *InterestService) Follow(ctx context.Context, subscriberID string, target domain.Target) (*domain.Interest, error) {
	if subscriberID == "" {
		return nil, fmt.Errorf("%w: empty subscriber id", ErrInvalidTarget)
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}

	interest := &domain.Interest{
		SubscriberID: subscriberID,
		Target:       target,
	}
	id, err := s.store.Insert(ctx, interest)
	if err != nil {
		return nil, fmt.Errorf("insert interest: %w", err)
	}
	interest.ID = id

	s.logger.Info("interest created",
		"subscriber", subscriberID,
		"entity_type", target.EntityType(),
		"entity_id", domain.PrimaryID(target),
	)
	return interest, nil
}

func (s *InterestService) Unfollow(ctx context.Context, subscriberID string, interestID int64) error {
	if err := s.store.Delete(ctx, subscriberID, interestID); err != nil {
		return fmt.Errorf("delete interest: %w", err)
	}
	s.logger.Info("interest removed", "subscriber", subscriberID, "interest", interestID)
	return nil
}

// ToggleFocus flips the focused flag and returns the new state. The
// interest's existence and target are untouched.
func (s *InterestService) ToggleFocus(ctx context.Context, subscriberID string, interestID int64) (bool, error) {
	focused, err := s.store.ToggleFocus(ctx, subscriberID, interestID)
	if err != nil {
		return false, fmt.Errorf("toggle focus: %w", err)
	}
	return focused, nil
}

func validateTarget(target domain.Target) error {
	switch t := target.(type) {
	case domain.SportTarget:
		if t.SportID <= 0 {
			return fmt.Errorf("%w: sport id", ErrInvalidTarget)
		}
	case domain.LeagueTarget:
		if t.LeagueID <= 0 {
			return fmt.Errorf("%w: league id", ErrInvalidTarget)
		}
	case domain.TeamTarget:
		if t.TeamID <= 0 {
			return fmt.Errorf("%w: team id", ErrInvalidTarget)
		}
	case domain.PersonTarget:
		if t.PersonID <= 0 {
			return fmt.Errorf("%w: person id", ErrInvalidTarget)
		}
	case domain.SchoolTarget:
		if t.SchoolID <= 0 {
			return fmt.Errorf("%w: school id", ErrInvalidTarget)
		}
		if t.LeagueID != nil && *t.LeagueID <= 0 {
			return fmt.Errorf("%w: school league scope", ErrInvalidTarget)
		}
	case domain.CountryTarget:
		if t.CountryID <= 0 {
			return fmt.Errorf("%w: country id", ErrInvalidTarget)
		}
		if t.LeagueID != nil && *t.LeagueID <= 0 {
			return fmt.Errorf("%w: country league scope", ErrInvalidTarget)
		}
	case domain.OlympicsTarget:
		if t.SportID != nil && *t.SportID <= 0 {
			return fmt.Errorf("%w: olympics sport id", ErrInvalidTarget)
		}
		if t.CountryID != nil && *t.CountryID <= 0 {
			return fmt.Errorf("%w: olympics country id", ErrInvalidTarget)
		}
	case nil:
		return fmt.Errorf("%w: no target", ErrInvalidTarget)
	default:
		return fmt.Errorf("%w: unknown target type %T", ErrInvalidTarget, target)
	}
	return nil
}
