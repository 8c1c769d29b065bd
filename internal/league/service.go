package league

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/PredictionLeague_Go/internal/domain"
	"github.com/osse101/PredictionLeague_Go/internal/event"
	"github.com/osse101/PredictionLeague_Go/internal/logger"
	"github.com/osse101/PredictionLeague_Go/internal/repository"
)

// Service defines the league registry
type Service interface {
	CreateLeague(ctx context.Context, name, creatorID string) (*domain.League, error)
	// JoinLeague adds the user to the referenced league. The bool reports
	// whether the user was newly added; joining twice is not an error.
	JoinLeague(ctx context.Context, userID string, ref domain.LeagueRef) (*domain.League, bool, error)
	GetLeague(ctx context.Context, ref domain.LeagueRef) (*domain.League, error)
	ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error)
	// RequireMember returns the active league, or ErrNotLeagueMember when the
	// user may not act in it. Everyone belongs to the default league.
	RequireMember(ctx context.Context, leagueID int64, userID string) (*domain.League, error)
}

type service struct {
	repo       repository.League
	bus        event.Bus
	maxMembers int
}

// NewService creates the league registry. maxMembers applies to newly created
// leagues; zero means unlimited.
func NewService(repo repository.League, bus event.Bus, maxMembers int) Service {
	if maxMembers < 0 {
		maxMembers = DefaultMaxMembers
	}
	return &service{repo: repo, bus: bus, maxMembers: maxMembers}
}

func (s *service) CreateLeague(ctx context.Context, name, creatorID string) (*domain.League, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(creatorID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingCreator)
	}
	display, key, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}

	l := &domain.League{
		Name:       display,
		NameKey:    key,
		CreatorID:  creatorID,
		IsActive:   true,
		MaxMembers: s.maxMembers,
	}
	if err := s.repo.CreateLeague(ctx, l); err != nil {
		if !errors.Is(err, domain.ErrDuplicateName) {
			log.Error(LogErrFailedToCreate, "error", err, "name", display)
		}
		return nil, err
	}

	log.Info(LogMsgLeagueCreated, "league_id", l.ID, "name", l.Name, "creator_id", creatorID)
	s.publish(ctx, event.NewLeagueJoinedEvent(creatorID, l.ID, true))
	return l, nil
}

func (s *service) JoinLeague(ctx context.Context, userID string, ref domain.LeagueRef) (*domain.League, bool, error) {
	log := logger.FromContext(ctx)

	l, err := s.GetLeague(ctx, ref)
	if err != nil {
		return nil, false, err
	}

	added, err := s.repo.AddMember(ctx, l.ID, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrCapacity) && !errors.Is(err, domain.ErrNotFound) {
			log.Error(LogErrFailedToJoin, "error", err, "league_id", l.ID, "user_id", userID)
		}
		return nil, false, err
	}
	if !added {
		log.Debug(LogMsgAlreadyMember, "league_id", l.ID, "user_id", userID)
		return l, false, nil
	}

	l.MemberCount++
	log.Info(LogMsgLeagueJoined, "league_id", l.ID, "user_id", userID)
	s.publish(ctx, event.NewLeagueJoinedEvent(userID, l.ID, false))
	return l, true, nil
}

// GetLeague resolves a reference by id first, then by case-folded name.
// Inactive leagues are reported as not found.
func (s *service) GetLeague(ctx context.Context, ref domain.LeagueRef) (*domain.League, error) {
	var (
		l   *domain.League
		err error
	)
	switch {
	case ref.ID > 0:
		l, err = s.repo.GetLeagueByID(ctx, ref.ID)
	case strings.TrimSpace(ref.Name) != "":
		l, err = s.repo.GetLeagueByNameKey(ctx, NameKey(ref.Name))
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyReference)
	}
	if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, fmt.Errorf("%w: league %d is inactive", domain.ErrLeagueNotFound, l.ID)
	}
	return l, nil
}

func (s *service) ListUserLeagues(ctx context.Context, userID string) ([]domain.League, error) {
	return s.repo.ListUserLeagues(ctx, userID)
}

func (s *service) RequireMember(ctx context.Context, leagueID int64, userID string) (*domain.League, error) {
	if leagueID <= 0 {
		leagueID = domain.DefaultLeagueID
	}
	l, err := s.GetLeague(ctx, domain.LeagueRef{ID: leagueID})
	if err != nil {
		return nil, err
	}
	if l.IsDefault() {
		return l, nil
	}
	member, err := s.repo.IsMember(ctx, leagueID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: league %d", domain.ErrNotLeagueMember, leagueID)
	}
	return l, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogWarnFailedToPublish, "error", err, "type", evt.Type)
	}
}
