package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/repositories"
)

type PlayerService interface {
	AddPlayer(ctx context.Context, player *models.Player) error
	GetPlayer(ctx context.Context, id int) (*models.Player, error)
	// RecordParticipation registers a player lining out in a match.
	RecordParticipation(ctx context.Context, participation *models.PlayerParticipation) error
	MatchLineout(ctx context.Context, matchID int) ([]*models.PlayerParticipation, error)
}

type playerService struct {
	db         *sql.DB
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewPlayerService(db *sql.DB, playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) PlayerService {
	return &playerService{db: db, playerRepo: playerRepo, matchRepo: matchRepo}
}

func (s *playerService) AddPlayer(ctx context.Context, player *models.Player) error {
	if player.Name == "" {
		return fmt.Errorf("%w: player name is required", ErrValidationFailed)
	}
	return s.playerRepo.Create(ctx, nil, player)
}

func (s *playerService) GetPlayer(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: player %d", ErrPlayerNotFound, id)
		}
		return nil, err
	}
	return player, nil
}

func (s *playerService) RecordParticipation(ctx context.Context, participation *models.PlayerParticipation) error {
	match, err := s.matchRepo.GetByID(ctx, nil, participation.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return fmt.Errorf("%w: match %d", ErrMatchNotFound, participation.MatchID)
		}
		return err
	}

	if _, err := s.playerRepo.GetByID(ctx, nil, participation.PlayerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return fmt.Errorf("%w: player %d", ErrPlayerNotFound, participation.PlayerID)
		}
		return err
	}

	validTeam := (match.HomeTeamID != nil && *match.HomeTeamID == participation.TeamID) ||
		(match.AwayTeamID != nil && *match.AwayTeamID == participation.TeamID)
	if !validTeam {
		return fmt.Errorf("%w: team %d did not play in match %d",
			ErrValidationFailed, participation.TeamID, participation.MatchID)
	}

	return s.playerRepo.CreateParticipation(ctx, nil, participation)
}

func (s *playerService) MatchLineout(ctx context.Context, matchID int) ([]*models.PlayerParticipation, error) {
	if _, err := s.matchRepo.GetByID(ctx, nil, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: match %d", ErrMatchNotFound, matchID)
		}
		return nil, err
	}
	return s.playerRepo.ListParticipationByMatch(ctx, nil, matchID)
}
