package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/bamacgabhann/county-competitions/models"
	"github.com/bamacgabhann/county-competitions/repositories"
	"github.com/bamacgabhann/county-competitions/storage"
)

// crestExtensions maps accepted upload content types to the stored
// object's file extension.
var crestExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

type ClubService interface {
	List(ctx context.Context) ([]*models.Club, error)
	Get(ctx context.Context, id int) (*models.Club, error)
	Create(ctx context.Context, club *models.Club) error
	// UploadCrest stores a new crest image for the club and replaces
	// any previous one. Returns the public URL of the stored image.
	UploadCrest(ctx context.Context, clubID int, contentType string, body io.Reader) (string, error)

	ListVenues(ctx context.Context) ([]*models.Venue, error)
	CreateVenue(ctx context.Context, venue *models.Venue) error
	ListReferees(ctx context.Context) ([]*models.Referee, error)
	CreateReferee(ctx context.Context, referee *models.Referee) error
}

type clubService struct {
	db          *sql.DB
	clubRepo    repositories.ClubRepository
	venueRepo   repositories.VenueRepository
	refereeRepo repositories.RefereeRepository
	uploader    storage.FileUploader
	logger      *slog.Logger
}

// NewClubService accepts a nil uploader; crest uploads then return
// ErrCrestStorageDisabled.
func NewClubService(
	db *sql.DB,
	clubRepo repositories.ClubRepository,
	venueRepo repositories.VenueRepository,
	refereeRepo repositories.RefereeRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) ClubService {
	return &clubService{
		db:          db,
		clubRepo:    clubRepo,
		venueRepo:   venueRepo,
		refereeRepo: refereeRepo,
		uploader:    uploader,
		logger:      logger,
	}
}

func (s *clubService) List(ctx context.Context) ([]*models.Club, error) {
	clubs, err := s.clubRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, club := range clubs {
		s.fillCrestURL(club)
	}
	return clubs, nil
}

func (s *clubService) Get(ctx context.Context, id int) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, fmt.Errorf("%w: club %d", ErrClubNotFound, id)
		}
		return nil, err
	}
	s.fillCrestURL(club)
	return club, nil
}

func (s *clubService) Create(ctx context.Context, club *models.Club) error {
	if club.Name == "" {
		return fmt.Errorf("%w: club name is required", ErrValidationFailed)
	}
	return s.clubRepo.Create(ctx, nil, club)
}

func (s *clubService) UploadCrest(ctx context.Context, clubID int, contentType string, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrCrestStorageDisabled
	}

	ext, ok := crestExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, contentType)
	}

	club, err := s.clubRepo.GetByID(ctx, nil, clubID)
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return "", fmt.Errorf("%w: club %d", ErrClubNotFound, clubID)
		}
		return "", err
	}

	key := fmt.Sprintf("crests/club_%d.%s", clubID, ext)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload crest for club %d: %w", clubID, err)
	}

	if club.CrestKey != nil && *club.CrestKey != key {
		// Old crest under a different extension; best-effort cleanup.
		if err := s.uploader.Delete(ctx, *club.CrestKey); err != nil {
			s.logger.Warn("failed to delete previous crest",
				slog.String("key", *club.CrestKey),
				slog.Any("error", err))
		}
	}

	if err := s.clubRepo.UpdateCrestKey(ctx, nil, clubID, &key); err != nil {
		return "", fmt.Errorf("failed to store crest key for club %d: %w", clubID, err)
	}

	return result.PublicURL, nil
}

func (s *clubService) ListVenues(ctx context.Context) ([]*models.Venue, error) {
	return s.venueRepo.List(ctx, nil)
}

func (s *clubService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	if venue.Name == "" {
		return fmt.Errorf("%w: venue name is required", ErrValidationFailed)
	}
	if _, err := s.clubRepo.GetByID(ctx, nil, venue.ClubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return fmt.Errorf("%w: club %d", ErrClubNotFound, venue.ClubID)
		}
		return err
	}
	return s.venueRepo.Create(ctx, nil, venue)
}

func (s *clubService) ListReferees(ctx context.Context) ([]*models.Referee, error) {
	return s.refereeRepo.List(ctx, nil)
}

func (s *clubService) CreateReferee(ctx context.Context, referee *models.Referee) error {
	if referee.Name == "" {
		return fmt.Errorf("%w: referee name is required", ErrValidationFailed)
	}
	if _, err := s.clubRepo.GetByID(ctx, nil, referee.ClubID); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return fmt.Errorf("%w: club %d", ErrClubNotFound, referee.ClubID)
		}
		return err
	}
	return s.refereeRepo.Create(ctx, nil, referee)
}

func (s *clubService) fillCrestURL(club *models.Club) {
	if s.uploader == nil || club.CrestKey == nil {
		return
	}
	url := s.uploader.GetPublicURL(*club.CrestKey)
	club.CrestURL = &url
}
