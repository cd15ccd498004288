package storage

import (
	"errors"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

// ErrNotFound is returned when a referenced id or code does not exist.
// Callers translate it to a 404; it is never an internal failure.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateCode is returned when a team code is already taken. The code
// is the team's only credential, so uniqueness is enforced by every backend.
var ErrDuplicateCode = errors.New("team code already exists")

// TeamUpdate is a partial team update; nil fields are left untouched.
type TeamUpdate struct {
	Name    *string
	Captain *string
	Email   *string
	Phone   *string
	Score   *int
	Logo    *string
}

// Store is the persistence contract shared by the in-memory and the
// database backends. Every create assigns a new id and fills defaults
// before returning; updates on a missing id return ErrNotFound.
type Store interface {
	// Users
	GetUser(id uint32) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error

	// Teams
	GetTeams() ([]models.Team, error)
	GetTeam(id uint32) (*models.Team, error)
	GetTeamByCode(code string) (*models.Team, error)
	CreateTeam(team *models.Team) error
	UpdateTeam(id uint32, upd TeamUpdate) (*models.Team, error)

	// Challenges
	GetChallenges() ([]models.Challenge, error)
	GetChallenge(id uint32) (*models.Challenge, error)
	CreateChallenge(challenge *models.Challenge) error

	// Photos
	GetPhotos() ([]models.Photo, error)
	GetPhotosByTeam(teamID uint32) ([]models.Photo, error)
	CreatePhoto(photo *models.Photo) error
	UpdatePhotoStatus(id uint32, status models.PhotoStatus, notes *string) (*models.Photo, error)

	// Facebook albums and photos
	GetFacebookAlbums() ([]models.FacebookAlbum, error)
	GetFacebookAlbum(id uint32) (*models.FacebookAlbum, error)
	CreateFacebookAlbum(album *models.FacebookAlbum) error
	GetFacebookPhotos(albumID uint32) ([]models.FacebookPhoto, error)
	CreateFacebookPhoto(photo *models.FacebookPhoto) error
}
