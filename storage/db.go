package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

// DB is the GORM-backed Store. It carries the same contract as Memory;
// transactional guarantees come from the underlying database.
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- Users ---

func (s *DB) GetUser(id uint32) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DB) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *DB) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// --- Teams ---

func (s *DB) GetTeams() ([]models.Team, error) {
	var teams []models.Team
	if err := s.db.Order("score desc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *DB) GetTeam(id uint32) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *DB) GetTeamByCode(code string) (*models.Team, error) {
	var team models.Team
	if err := s.db.Where("code = ?", code).First(&team).Error; err != nil {
		return nil, translate(err)
	}
	return &team, nil
}

func (s *DB) CreateTeam(team *models.Team) error {
	if err := s.db.Create(team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (s *DB) UpdateTeam(id uint32, upd TeamUpdate) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := map[string]interface{}{}
	if upd.Name != nil {
		updates["name"] = *upd.Name
	}
	if upd.Captain != nil {
		updates["captain"] = *upd.Captain
	}
	if upd.Email != nil {
		updates["email"] = *upd.Email
	}
	if upd.Phone != nil {
		updates["phone"] = *upd.Phone
	}
	if upd.Score != nil {
		updates["score"] = *upd.Score
	}
	if upd.Logo != nil {
		updates["logo"] = *upd.Logo
	}
	if len(updates) == 0 {
		return &team, nil
	}

	if err := s.db.Model(&team).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// --- Challenges ---

func (s *DB) GetChallenges() ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := s.db.Order("id asc").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (s *DB) GetChallenge(id uint32) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := s.db.First(&challenge, id).Error; err != nil {
		return nil, translate(err)
	}
	return &challenge, nil
}

func (s *DB) CreateChallenge(challenge *models.Challenge) error {
	return s.db.Create(challenge).Error
}

// --- Photos ---

func (s *DB) GetPhotos() ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.db.Order("created_at desc, id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *DB) GetPhotosByTeam(teamID uint32) ([]models.Photo, error) {
	var photos []models.Photo
	if err := s.db.Where("team_id = ?", teamID).Order("created_at desc, id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *DB) CreatePhoto(photo *models.Photo) error {
	if photo.Status == "" {
		photo.Status = models.PhotoStatusPending
	}
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	return s.db.Create(photo).Error
}

func (s *DB) UpdatePhotoStatus(id uint32, status models.PhotoStatus, notes *string) (*models.Photo, error) {
	var photo models.Photo
	if err := s.db.First(&photo, id).Error; err != nil {
		return nil, translate(err)
	}

	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}
	if err := s.db.Model(&photo).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// --- Facebook albums ---

func (s *DB) GetFacebookAlbums() ([]models.FacebookAlbum, error) {
	var albums []models.FacebookAlbum
	if err := s.db.Order("created_at desc, id desc").Find(&albums).Error; err != nil {
		return nil, err
	}
	return albums, nil
}

func (s *DB) GetFacebookAlbum(id uint32) (*models.FacebookAlbum, error) {
	var album models.FacebookAlbum
	if err := s.db.First(&album, id).Error; err != nil {
		return nil, translate(err)
	}
	return &album, nil
}

func (s *DB) CreateFacebookAlbum(album *models.FacebookAlbum) error {
	if album.CreatedAt.IsZero() {
		album.CreatedAt = time.Now()
	}
	return s.db.Create(album).Error
}

// --- Facebook photos ---

func (s *DB) GetFacebookPhotos(albumID uint32) ([]models.FacebookPhoto, error) {
	var photos []models.FacebookPhoto
	if err := s.db.Where("album_id = ?", albumID).Order("created_at desc, id desc").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *DB) CreateFacebookPhoto(photo *models.FacebookPhoto) error {
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	return s.db.Create(photo).Error
}
