package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
)

// Memory is a map-backed Store. It keeps nothing across restarts and is
// used for local runs and tests. Instances are independent; there is no
// package-level state. All methods are safe for concurrent use.
type Memory struct {
	mu sync.Mutex

	users          map[uint32]models.User
	teams          map[uint32]models.Team
	challenges     map[uint32]models.Challenge
	photos         map[uint32]models.Photo
	facebookAlbums map[uint32]models.FacebookAlbum
	facebookPhotos map[uint32]models.FacebookPhoto

	nextUserID          uint32
	nextTeamID          uint32
	nextChallengeID     uint32
	nextPhotoID         uint32
	nextFacebookAlbumID uint32
	nextFacebookPhotoID uint32
}

func NewMemory() *Memory {
	return &Memory{
		users:               make(map[uint32]models.User),
		teams:               make(map[uint32]models.Team),
		challenges:          make(map[uint32]models.Challenge),
		photos:              make(map[uint32]models.Photo),
		facebookAlbums:      make(map[uint32]models.FacebookAlbum),
		facebookPhotos:      make(map[uint32]models.FacebookPhoto),
		nextUserID:          1,
		nextTeamID:          1,
		nextChallengeID:     1,
		nextPhotoID:         1,
		nextFacebookAlbumID: 1,
		nextFacebookPhotoID: 1,
	}
}

// --- Users ---

func (m *Memory) GetUser(id uint32) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateUser(user *models.User) error {
	// The database backend hashes through the GORM hook; here we do it
	// explicitly so both backends store the same thing.
	if err := user.HashPassword(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextUserID
	m.nextUserID++
	m.users[user.ID] = *user
	return nil
}

// --- Teams ---

func (m *Memory) GetTeams() ([]models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	teams := make([]models.Team, 0, len(m.teams))
	for _, team := range m.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Score != teams[j].Score {
			return teams[i].Score > teams[j].Score
		}
		return teams[i].ID < teams[j].ID
	})
	return teams, nil
}

func (m *Memory) GetTeam(id uint32) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	team, ok := m.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &team, nil
}

func (m *Memory) GetTeamByCode(code string) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, team := range m.teams {
		if team.Code == code {
			t := team
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateTeam(team *models.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.teams {
		if existing.Code == team.Code {
			return ErrDuplicateCode
		}
	}

	team.ID = m.nextTeamID
	m.nextTeamID++
	m.teams[team.ID] = *team
	return nil
}

func (m *Memory) UpdateTeam(id uint32, upd TeamUpdate) (*models.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	team, ok := m.teams[id]
	if !ok {
		return nil, ErrNotFound
	}

	if upd.Name != nil {
		team.Name = *upd.Name
	}
	if upd.Captain != nil {
		team.Captain = *upd.Captain
	}
	if upd.Email != nil {
		team.Email = *upd.Email
	}
	if upd.Phone != nil {
		team.Phone = *upd.Phone
	}
	if upd.Score != nil {
		team.Score = *upd.Score
	}
	if upd.Logo != nil {
		team.Logo = *upd.Logo
	}

	m.teams[id] = team
	return &team, nil
}

// --- Challenges ---

func (m *Memory) GetChallenges() ([]models.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	challenges := make([]models.Challenge, 0, len(m.challenges))
	for _, challenge := range m.challenges {
		challenges = append(challenges, challenge)
	}
	sort.Slice(challenges, func(i, j int) bool {
		return challenges[i].ID < challenges[j].ID
	})
	return challenges, nil
}

func (m *Memory) GetChallenge(id uint32) (*models.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	challenge, ok := m.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &challenge, nil
}

func (m *Memory) CreateChallenge(challenge *models.Challenge) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	challenge.ID = m.nextChallengeID
	m.nextChallengeID++
	m.challenges[challenge.ID] = *challenge
	return nil
}

// --- Photos ---

func sortPhotosNewestFirst(photos []models.Photo) {
	sort.Slice(photos, func(i, j int) bool {
		if !photos[i].CreatedAt.Equal(photos[j].CreatedAt) {
			return photos[i].CreatedAt.After(photos[j].CreatedAt)
		}
		return photos[i].ID > photos[j].ID
	})
}

func (m *Memory) GetPhotos() ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	photos := make([]models.Photo, 0, len(m.photos))
	for _, photo := range m.photos {
		photos = append(photos, photo)
	}
	sortPhotosNewestFirst(photos)
	return photos, nil
}

func (m *Memory) GetPhotosByTeam(teamID uint32) ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	photos := make([]models.Photo, 0)
	for _, photo := range m.photos {
		if photo.TeamID == teamID {
			photos = append(photos, photo)
		}
	}
	sortPhotosNewestFirst(photos)
	return photos, nil
}

func (m *Memory) CreatePhoto(photo *models.Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if photo.Status == "" {
		photo.Status = models.PhotoStatusPending
	}
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	photo.ID = m.nextPhotoID
	m.nextPhotoID++
	m.photos[photo.ID] = *photo
	return nil
}

func (m *Memory) UpdatePhotoStatus(id uint32, status models.PhotoStatus, notes *string) (*models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	photo, ok := m.photos[id]
	if !ok {
		return nil, ErrNotFound
	}

	photo.Status = status
	if notes != nil {
		photo.Notes = *notes
	}
	m.photos[id] = photo
	return &photo, nil
}

// --- Facebook albums ---

func (m *Memory) GetFacebookAlbums() ([]models.FacebookAlbum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	albums := make([]models.FacebookAlbum, 0, len(m.facebookAlbums))
	for _, album := range m.facebookAlbums {
		albums = append(albums, album)
	}
	sort.Slice(albums, func(i, j int) bool {
		if !albums[i].CreatedAt.Equal(albums[j].CreatedAt) {
			return albums[i].CreatedAt.After(albums[j].CreatedAt)
		}
		return albums[i].ID > albums[j].ID
	})
	return albums, nil
}

func (m *Memory) GetFacebookAlbum(id uint32) (*models.FacebookAlbum, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	album, ok := m.facebookAlbums[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &album, nil
}

func (m *Memory) CreateFacebookAlbum(album *models.FacebookAlbum) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if album.CreatedAt.IsZero() {
		album.CreatedAt = time.Now()
	}
	album.ID = m.nextFacebookAlbumID
	m.nextFacebookAlbumID++
	m.facebookAlbums[album.ID] = *album
	return nil
}

// --- Facebook photos ---

func (m *Memory) GetFacebookPhotos(albumID uint32) ([]models.FacebookPhoto, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	photos := make([]models.FacebookPhoto, 0)
	for _, photo := range m.facebookPhotos {
		if photo.AlbumID == albumID {
			photos = append(photos, photo)
		}
	}
	sort.Slice(photos, func(i, j int) bool {
		if !photos[i].CreatedAt.Equal(photos[j].CreatedAt) {
			return photos[i].CreatedAt.After(photos[j].CreatedAt)
		}
		return photos[i].ID > photos[j].ID
	})
	return photos, nil
}

func (m *Memory) CreateFacebookPhoto(photo *models.FacebookPhoto) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now()
	}
	photo.ID = m.nextFacebookPhotoID
	m.nextFacebookPhotoID++
	m.facebookPhotos[photo.ID] = *photo
	return nil
}
