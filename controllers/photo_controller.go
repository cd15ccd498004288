package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/dto"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/services"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/utils"
)

type PhotoController struct {
	store    storage.Store
	uploader *services.Uploader
}

func NewPhotoController(store storage.Store, uploader *services.Uploader) *PhotoController {
	return &PhotoController{store: store, uploader: uploader}
}

func (pc *PhotoController) List(c *gin.Context) {
	photos, err := pc.store.GetPhotos()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

// ListByTeam returns a team's submissions, newest first. A team with no
// submissions gets an empty list, not an error.
func (pc *PhotoController) ListByTeam(c *gin.Context) {
	teamID, ok := parseID(c, "id")
	if !ok {
		return
	}

	photos, err := pc.store.GetPhotosByTeam(teamID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch team photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

// Create persists a photo whose image already lives at a URL; the upload
// flow below is what teams normally use.
func (pc *PhotoController) Create(c *gin.Context) {
	var req dto.CreatePhotoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid photo data", err)
		return
	}

	if !pc.checkReferences(c, req.TeamID, req.ChallengeID) {
		return
	}

	photo := models.Photo{
		TeamID:      req.TeamID,
		ChallengeID: req.ChallengeID,
		PhotoURL:    req.PhotoURL,
		Status:      models.PhotoStatus(req.Status),
		Notes:       req.Notes,
	}
	if err := pc.store.CreatePhoto(&photo); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create photo")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// Upload receives a multipart proof image from a team, stores the file
// under the public upload directory and records the pending submission.
func (pc *PhotoController) Upload(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "No photo uploaded")
		return
	}

	teamIDStr := c.PostForm("teamId")
	challengeIDStr := c.PostForm("challengeId")
	if teamIDStr == "" || challengeIDStr == "" {
		utils.Error(c, http.StatusBadRequest, "Team ID and Challenge ID are required")
		return
	}
	teamID, err1 := strconv.ParseUint(teamIDStr, 10, 32)
	challengeID, err2 := strconv.ParseUint(challengeIDStr, 10, 32)
	if err1 != nil || err2 != nil || teamID == 0 || challengeID == 0 {
		utils.Error(c, http.StatusBadRequest, "Team ID and Challenge ID must be numeric")
		return
	}

	if !pc.checkReferences(c, uint32(teamID), uint32(challengeID)) {
		return
	}

	photoURL, err := pc.uploader.Save(c, file, "photo")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotImage):
			utils.Error(c, http.StatusBadRequest, "Only image files are allowed")
		case errors.Is(err, services.ErrTooLarge):
			utils.Error(c, http.StatusBadRequest, "File exceeds the 10MB limit")
		default:
			utils.Error(c, http.StatusInternalServerError, "Failed to store photo")
		}
		return
	}

	photo := models.Photo{
		TeamID:      uint32(teamID),
		ChallengeID: uint32(challengeID),
		PhotoURL:    photoURL,
		Status:      models.PhotoStatusPending,
		Notes:       c.PostForm("notes"),
	}
	if err := pc.store.CreatePhoto(&photo); err != nil {
		// Best-effort cleanup so the uploads directory does not collect
		// files with no matching row.
		pc.uploader.Remove(photoURL)
		utils.Error(c, http.StatusInternalServerError, "Failed to upload photo")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UpdateStatus is the admin review action: approve, reject (with an
// optional reason in notes) or send back to pending.
func (pc *PhotoController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePhotoStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Status must be 'pending', 'approved', or 'rejected'")
		return
	}

	photo, err := pc.store.UpdatePhotoStatus(id, models.PhotoStatus(req.Status), req.Notes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Photo not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to update photo status")
		return
	}
	c.JSON(http.StatusOK, photo)
}

// checkReferences rejects submissions pointing at teams or challenges
// that do not exist; writes the response itself on failure.
func (pc *PhotoController) checkReferences(c *gin.Context, teamID, challengeID uint32) bool {
	if _, err := pc.store.GetTeam(teamID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusBadRequest, "Unknown team")
		} else {
			utils.Error(c, http.StatusInternalServerError, "Failed to verify team")
		}
		return false
	}
	if _, err := pc.store.GetChallenge(challengeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusBadRequest, "Unknown challenge")
		} else {
			utils.Error(c, http.StatusInternalServerError, "Failed to verify challenge")
		}
		return false
	}
	return true
}
