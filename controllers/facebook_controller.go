package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/dto"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/services"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/utils"
)

// FacebookController serves the mirrored event albums shown on the
// public gallery page.
type FacebookController struct {
	store    storage.Store
	uploader *services.Uploader
}

func NewFacebookController(store storage.Store, uploader *services.Uploader) *FacebookController {
	return &FacebookController{store: store, uploader: uploader}
}

func (fc *FacebookController) ListAlbums(c *gin.Context) {
	albums, err := fc.store.GetFacebookAlbums()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch Facebook albums")
		return
	}
	c.JSON(http.StatusOK, albums)
}

func (fc *FacebookController) GetAlbum(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	album, err := fc.store.GetFacebookAlbum(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Facebook album not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch Facebook album")
		return
	}
	c.JSON(http.StatusOK, album)
}

func (fc *FacebookController) CreateAlbum(c *gin.Context) {
	var req dto.CreateFacebookAlbumReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid Facebook album data", err)
		return
	}

	album := models.FacebookAlbum{
		Name:        req.Name,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		FacebookURL: req.FacebookURL,
	}
	if err := fc.store.CreateFacebookAlbum(&album); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create Facebook album")
		return
	}
	c.JSON(http.StatusCreated, album)
}

func (fc *FacebookController) ListAlbumPhotos(c *gin.Context) {
	albumID, ok := parseID(c, "id")
	if !ok {
		return
	}

	photos, err := fc.store.GetFacebookPhotos(albumID)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch Facebook album photos")
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (fc *FacebookController) CreatePhoto(c *gin.Context) {
	var req dto.CreateFacebookPhotoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid Facebook photo data", err)
		return
	}

	if _, err := fc.store.GetFacebookAlbum(req.AlbumID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusBadRequest, "Unknown album")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to verify album")
		return
	}

	photo := models.FacebookPhoto{
		AlbumID: req.AlbumID,
		URL:     req.URL,
		Caption: req.Caption,
	}
	if err := fc.store.CreateFacebookPhoto(&photo); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create Facebook photo")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// UploadCover creates an album from a multipart form whose cover image is
// uploaded rather than linked.
func (fc *FacebookController) UploadCover(c *gin.Context) {
	file, err := c.FormFile("coverImage")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "No cover image uploaded")
		return
	}

	name := c.PostForm("name")
	facebookURL := c.PostForm("facebookUrl")
	if name == "" || facebookURL == "" {
		utils.Error(c, http.StatusBadRequest, "Name and Facebook URL are required")
		return
	}

	coverImage, err := fc.uploader.Save(c, file, "cover")
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotImage):
			utils.Error(c, http.StatusBadRequest, "Only image files are allowed")
		case errors.Is(err, services.ErrTooLarge):
			utils.Error(c, http.StatusBadRequest, "File exceeds the 10MB limit")
		default:
			utils.Error(c, http.StatusInternalServerError, "Failed to store cover image")
		}
		return
	}

	album := models.FacebookAlbum{
		Name:        name,
		Description: c.PostForm("description"),
		CoverImage:  coverImage,
		FacebookURL: facebookURL,
	}
	if err := fc.store.CreateFacebookAlbum(&album); err != nil {
		fc.uploader.Remove(coverImage)
		utils.Error(c, http.StatusInternalServerError, "Failed to upload Facebook album cover")
		return
	}
	c.JSON(http.StatusCreated, album)
}
