package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/dto"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/models"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/storage"
	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/utils"
)

type ChallengeController struct {
	store storage.Store
}

func NewChallengeController(store storage.Store) *ChallengeController {
	return &ChallengeController{store: store}
}

func (cc *ChallengeController) List(c *gin.Context) {
	challenges, err := cc.store.GetChallenges()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch challenges")
		return
	}
	c.JSON(http.StatusOK, challenges)
}

func (cc *ChallengeController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	challenge, err := cc.store.GetChallenge(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Challenge not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch challenge")
		return
	}
	c.JSON(http.StatusOK, challenge)
}

func (cc *ChallengeController) Create(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid challenge data", err)
		return
	}
	req.Normalize()

	challenge := models.Challenge{
		Name:        req.Name,
		Description: req.Description,
		CoordsLat:   req.CoordsLat,
		CoordsLng:   req.CoordsLng,
		Type:        models.ChallengeType(req.Type),
	}
	// Points defaults to 10 only when the field is omitted; an explicit
	// zero is kept as-is.
	if req.Points != nil {
		challenge.Points = *req.Points
	} else {
		challenge.Points = 10
	}

	if err := cc.store.CreateChallenge(&challenge); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create challenge")
		return
	}
	c.JSON(http.StatusCreated, challenge)
}
