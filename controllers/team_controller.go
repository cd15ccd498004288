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

type TeamController struct {
	store storage.Store
}

func NewTeamController(store storage.Store) *TeamController {
	return &TeamController{store: store}
}

// List returns every team, best score first (the leaderboard order).
func (tc *TeamController) List(c *gin.Context) {
	teams, err := tc.store.GetTeams()
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch teams")
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetByCode resolves a team from its access code, the credential a team
// enters on the login screen.
func (tc *TeamController) GetByCode(c *gin.Context) {
	code := c.Param("code")

	team, err := tc.store.GetTeamByCode(code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (tc *TeamController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := tc.store.GetTeam(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch team")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (tc *TeamController) Create(c *gin.Context) {
	var req dto.CreateTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid team data", err)
		return
	}
	req.Normalize()

	team := models.Team{
		Name:    req.Name,
		Code:    req.Code,
		Captain: req.Captain,
		Email:   req.Email,
		Phone:   req.Phone,
		Logo:    req.Logo,
	}
	if req.Score != nil {
		team.Score = *req.Score
	}

	if err := tc.store.CreateTeam(&team); err != nil {
		if errors.Is(err, storage.ErrDuplicateCode) {
			utils.Error(c, http.StatusBadRequest, "Team code already exists")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to create team")
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateScore sets a team's score outright. Scoring stays a manual admin
// action; approving a photo does not credit points by itself.
func (tc *TeamController) UpdateScore(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateScoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Score must be a number")
		return
	}

	team, err := tc.store.UpdateTeam(id, storage.TeamUpdate{Score: req.Score})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusNotFound, "Team not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to update team score")
		return
	}
	c.JSON(http.StatusOK, team)
}
