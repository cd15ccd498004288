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

// AuthController issues staff tokens. Team access stays code-based
// (GET /api/teams/code/:code); only the admin surface needs accounts.
type AuthController struct {
	store  storage.Store
	secret []byte
}

func NewAuthController(store storage.Store, secret []byte) *AuthController {
	return &AuthController{store: store, secret: secret}
}

func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid credentials payload", err)
		return
	}

	user, err := ac.store.GetUserByUsername(req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.Error(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := utils.GenerateToken(user, ac.secret)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Register creates an additional staff account; the route itself is
// behind JWT auth, so only an existing admin can add reviewers.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, "Invalid registration data", err)
		return
	}

	if _, err := ac.store.GetUserByUsername(req.Username); err == nil {
		utils.Error(c, http.StatusBadRequest, "Username already taken")
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		utils.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := models.User{Username: req.Username, Password: req.Password}
	if err := ac.store.CreateUser(&user); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}
	c.JSON(http.StatusCreated, user)
}
