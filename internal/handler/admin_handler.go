package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/zssl-sudo/projeto-steam-analitics/internal/config"
	"github.com/zssl-sudo/projeto-steam-analitics/pkg/jwt"
)

// LoginInput defines the structure for admin login.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// RefreshResponse reports the snapshot produced by a forced reload.
type RefreshResponse struct {
	Rows    int    `json:"rows"`
	Source  string `json:"source"`
	YearMin int    `json:"year_min"`
	YearMax int    `json:"year_max"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges the admin password for a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Admin password"
// @Success      200 {object} map[string]string "{"token": "..."}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse "Admin login not configured"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" || config.AppConfig.JWTSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := jwt.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// RefreshDataset godoc
// @Summary      Reload the dataset
// @Description  Forces a dataset reload, rewrites the caches and drops cached aggregate responses.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} RefreshResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/refresh [post]
func RefreshDataset(c *gin.Context) {
	snap := Data.Refresh(c.Request.Context())
	PurgeCache()

	c.JSON(http.StatusOK, RefreshResponse{
		Rows:    len(snap.Games),
		Source:  snap.Source,
		YearMin: snap.YearMin,
		YearMax: snap.YearMax,
	})
}
