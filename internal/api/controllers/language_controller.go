package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tiew/internal/i18n"
	"tiew/internal/models/request_models"
	"tiew/pkg/middleware"
	"tiew/pkg/utils"
)

type LanguageController struct {
	log *zap.Logger
}

func NewLanguageController(log *zap.Logger) *LanguageController {
	return &LanguageController{log: log}
}

type translationsResponse struct {
	Language     string            `json:"language"`
	Languages    []i18n.Language   `json:"languages"`
	Translations map[string]string `json:"translations"`
}

// GetTranslations godoc
// @Summary Active translation table
// @Description Returns the visitor's language and its translation table
// @Tags Language
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/i18n [get]
func (l *LanguageController) GetTranslations(c *gin.Context) {
	store := middleware.Locale(c)
	utils.RespondSuccess(c, translationsResponse{
		Language:     string(store.Language()),
		Languages:    i18n.Languages,
		Translations: store.Translations(),
	}, "Fetched translations successfully")
}

// ChangeLanguage godoc
// @Summary Change language
// @Description Switches and persists the visitor's language
// @Tags Language
// @Accept json
// @Produce json
// @Param request body request_models.ChangeLanguageRequest true "Language payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/language [put]
func (l *LanguageController) ChangeLanguage(c *gin.Context) {
	var req request_models.ChangeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	store := middleware.Locale(c)
	if err := store.SetLanguage(c.Request.Context(), i18n.Language(req.Language)); err != nil {
		utils.HandleServiceError(c, l.log, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"language": store.Language()}, "Language changed successfully")
}

// SwitchLanguage is the navbar form post. It redirects back to the page it came from.
func (l *LanguageController) SwitchLanguage(c *gin.Context) {
	var req request_models.ChangeLanguageRequest
	if err := c.ShouldBind(&req); err == nil {
		if err := middleware.Locale(c).SetLanguage(c.Request.Context(), i18n.Language(req.Language)); err != nil {
			l.log.Warn("switching language failed", zap.String("language", req.Language), zap.Error(err))
		}
	}

	var form request_models.RedirectForm
	_ = c.ShouldBind(&form)
	c.Redirect(http.StatusSeeOther, localRedirect(form.Redirect))
}

// localRedirect keeps form redirects on this site.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
