package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"myhealth/rehab-api/internal/config"
)

// LocaleHandler reports the UI languages and the best one for the caller.
type LocaleHandler struct {
	cfg     config.LocaleConfig
	tags    []string
	matcher language.Matcher
}

type LocalesResponse struct {
	Default    string   `json:"default"`
	Fallback   string   `json:"fallback"`
	Supported  []string `json:"supported"`
	Negotiated string   `json:"negotiated"`
}

// NewLocaleHandler builds the matcher once. The fallback goes first so it wins
// when nothing in Accept-Language matches.
func NewLocaleHandler(cfg config.LocaleConfig) *LocaleHandler {
	tags := []string{cfg.Fallback}
	for _, s := range cfg.Supported {
		if s != cfg.Fallback {
			tags = append(tags, s)
		}
	}
	parsed := make([]language.Tag, 0, len(tags))
	names := make([]string, 0, len(tags))
	for _, s := range tags {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
		names = append(names, s)
	}
	return &LocaleHandler{cfg: cfg, tags: names, matcher: language.NewMatcher(parsed)}
}

func (h *LocaleHandler) GetLocales(c *gin.Context) {
	c.JSON(http.StatusOK, LocalesResponse{
		Default:    h.cfg.Default,
		Fallback:   h.cfg.Fallback,
		Supported:  h.cfg.Supported,
		Negotiated: h.negotiate(c.GetHeader("Accept-Language")),
	})
}

func (h *LocaleHandler) negotiate(acceptLanguage string) string {
	if acceptLanguage == "" || len(h.tags) == 0 {
		return h.cfg.Default
	}
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return h.cfg.Default
	}
	_, index, confidence := h.matcher.Match(wanted...)
	if confidence == language.No {
		return h.cfg.Default
	}
	return h.tags[index]
}
