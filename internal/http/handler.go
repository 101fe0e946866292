package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tala-app/backend/internal/config"
	"github.com/tala-app/backend/internal/domain"
	"github.com/tala-app/backend/internal/observability"
	"github.com/tala-app/backend/internal/search"
	"github.com/tala-app/backend/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	scenarios    *service.ScenarioService
	dialogues    *service.DialogueService
	reviews      *service.ReviewService
	translations *service.TranslationService
	reports      *service.WordReportService
	users        *service.UserService
	wordbook     *service.WordbookService
	search       *search.Service
	audio        *config.AudioConfig
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	scenarios *service.ScenarioService,
	dialogues *service.DialogueService,
	reviews *service.ReviewService,
	translations *service.TranslationService,
	reports *service.WordReportService,
	users *service.UserService,
	wordbook *service.WordbookService,
	searchSvc *search.Service,
	audio *config.AudioConfig,
) *Handler {
	return &Handler{
		scenarios:    scenarios,
		dialogues:    dialogues,
		reviews:      reviews,
		translations: translations,
		reports:      reports,
		users:        users,
		wordbook:     wordbook,
		search:       searchSvc,
		audio:        audio,
	}
}

// --- Authentication ---

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleRegister creates a new account.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			http.Error(w, "username already registered", http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, user)
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

// HandleLogin verifies credentials and issues an access token.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, user, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	})
}

// --- Conversation practice ---

type scenarioRequest struct {
	Level     domain.CEFRLevel `json:"level"`
	Situation string           `json:"situation"`
}

// HandleScenario generates a practice scenario, random or from the
// learner's situation.
func (h *Handler) HandleScenario(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Level.Valid() {
		http.Error(w, "invalid CEFR level", http.StatusBadRequest)
		return
	}

	scenario := h.scenarios.Generate(r.Context(), req.Level, req.Situation)
	writeJSON(w, r, http.StatusOK, scenario)
}

type dialogueResponse struct {
	Dialog         string           `json:"dialog"`
	AudioURL       *string          `json:"audio_url"`
	Level          domain.CEFRLevel `json:"level"`
	KeyPhrases     []string         `json:"key_phrases"`
	GenerationTime float64          `json:"generation_time"`
}

// HandleExampleDialogue returns the example dialogue for a scenario.
func (h *Handler) HandleExampleDialogue(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Level.Valid() {
		http.Error(w, "invalid CEFR level", http.StatusBadRequest)
		return
	}

	dialogue, err := h.dialogues.Get(r.Context(), req.Level, req.Situation)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dialogueResponse{
		Dialog:         dialogue.Dialog,
		Level:          dialogue.Level,
		KeyPhrases:     dialogue.KeyPhrases,
		GenerationTime: dialogue.GenerationTime.Seconds(),
	})
}

type reviewRequest struct {
	Level    domain.CEFRLevel `json:"level"`
	Scenario string           `json:"scenario"`
	Messages []domain.Message `json:"messages"`
}

// HandleReview generates a performance review for a conversation.
func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Level.Valid() {
		http.Error(w, "invalid CEFR level", http.StatusBadRequest)
		return
	}

	review, err := h.reviews.Review(r.Context(), req.Level, req.Scenario, req.Messages)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, review)
}

type translateRequest struct {
	Text           string                   `json:"text"`
	Style          service.TranslationStyle `json:"style"`
	TargetLanguage string                   `json:"target_language"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// HandleTranslate translates learner text into Swedish.
func (h *Handler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	translation, err := h.translations.Translate(r.Context(), req.Text, req.Style, req.TargetLanguage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, translateResponse{Translation: translation})
}

// --- Dictionary and wordbook ---

type wordReportRequest struct {
	SwedishWord    string `json:"swedish_word"`
	WordClass      string `json:"word_class"`
	TargetLanguage string `json:"target_language"`
}

// HandleWordReport generates a structured learning report for one word.
func (h *Handler) HandleWordReport(w http.ResponseWriter, r *http.Request) {
	var req wordReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.SwedishWord) == "" {
		http.Error(w, "swedish_word is required", http.StatusBadRequest)
		return
	}

	report, err := h.reports.Report(r.Context(), req.SwedishWord, req.WordClass, req.TargetLanguage)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

// HandleSearch runs a paginated dictionary search.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	result, err := h.search.Search(r.Context(), search.Query{
		Text:     q.Get("query"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// HandleWordbookList returns the authenticated user's saved words.
func (h *Handler) HandleWordbookList(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entries, err := h.wordbook.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.WordbookEntry{}
	}

	writeJSON(w, r, http.StatusOK, entries)
}

type wordbookAddRequest struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// HandleWordbookAdd saves a word for the authenticated user.
func (h *Handler) HandleWordbookAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req wordbookAddRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Word) == "" {
		http.Error(w, "word is required", http.StatusBadRequest)
		return
	}

	entry, err := h.wordbook.Add(r.Context(), userID, req.Word, req.Definition)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, entry)
}

// HandleWordbookDelete removes one of the authenticated user's entries.
func (h *Handler) HandleWordbookDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.wordbook.Remove(r.Context(), userID, entryID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- Standalone endpoints ---

// HandleAudio serves one cached audio file. The filename must not contain
// path separators.
func (h *Handler) HandleAudio(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		http.Error(w, "invalid filename", http.StatusBadRequest)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, filepath.Join(h.audio.CacheDir, name))
}

// HandleHealth handles health check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": "healthy",
	}); err != nil {
		// Already written status, can't change it, just log.
		return
	}
}

// --- Helpers ---

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID := observability.GetUserID(r.Context())
	if userID == 0 {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(r.Context()).Error("failed to encode response",
			observability.Error(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := observability.FromContext(r.Context())

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, "incorrect username or password", http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "not allowed", http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrEmptyPrompt):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidFormat):
		logger.Error("upstream response unparseable", observability.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, domain.ErrGenerationFailed):
		logger.Error("generation failed", observability.Error(err))
		http.Error(w, "failed to generate a response", http.StatusInternalServerError)
	default:
		logger.Error("request failed", observability.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
