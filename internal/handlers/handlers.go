package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"chirp/internal/metrics"
	"chirp/internal/models"
	"chirp/internal/store"
	"chirp/internal/validate"
)

// Handler bundles the HTTP endpoints over the account directory and the
// message store.
type Handler struct {
	accounts *store.AccountStore
	messages *store.MessageStore
	log      zerolog.Logger
}

func New(accounts *store.AccountStore, messages *store.MessageStore, log zerolog.Logger) *Handler {
	return &Handler{accounts: accounts, messages: messages, log: log}
}

// Router returns the REST API routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/messages", h.CreateMessage).Methods(http.MethodPost)
	r.HandleFunc("/messages", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/{message_id}", h.GetMessage).Methods(http.MethodGet)
	r.HandleFunc("/messages/{message_id}", h.UpdateMessage).Methods(http.MethodPatch)
	r.HandleFunc("/messages/{message_id}", h.DeleteMessage).Methods(http.MethodDelete)
	r.HandleFunc("/accounts/{account_id}/messages", h.MessagesByAccount).Methods(http.MethodGet)
	return r
}

// Register creates a new account. Invalid format is 400, a taken username
// is 409.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var a models.Account
	if err := decodeJSON(r.Body, &a); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !validate.Account(a) {
		writeError(w, http.StatusBadRequest, errors.New("invalid account format"))
		return
	}

	created, err := h.accounts.Register(r.Context(), a)
	if errors.Is(err, store.ErrDuplicateUsername) {
		writeError(w, http.StatusConflict, err)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	metrics.RecordAccountRegistered()
	writeJSON(w, http.StatusOK, created)
}

// Login checks the credentials against the directory. Unknown usernames and
// wrong passwords are both 401: the two cases are indistinguishable to the
// client on purpose.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var a models.Account
	if err := decodeJSON(r.Body, &a); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	registered, err := h.accounts.FindByUsername(r.Context(), a.Username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if registered == nil || registered.Password != a.Password {
		writeError(w, http.StatusUnauthorized, errors.New("invalid username or password"))
		return
	}
	writeJSON(w, http.StatusOK, registered)
}

// CreateMessage persists a new message. Bad format and an unknown posting
// account are both client faults, 400.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var m models.Message
	if err := decodeJSON(r.Body, &m); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !validate.Message(m) {
		writeError(w, http.StatusBadRequest, errors.New("invalid message format"))
		return
	}

	created, err := h.messages.Create(r.Context(), m)
	if errors.Is(err, store.ErrUnknownAuthor) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	metrics.RecordMessageCreated()
	writeJSON(w, http.StatusOK, created)
}

// ListMessages always succeeds, with an empty list when nothing has been
// posted.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.messages.FindAll(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// GetMessage returns the message, or 200 with an empty body when the id is
// unknown.
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}
	m, err := h.messages.FindByID(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if m == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// UpdateMessage replaces the text of an existing message and returns the
// count of rows changed, always 1. A missing id is 400, not 200: the client
// asserted the message exists, and that assertion was false.
func (h *Handler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}
	var m models.Message
	if err := decodeJSON(r.Body, &m); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !validate.Message(m) {
		writeError(w, http.StatusBadRequest, errors.New("invalid message format"))
		return
	}

	err := h.messages.UpdateText(r.Context(), id, m.Text)
	if errors.Is(err, store.ErrMessageNotFound) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, 1)
}

// DeleteMessage removes a message. Deleting an id that is already gone is
// not an error: it returns 200 with an empty body, so deletes are
// idempotent. This asymmetry with UpdateMessage is deliberate.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "message_id")
	if !ok {
		return
	}
	n, err := h.messages.DeleteByID(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if n == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// MessagesByAccount always succeeds, with an empty list for unknown
// accounts.
func (h *Handler) MessagesByAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "account_id")
	if !ok {
		return
	}
	msgs, err := h.messages.FindByAuthor(r.Context(), id)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("storage failure")
	writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid id"))
		return 0, false
	}
	return id, true
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
