package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"maestro/internal/middleware"
	"maestro/internal/models"
	"maestro/internal/service"
	"maestro/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stores for exercising the full handler stack without Postgres.

type memUserStore struct {
	users  map[string]models.User
	nextID int64
}

func (m *memUserStore) Create(_ context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = *user
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type memArtistStore struct {
	artists []models.Artist
	nextID  int64
}

func (m *memArtistStore) Create(_ context.Context, artist *models.Artist) error {
	m.nextID++
	artist.ID = m.nextID
	m.artists = append(m.artists, *artist)
	return nil
}

func (m *memArtistStore) List(_ context.Context) ([]models.Artist, error) {
	return m.artists, nil
}

func (m *memArtistStore) GetByID(_ context.Context, id int64) (*models.Artist, error) {
	for _, artist := range m.artists {
		if artist.ID == id {
			return &artist, nil
		}
	}
	return nil, nil
}

type memEventStore struct {
	events  []models.Event
	artists *memArtistStore
	nextID  int64
}

func (m *memEventStore) Create(_ context.Context, event *models.Event) error {
	m.nextID++
	event.ID = m.nextID
	m.events = append(m.events, *event)
	return nil
}

func (m *memEventStore) List(ctx context.Context) ([]models.Event, error) {
	result := make([]models.Event, len(m.events))
	for i, event := range m.events {
		if m.artists != nil {
			event.Artist, _ = m.artists.GetByID(ctx, event.ArtistID)
		}
		result[i] = event
	}
	return result, nil
}

func (m *memEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	for _, event := range m.events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, nil
}

type memBookingStore struct {
	bookings []models.Booking
	events   *memEventStore
	nextID   int64
}

func (m *memBookingStore) Create(_ context.Context, booking *models.Booking) error {
	m.nextID++
	booking.ID = m.nextID
	m.bookings = append(m.bookings, *booking)
	return nil
}

func (m *memBookingStore) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var result []models.Booking
	for _, booking := range m.bookings {
		if booking.UserID != userID {
			continue
		}
		booking.Event, _ = m.events.GetByID(ctx, booking.EventID)
		result = append(result, booking)
	}
	return result, nil
}

// envelope mirrors models.Result with a raw content field for decoding.
type envelope struct {
	Content             json.RawMessage `json:"content"`
	ResponseCode        string          `json:"responseCode"`
	ResponseDescription string          `json:"responseDescription"`
	IsSuccess           bool            `json:"isSuccess"`
}

func setupRouter(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := token.NewManager(token.Config{
		Secret:   "test-secret",
		Issuer:   "maestro",
		Audience: "maestro-api",
		TTLMin:   60,
	})

	users := &memUserStore{users: map[string]models.User{}}
	artists := &memArtistStore{}
	events := &memEventStore{artists: artists}
	bookings := &memBookingStore{events: events}

	services := &service.Services{
		Auth:     service.NewAuthService(users, tokens, nil),
		Artists:  service.NewArtistService(artists),
		Events:   service.NewEventService(events, nil, nil),
		Bookings: service.NewBookingService(bookings, events, nil),
	}

	h := NewHandlers(services)

	r := gin.New()
	r.Use(middleware.Recovery())

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Signup)
			auth.POST("/login", h.Login)
		}

		artistRoutes := api.Group("/artists")
		{
			artistRoutes.GET("", h.ListArtists)
			artistRoutes.GET("/:id", h.GetArtistByID)
			artistRoutes.POST("", h.CreateArtist)
		}

		protected := api.Group("")
		protected.Use(middleware.BearerAuth(tokens))
		{
			eventRoutes := protected.Group("/events")
			{
				eventRoutes.GET("", h.ListEvents)
				eventRoutes.GET("/search", h.SearchEvents)
				eventRoutes.POST("", h.CreateEvent)
			}

			bookingRoutes := protected.Group("/bookings")
			{
				bookingRoutes.POST("", h.CreateBooking)
				bookingRoutes.GET("/:userId", h.ListBookingsByUser)
			}
		}
	}

	r.GET("/health", h.Health)

	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestSignupAndLoginFlow(t *testing.T) {
	r, _ := setupRouter(t)

	w, env := doJSON(t, r, "POST", "/api/auth/signup", models.SignupRequest{Email: "a@x.com", Password: "p"}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, models.CodeSuccess, env.ResponseCode)

	var signup models.SignupResponse
	require.NoError(t, json.Unmarshal(env.Content, &signup))
	assert.Equal(t, int64(1), signup.UserID)
	assert.Equal(t, "a@x.com", signup.Email)

	// Duplicate email
	w, env = doJSON(t, r, "POST", "/api/auth/signup", models.SignupRequest{Email: "a@x.com", Password: "q"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.IsSuccess)
	assert.Equal(t, models.CodeError, env.ResponseCode)

	// Empty password
	w, _ = doJSON(t, r, "POST", "/api/auth/signup", models.SignupRequest{Email: "b@x.com"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env = doJSON(t, r, "POST", "/api/auth/login", models.LoginRequest{Email: "a@x.com", Password: "p"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal(env.Content, &login))
	assert.NotEmpty(t, login.Token)

	w, env = doJSON(t, r, "POST", "/api/auth/login", models.LoginRequest{Email: "a@x.com", Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.IsSuccess)
	assert.Equal(t, "invalid email or password", env.ResponseDescription)
}

func TestArtistEndpoints(t *testing.T) {
	r, _ := setupRouter(t)

	// Empty name is rejected
	w, env := doJSON(t, r, "POST", "/api/artists", models.CreateArtistRequest{Genre: "Rock"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.IsSuccess)

	w, env = doJSON(t, r, "POST", "/api/artists", models.CreateArtistRequest{Name: "Band", Genre: "Rock"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/artists/1", env.ResponseDescription)

	var created models.Artist
	require.NoError(t, json.Unmarshal(env.Content, &created))
	assert.Equal(t, int64(1), created.ID)

	w, env = doJSON(t, r, "GET", "/api/artists", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var artists []models.Artist
	require.NoError(t, json.Unmarshal(env.Content, &artists))
	assert.Len(t, artists, 1)

	w, _ = doJSON(t, r, "GET", "/api/artists/1", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, "GET", "/api/artists/999", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.IsSuccess)
}

func TestEventEndpointsRequireAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w, _ := doJSON(t, r, "GET", "/api/events", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, "POST", "/api/events", models.CreateEventRequest{}, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEventEndpoints(t *testing.T) {
	r, tokens := setupRouter(t)

	bearer, err := tokens.Issue(1, "a@x.com")
	require.NoError(t, err)

	doJSON(t, r, "POST", "/api/artists", models.CreateArtistRequest{Name: "Band", Genre: "Rock"}, "")

	// Past date is rejected
	w, env := doJSON(t, r, "POST", "/api/events", models.CreateEventRequest{
		ArtistID: 1,
		Title:    "Concert",
		Date:     time.Now().UTC().Add(-24 * time.Hour),
	}, bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "event date cannot be in the past", env.ResponseDescription)

	w, env = doJSON(t, r, "POST", "/api/events", models.CreateEventRequest{
		ArtistID: 1,
		Title:    "Concert",
		Venue:    "Hall",
		Date:     time.Now().UTC().Add(24 * time.Hour),
	}, bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/events/1", env.ResponseDescription)

	w, env = doJSON(t, r, "GET", "/api/events", nil, bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(env.Content, &events))
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Artist, "artist should be attached")
	assert.Equal(t, "Band", events[0].Artist.Name)

	// No search index configured in tests
	w, _ = doJSON(t, r, "GET", "/api/events/search?query=jazz", nil, bearer)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBookingEndpoints(t *testing.T) {
	r, tokens := setupRouter(t)

	bearer, err := tokens.Issue(42, "a@x.com")
	require.NoError(t, err)

	// Nonexistent event
	w, env := doJSON(t, r, "POST", "/api/bookings", models.CreateBookingRequest{EventID: 99, UserID: 42}, bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "event not found", env.ResponseDescription)

	doJSON(t, r, "POST", "/api/artists", models.CreateArtistRequest{Name: "Band"}, "")
	w, _ = doJSON(t, r, "POST", "/api/events", models.CreateEventRequest{
		ArtistID: 1,
		Title:    "Concert",
		Date:     time.Now().UTC().Add(24 * time.Hour),
	}, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, "POST", "/api/bookings", models.CreateBookingRequest{EventID: 1, UserID: 42}, bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/bookings/1", env.ResponseDescription)

	w, env = doJSON(t, r, "GET", "/api/bookings/42", nil, bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(env.Content, &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].EventID)
	assert.Equal(t, models.BookingStatusPending, bookings[0].Status)
	require.NotNil(t, bookings[0].Event)
	assert.Equal(t, "Concert", bookings[0].Event.Title)

	// A user with no bookings gets an empty list, not an error
	w, env = doJSON(t, r, "GET", "/api/bookings/7", nil, bearer)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.IsSuccess)

	var empty []models.Booking
	require.NoError(t, json.Unmarshal(env.Content, &empty))
	assert.Empty(t, empty)
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maestro-api")
}

func TestBookingDateIgnoresClientValue(t *testing.T) {
	r, tokens := setupRouter(t)

	bearer, err := tokens.Issue(42, "a@x.com")
	require.NoError(t, err)

	doJSON(t, r, "POST", "/api/artists", models.CreateArtistRequest{Name: "Band"}, "")
	doJSON(t, r, "POST", "/api/events", models.CreateEventRequest{
		ArtistID: 1,
		Title:    "Concert",
		Date:     time.Now().UTC().Add(24 * time.Hour),
	}, bearer)

	clientDate := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Now().UTC()
	w, _ := doJSON(t, r, "POST", "/api/bookings", models.CreateBookingRequest{
		EventID:     1,
		UserID:      42,
		BookingDate: &clientDate,
	}, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	_, env := doJSON(t, r, "GET", "/api/bookings/42", nil, bearer)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(env.Content, &bookings))
	require.Len(t, bookings, 1)
	assert.False(t, bookings[0].BookingDate.Before(before), "booking date must come from the server clock")
}
