package handler

import (
	"log/slog"
	"net/http"

	"tourguide/internal/delivery/http/response"
	"tourguide/internal/domain/entity"
	domainerrors "tourguide/internal/domain/errors"
	"tourguide/internal/domain/repository"
	"tourguide/internal/errors"
	"tourguide/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TourGuideHandlerParams holds dependencies for TourGuideHandler, injected by Fx.
type TourGuideHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	Users      repository.UserRepository
	Logger     *slog.Logger
}

// TourGuideHandler holds dependencies for the tracking endpoints
type TourGuideHandler struct {
	trackingUC usecase.TrackingUsecase
	users      repository.UserRepository
	logger     *slog.Logger
}

// NewTourGuideHandler is the constructor for TourGuideHandler
func NewTourGuideHandler(params TourGuideHandlerParams) *TourGuideHandler {
	return &TourGuideHandler{
		trackingUC: params.TrackingUC,
		users:      params.Users,
		logger:     params.Logger,
	}
}

// CreateUserRequest represents the request body for registering a user
type CreateUserRequest struct {
	UserName string `json:"userName" validate:"required"`
	Phone    string `json:"phoneNumber"`
	Email    string `json:"emailAddress" validate:"omitempty,email"`
}

// GetLocation returns the user's current location, tracking a fresh one
// if the user has no history yet.
func (h *TourGuideHandler) GetLocation(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	location, err := h.trackingUC.UserLocation(c.Request().Context(), user)
	if err != nil {
		h.logError(c, err)

		return domainerrors.ErrTrackingFailed
	}

	return response.Success(c, http.StatusOK, location, "User location retrieved successfully")
}

// TrackLocation records a fresh position for the user and runs reward
// attribution before responding.
func (h *TourGuideHandler) TrackLocation(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	location, err := h.trackingUC.TrackUserLocation(c.Request().Context(), user)
	if err != nil {
		h.logError(c, err)

		return domainerrors.ErrTrackingFailed
	}

	return response.Success(c, http.StatusOK, location, "User location tracked successfully")
}

// GetNearbyAttractions returns the closest attractions to the user's
// current position, sorted ascending by distance.
func (h *TourGuideHandler) GetNearbyAttractions(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	attractions, err := h.trackingUC.NearbyAttractions(c.Request().Context(), user)
	if err != nil {
		h.logError(c, err)

		return domainerrors.ErrAttractionsUnavailable
	}

	return response.Success(c, http.StatusOK, attractions, "Nearby attractions retrieved successfully")
}

// GetRewards returns the user's accumulated rewards.
func (h *TourGuideHandler) GetRewards(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user.Rewards(), "User rewards retrieved successfully")
}

// GetTripDeals quotes trip offers priced against the user's accumulated
// reward points.
func (h *TourGuideHandler) GetTripDeals(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return err
	}

	deals, err := h.trackingUC.TripDeals(c.Request().Context(), user)
	if err != nil {
		h.logError(c, err)

		return domainerrors.ErrTripPricingFailed
	}

	return response.Success(c, http.StatusOK, deals, "Trip deals retrieved successfully")
}

// CreateUser registers a new user in the directory.
func (h *TourGuideHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	user := entity.NewUser(uuid.New(), req.UserName, req.Phone, req.Email)
	if err := h.users.Create(c.Request().Context(), user); err != nil {
		h.logError(c, err)

		return domainerrors.ErrInternalError
	}

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// lookupUser resolves the userName query parameter to a user entity.
// Failures surface as domain errors so the central error middleware can
// map them; a handler must never proceed with a nil user.
func (h *TourGuideHandler) lookupUser(c echo.Context) (*entity.User, error) {
	userName := c.QueryParam("userName")
	if userName == "" {
		return nil, domainerrors.ErrMissingUserName
	}

	user, err := h.users.FindByName(c.Request().Context(), userName)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("no user named '" + userName + "' is registered")
		}
		h.logError(c, err)

		return nil, domainerrors.ErrInternalError
	}

	return user, nil
}

func (h *TourGuideHandler) logError(c echo.Context, err error) {
	h.logger.Error("request failed",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
