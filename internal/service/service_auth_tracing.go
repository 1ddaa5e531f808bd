package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const tracerName = "github.com/MKhiriev/go-auth-keeper/internal/service"

// authTracingService opens a span around every call of the wrapped
// AuthService. It uses the global tracer provider.
type authTracingService struct {
	inner  AuthService
	tracer trace.Tracer
}

func NewAuthTracingService() AuthServiceWrapper {
	return &authTracingService{
		tracer: otel.Tracer(tracerName),
	}
}

func (t *authTracingService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	user, err := t.inner.Register(ctx, request)
	if err == nil {
		span.SetAttributes(attribute.Int64("user.id", user.UserID))
	}
	return user, record(span, err)
}

func (t *authTracingService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	result, err := t.inner.Login(ctx, request)
	if err == nil {
		span.SetAttributes(attribute.Int64("user.id", result.User.UserID))
	}
	return result, record(span, err)
}

func (t *authTracingService) Logout(ctx context.Context, userID int64) error {
	ctx, span := t.tracer.Start(ctx, "AuthService.Logout",
		trace.WithAttributes(attribute.Int64("user.id", userID)))
	defer span.End()

	return record(span, t.inner.Logout(ctx, userID))
}

func (t *authTracingService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.Refresh")
	defer span.End()

	pair, err := t.inner.Refresh(ctx, refreshToken)
	return pair, record(span, err)
}

func (t *authTracingService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	ctx, span := t.tracer.Start(ctx, "AuthService.CurrentUser",
		trace.WithAttributes(attribute.Int64("user.id", userID)))
	defer span.End()

	user, err := t.inner.CurrentUser(ctx, userID)
	return user, record(span, err)
}

// ParseAccessToken runs on every authenticated request and is not traced.
func (t *authTracingService) ParseAccessToken(ctx context.Context, accessToken string) (*models.Claims, error) {
	return t.inner.ParseAccessToken(ctx, accessToken)
}

func (t *authTracingService) Wrap(wrapper AuthService) AuthService {
	t.inner = wrapper
	return t
}

func record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
