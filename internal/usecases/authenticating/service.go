package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/arizon-dashboard-api/internal/config"
	"github.com/vfg2006/arizon-dashboard-api/internal/domain"
	"github.com/vfg2006/arizon-dashboard-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

//go:generate mockgen -source=service.go -destination=mocks/mock_authenticator.go -package=mocks
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service autentica o único operador do painel, configurado por email e hash bcrypt
type Service struct {
	cfg config.Auth
	now func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	cfg.OperatorEmail = handleEmail(cfg.OperatorEmail)

	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", newAuthError(ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if s.cfg.OperatorEmail == "" || s.cfg.OperatorPasswordHash == "" || s.cfg.Secret == "" {
		log.ForContext(ctx).Error("Login: operador sem email, hash ou segredo configurados")
		return "", newAuthError(ErrNotConfigured, "")
	}

	email = handleEmail(email)

	// Email desconhecido e senha errada recebem a mesma resposta
	if email != s.cfg.OperatorEmail {
		return "", newAuthError(ErrInvalidCredentials, "").withEmail(email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("user_email", email).Warn("Login: senha incorreta")
		return "", newAuthError(ErrInvalidCredentials, "").withEmail(email)
	}

	token, err := s.generateJWT(email)
	if err != nil {
		return "", newAuthError(err, "Erro ao gerar token de autenticação")
	}

	log.ForContext(ctx).WithField("user_email", email).Info("Login: operador autenticado")
	return token, nil
}

func (s *Service) generateJWT(email string) (string, error) {
	now := s.now()
	claims := domain.Claims{
		OperatorEmail: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newAuthError(ErrExpiredToken, "")
		}
		return nil, newAuthError(ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, newAuthError(ErrInvalidToken, "")
	}
	if claims.OperatorEmail != s.cfg.OperatorEmail {
		return nil, newAuthError(ErrInvalidToken, "operador desconhecido").withEmail(claims.OperatorEmail)
	}

	return claims, nil
}
