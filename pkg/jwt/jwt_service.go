package jwt

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/internal/utils"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"time"
)

type (
	JWTService interface {
		GenerateTokenUser(userId string, role domain.Role) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetActorByToken(token string) (domain.Actor, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

const issuer = "PICKUP-ORDER"

func NewJWTService() JWTService {
	return NewJWTServiceWithConfig(
		utils.GetConfig("JWT_SECRET"),
		time.Duration(utils.GetConfigInt("JWT_TTL_HOURS"))*time.Hour,
	)
}

func NewJWTServiceWithConfig(secretKey string, ttl time.Duration) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		ttl:       ttl,
	}
}

func (j *jwtService) GenerateTokenUser(userId string, role domain.Role) (string, error) {
	now := time.Now()
	claims := jwtUserClaim{
		userId,
		string(role),
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

// GetActorByToken verifies the token and parses its role claim into a domain.Role.
func (j *jwtService) GetActorByToken(token string) (domain.Actor, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Actor{}, domain.ErrTokenExpired
		}
		return domain.Actor{}, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return domain.Actor{}, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || claims.UserID == "" {
		return domain.Actor{}, domain.ErrTokenInvalid
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, err
	}

	return domain.Actor{UserID: claims.UserID, Role: role}, nil
}
