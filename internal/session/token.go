package session

import (
	"time"

	jwtsvc "futsalcourt/internal/pkg/jwt"
)

// jwtTokenService adapts the shared JWT service to the store's TokenService.
type jwtTokenService struct {
	svc *jwtsvc.Service
}

func NewJWTTokenService(svc *jwtsvc.Service) TokenService {
	return &jwtTokenService{svc: svc}
}

func (t *jwtTokenService) GenerateToken(jti, rollNo string, studentID int64) (string, error) {
	return t.svc.GenerateToken(jti, rollNo, studentID)
}

func (t *jwtTokenService) ValidateToken(tokenStr string) (*Claims, error) {
	claims, err := t.svc.ValidateToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &Claims{
		JTI:       claims.ID,
		RollNo:    claims.RollNo,
		StudentID: claims.StudentID,
	}, nil
}

func (t *jwtTokenService) TTL() time.Duration {
	return t.svc.TTL()
}
