package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
	"github.com/jhoicas/Empleos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: registro, login y resolución de rol.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	tx          TxRunner
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, profileRepo: profileRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea User + Profile en una transacción y devuelve el token:
// el usuario queda autenticado inmediatamente después de registrarse.
// El rol se valida contra la enumeración cerrada antes de escribir nada.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}
	existing, err = uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	profile := &entity.Profile{
		UserID:    user.ID,
		Role:      in.Role,
		CreatedAt: now,
	}
	err = uc.tx.Run(ctx, func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) error {
		if err := userRepo.Create(user); err != nil {
			return err
		}
		return profileRepo.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user, profile.Role)}, nil
}

// Login verifica username/password y genera el JWT con el rol del perfil.
// Cualquier fallo de credenciales devuelve ErrUnauthorized sin distinguir el campo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	role, err := uc.ResolveRole(user.ID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *toUserResponse(user, role)}, nil
}

// ResolveRole devuelve el rol del usuario. Un usuario sin perfil es un error
// explícito (ErrProfileMissing), y un rol fuera de la enumeración también
// (ErrInvalidRole): no hay rama por defecto.
func (uc *AuthUseCase) ResolveRole(userID string) (string, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", domain.ErrProfileMissing
	}
	if !entity.ValidRole(profile.Role) {
		return "", domain.ErrInvalidRole
	}
	return profile.Role, nil
}

func toUserResponse(u *entity.User, role string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}
}
