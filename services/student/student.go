package student

import (
	"context"
	"errors"
	"fmt"
	"strings"

	studentRepo "campusminds/database/repository/student"
	"campusminds/models"
	"campusminds/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrInvalidCredentials signals a nickname/email pair that matches no profile.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound signals the nickname has no stored profile.
var ErrNotFound = errors.New("student profile not found")

// ErrInvalidProfile rejects a profile with missing required fields.
var ErrInvalidProfile = errors.New("invalid profile")

// StudentService manages anonymous student profiles and student sessions.
type StudentService interface {
	// UpsertProfile creates or updates the profile stored under the nickname.
	UpsertProfile(ctx context.Context, profile models.Student) (*models.Student, error)
	GetProfile(ctx context.Context, nickname string) (*models.Student, error)
	// Login verifies the nickname/email pair and issues a session token.
	Login(ctx context.Context, nickname, email string) (string, *models.Student, error)
}

// DefaultStudentService is the production StudentService.
type DefaultStudentService struct {
	Repo      studentRepo.StudentRepository
	AuthCache *redis.Client
}

// UpsertProfile validates and stores the profile.
func (s *DefaultStudentService) UpsertProfile(ctx context.Context, profile models.Student) (*models.Student, error) {
	profile.Nickname = strings.TrimSpace(profile.Nickname)
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Nickname == "" || profile.Email == "" || profile.Age <= 0 || profile.Gender == "" {
		return nil, ErrInvalidProfile
	}

	stored, err := s.Repo.Upsert(ctx, &profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return stored, nil
}

// GetProfile fetches the profile stored under the nickname.
func (s *DefaultStudentService) GetProfile(ctx context.Context, nickname string) (*models.Student, error) {
	stored, err := s.Repo.GetByNickname(ctx, nickname)
	if err != nil {
		if studentRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return stored, nil
}

// Login verifies the nickname/email pair and issues a JWT recorded in the
// auth cache.
func (s *DefaultStudentService) Login(ctx context.Context, nickname, email string) (string, *models.Student, error) {
	stored, err := s.Repo.GetByCredentials(ctx, strings.TrimSpace(nickname), strings.TrimSpace(email))
	if err != nil {
		if studentRepo.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := utils.GenerateToken(stored.Nickname, "student", utils.AuthSessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if s.AuthCache != nil {
		session := utils.AuthSession{Subject: stored.Nickname, Role: "student"}
		if err := utils.SaveAuthSession(s.AuthCache, utils.HashToken(token), session); err != nil {
			return "", nil, fmt.Errorf("failed to record session: %w", err)
		}
	}

	utils.GetLogger().Info("student logged in", zap.String("nickname", stored.Nickname))
	return token, stored, nil
}
