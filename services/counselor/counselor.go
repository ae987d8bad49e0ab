package counselor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	counselorRepo "campusminds/database/repository/counselor"
	"campusminds/models"
	"campusminds/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidAccessCode signals a failed access-code check at login.
var ErrInvalidAccessCode = errors.New("invalid access code")

// ErrNotFound signals the counselor name is not in the directory.
var ErrNotFound = errors.New("counselor not recognized")

// CounselorService manages the counselor directory and counselor sessions.
type CounselorService interface {
	// Login verifies the shared access code and the counselor name, then
	// issues a session token.
	Login(ctx context.Context, name, accessCode string) (string, *models.Counselor, error)
	GetByName(ctx context.Context, name string) (*models.Counselor, error)
	GetByID(ctx context.Context, id string) (*models.Counselor, error)
	GetAll(ctx context.Context) ([]models.Counselor, error)
	// SetOnlineStatus flips the counselor's isOnline flag; the counselor is
	// the single writer of this field.
	SetOnlineStatus(ctx context.Context, name string, online bool) (bool, error)
}

// DefaultCounselorService is the production CounselorService.
type DefaultCounselorService struct {
	Repo           counselorRepo.CounselorRepository
	AuthCache      *redis.Client
	DirectoryCache *redis.Client

	accessCodeHash []byte
}

// NewDefaultCounselorService hashes the configured access code once so login
// does a constant bcrypt comparison.
func NewDefaultCounselorService(repo counselorRepo.CounselorRepository, authCache, directoryCache *redis.Client, accessCode string) *DefaultCounselorService {
	hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash counselor access code: %v", err)
	}
	return &DefaultCounselorService{
		Repo:           repo,
		AuthCache:      authCache,
		DirectoryCache: directoryCache,
		accessCodeHash: hash,
	}
}

// Login verifies credentials and issues a JWT recorded in the auth cache.
func (s *DefaultCounselorService) Login(ctx context.Context, name, accessCode string) (string, *models.Counselor, error) {
	logger := utils.GetLogger()

	if err := bcrypt.CompareHashAndPassword(s.accessCodeHash, []byte(accessCode)); err != nil {
		logger.Warn("counselor login rejected: bad access code", zap.String("name", name))
		return "", nil, ErrInvalidAccessCode
	}

	counselor, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		if counselorRepo.IsNotFound(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("counselor lookup failed: %w", err)
	}

	token, err := utils.GenerateToken(counselor.ID, "counselor", utils.AuthSessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if s.AuthCache != nil {
		session := utils.AuthSession{Subject: counselor.ID, Role: "counselor"}
		if err := utils.SaveAuthSession(s.AuthCache, utils.HashToken(token), session); err != nil {
			return "", nil, fmt.Errorf("failed to record session: %w", err)
		}
	}

	logger.Info("counselor logged in", zap.String("id", counselor.ID), zap.String("name", counselor.Name))
	return token, counselor, nil
}

// GetByName returns the counselor matching the display name.
func (s *DefaultCounselorService) GetByName(ctx context.Context, name string) (*models.Counselor, error) {
	counselor, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		if counselorRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return counselor, nil
}

// GetByID returns the counselor with the given id.
func (s *DefaultCounselorService) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	counselor, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if counselorRepo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return counselor, nil
}

// GetAll returns the counselor directory, served from the cache when warm.
func (s *DefaultCounselorService) GetAll(ctx context.Context) ([]models.Counselor, error) {
	const cacheKey = utils.CounselorCachePrefix + "all"

	if s.DirectoryCache != nil {
		if data, err := s.DirectoryCache.Get(ctx, cacheKey).Result(); err == nil {
			var cached []models.Counselor
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	counselors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.DirectoryCache != nil {
		if data, err := json.Marshal(counselors); err == nil {
			if err := s.DirectoryCache.Set(ctx, cacheKey, data, utils.CounselorCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache counselor directory", zap.Error(err))
			}
		}
	}
	return counselors, nil
}

// SetOnlineStatus updates the isOnline flag and invalidates the directory cache.
func (s *DefaultCounselorService) SetOnlineStatus(ctx context.Context, name string, online bool) (bool, error) {
	stored, err := s.Repo.SetOnlineStatus(ctx, name, online)
	if err != nil {
		if counselorRepo.IsNotFound(err) {
			return false, ErrNotFound
		}
		return false, err
	}
	if s.DirectoryCache != nil {
		if err := s.DirectoryCache.Del(ctx, utils.CounselorCachePrefix+"all").Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate counselor directory cache", zap.Error(err))
		}
	}
	return stored, nil
}
