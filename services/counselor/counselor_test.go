package counselor

import (
	"context"
	"strings"
	"testing"

	counselorRepo "campusminds/database/repository/counselor"
	"campusminds/models"
	"campusminds/utils"
)

type fakeCounselorRepo struct {
	byName map[string]models.Counselor
}

func newFakeCounselorRepo(counselors ...models.Counselor) *fakeCounselorRepo {
	f := &fakeCounselorRepo{byName: make(map[string]models.Counselor)}
	for _, c := range counselors {
		f.byName[strings.ToLower(c.Name)] = c
	}
	return f
}

func (f *fakeCounselorRepo) Create(ctx context.Context, c *models.Counselor) error {
	f.byName[strings.ToLower(c.Name)] = *c
	return nil
}

func (f *fakeCounselorRepo) GetByID(ctx context.Context, id string) (*models.Counselor, error) {
	for _, c := range f.byName {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, counselorRepo.ErrNotFound
}

func (f *fakeCounselorRepo) GetByName(ctx context.Context, name string) (*models.Counselor, error) {
	c, ok := f.byName[strings.ToLower(name)]
	if !ok {
		return nil, counselorRepo.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCounselorRepo) GetAll(ctx context.Context) ([]models.Counselor, error) {
	out := []models.Counselor{}
	for _, c := range f.byName {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCounselorRepo) SetOnlineStatus(ctx context.Context, name string, online bool) (bool, error) {
	c, ok := f.byName[strings.ToLower(name)]
	if !ok {
		return false, counselorRepo.ErrNotFound
	}
	c.IsOnline = online
	f.byName[strings.ToLower(name)] = c
	return online, nil
}

func (f *fakeCounselorRepo) DeleteAll(ctx context.Context) error {
	f.byName = make(map[string]models.Counselor)
	return nil
}

func newTestService() *DefaultCounselorService {
	repo := newFakeCounselorRepo(models.Counselor{ID: "c1", Name: "Dr. Ananya Singh"})
	return NewDefaultCounselorService(repo, nil, nil, "campus123")
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestService()

	token, cnslr, err := svc.Login(context.Background(), "Dr. Ananya Singh", "campus123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if cnslr.ID != "c1" {
		t.Fatalf("unexpected counselor: %+v", cnslr)
	}
	subject, role, err := utils.ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("issued token is not valid: %v", err)
	}
	if subject != "c1" || role != "counselor" {
		t.Fatalf("unexpected claims: sub=%q role=%q", subject, role)
	}
}

func TestLoginCaseInsensitiveName(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Login(context.Background(), "dr. ananya singh", "campus123"); err != nil {
		t.Fatalf("Login should match the name case-insensitively: %v", err)
	}
}

func TestLoginBadAccessCode(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Login(context.Background(), "Dr. Ananya Singh", "wrong"); err != ErrInvalidAccessCode {
		t.Fatalf("expected ErrInvalidAccessCode, got %v", err)
	}
}

func TestLoginUnknownName(t *testing.T) {
	svc := newTestService()
	if _, _, err := svc.Login(context.Background(), "Dr. Nobody", "campus123"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetOnlineStatus(t *testing.T) {
	svc := newTestService()

	online, err := svc.SetOnlineStatus(context.Background(), "Dr. Ananya Singh", true)
	if err != nil {
		t.Fatalf("SetOnlineStatus failed: %v", err)
	}
	if !online {
		t.Fatalf("expected isOnline true")
	}

	stored, err := svc.GetByName(context.Background(), "Dr. Ananya Singh")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if !stored.IsOnline {
		t.Fatalf("status not persisted")
	}

	if _, err := svc.SetOnlineStatus(context.Background(), "Dr. Nobody", true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
