package student

import (
	"context"
	"testing"

	studentRepo "campusminds/database/repository/student"
	"campusminds/models"
	"campusminds/utils"
)

type fakeStudentRepo struct {
	byNick map[string]models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byNick: make(map[string]models.Student)}
}

func (f *fakeStudentRepo) Upsert(ctx context.Context, student *models.Student) (*models.Student, error) {
	f.byNick[student.Nickname] = *student
	stored := f.byNick[student.Nickname]
	return &stored, nil
}

func (f *fakeStudentRepo) GetByNickname(ctx context.Context, nickname string) (*models.Student, error) {
	stored, ok := f.byNick[nickname]
	if !ok {
		return nil, studentRepo.ErrNotFound
	}
	return &stored, nil
}

func (f *fakeStudentRepo) GetByCredentials(ctx context.Context, nickname, email string) (*models.Student, error) {
	stored, ok := f.byNick[nickname]
	if !ok || stored.Email != email {
		return nil, studentRepo.ErrNotFound
	}
	return &stored, nil
}

func validProfile() models.Student {
	return models.Student{
		Nickname: "bluejay",
		Email:    "bluejay@campus.edu",
		Phone:    "555-0100",
		Age:      21,
		Gender:   "F",
	}
}

func TestUpsertProfileRoundTrip(t *testing.T) {
	svc := &DefaultStudentService{Repo: newFakeStudentRepo()}

	if _, err := svc.UpsertProfile(context.Background(), validProfile()); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	stored, err := svc.GetProfile(context.Background(), "bluejay")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if stored.Email != "bluejay@campus.edu" {
		t.Fatalf("unexpected stored profile: %+v", stored)
	}
}

func TestUpsertProfileValidation(t *testing.T) {
	svc := &DefaultStudentService{Repo: newFakeStudentRepo()}

	for _, mutate := range []func(*models.Student){
		func(p *models.Student) { p.Nickname = "  " },
		func(p *models.Student) { p.Email = "" },
		func(p *models.Student) { p.Age = 0 },
		func(p *models.Student) { p.Gender = "" },
	} {
		p := validProfile()
		mutate(&p)
		if _, err := svc.UpsertProfile(context.Background(), p); err != ErrInvalidProfile {
			t.Fatalf("expected ErrInvalidProfile for %+v, got %v", p, err)
		}
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := &DefaultStudentService{Repo: newFakeStudentRepo()}
	if _, err := svc.GetProfile(context.Background(), "ghost"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := &DefaultStudentService{Repo: newFakeStudentRepo()}
	if _, err := svc.UpsertProfile(context.Background(), validProfile()); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	token, stored, err := svc.Login(context.Background(), "bluejay", "bluejay@campus.edu")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if stored.Nickname != "bluejay" {
		t.Fatalf("unexpected profile: %+v", stored)
	}
	subject, role, err := utils.ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("issued token is not valid: %v", err)
	}
	if subject != "bluejay" || role != "student" {
		t.Fatalf("unexpected claims: sub=%q role=%q", subject, role)
	}

	if _, _, err := svc.Login(context.Background(), "bluejay", "wrong@campus.edu"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
