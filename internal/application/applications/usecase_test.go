package applications_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/applications"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeJobRepo struct {
	jobs map[string]*entity.Job
}

func (r *fakeJobRepo) Create(j *entity.Job) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) ListAll() ([]*entity.Job, error) { return nil, nil }

func (r *fakeJobRepo) ListByEmployer(string) ([]*entity.Job, error) { return nil, nil }

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
}

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

func (r *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

type fakeAppRepo struct {
	apps []*entity.Application
}

func (r *fakeAppRepo) Create(a *entity.Application) error {
	for _, existing := range r.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return domain.ErrAlreadyApplied
		}
	}
	cp := *a
	r.apps = append(r.apps, &cp)
	return nil
}

func (r *fakeAppRepo) ExistsByJobAndApplicant(jobID, applicantID string) (bool, error) {
	for _, a := range r.apps {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppRepo) GetByID(id string) (*entity.Application, error) {
	for _, a := range r.apps {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAppRepo) ListByApplicant(applicantID, status string) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, a := range r.apps {
		if a.ApplicantID != applicantID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAppRepo) ListByJob(jobID string) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateStatus(id, status string) error {
	for _, a := range r.apps {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeResumeStore cuenta las subidas y devuelve la key tal cual.
type fakeResumeStore struct {
	uploads int
}

func (s *fakeResumeStore) Upload(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	s.uploads++
	return key, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: employer acme_hr con una vacante, applicant jdoe
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *applications.ApplicationUseCase
	jobs     *fakeJobRepo
	apps     *fakeAppRepo
	profiles *fakeProfileRepo
	store    *fakeResumeStore
	jobID    string
}

const (
	employerID      = "user-acme-hr"
	otherEmployerID = "user-globex-hr"
	applicantID     = "user-jdoe"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	jobs := &fakeJobRepo{jobs: map[string]*entity.Job{}}
	profiles := &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
	apps := &fakeAppRepo{}
	store := &fakeResumeStore{}

	require.NoError(t, profiles.Create(&entity.Profile{UserID: employerID, Role: entity.RoleEmployer}))
	require.NoError(t, profiles.Create(&entity.Profile{UserID: otherEmployerID, Role: entity.RoleEmployer}))
	require.NoError(t, profiles.Create(&entity.Profile{UserID: applicantID, Role: entity.RoleApplicant}))

	job := &entity.Job{
		ID:          "job-1",
		Title:       "Backend Engineer",
		CompanyName: "Acme",
		Location:    "Remote",
		Description: "Go y PostgreSQL",
		PostedBy:    employerID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, jobs.Create(job))

	return &fixture{
		uc:       applications.NewApplicationUseCase(apps, jobs, profiles, store),
		jobs:     jobs,
		apps:     apps,
		profiles: profiles,
		store:    store,
		jobID:    job.ID,
	}
}

func (f *fixture) apply(t *testing.T, applicant string) string {
	t.Helper()
	out, err := f.uc.Apply(context.Background(), applicant, applications.ApplyInput{
		JobID:       f.jobID,
		CoverLetter: "Me interesa la posición.",
		Resume:      strings.NewReader("contenido del cv"),
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return out.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Apply
// ──────────────────────────────────────────────────────────────────────────────

// Toda postulación nace pending, con el CV subido bajo una key generada.
func TestApply_CreaPendingYSubeCV(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Apply(context.Background(), applicantID, applications.ApplyInput{
		JobID:       f.jobID,
		CoverLetter: "Me interesa.",
		Resume:      strings.NewReader("pdf"),
		Filename:    "cv.pdf",
		ContentType: "application/pdf",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, out.Status)
	assert.Equal(t, f.jobID, out.JobID)
	assert.Equal(t, applicantID, out.ApplicantID)
	assert.True(t, strings.HasPrefix(out.ResumeKey, "resumes/"), "la key debe vivir bajo resumes/")
	assert.True(t, strings.HasSuffix(out.ResumeKey, ".pdf"), "la key debe conservar la extensión")
	assert.Equal(t, 1, f.store.uploads)
}

// Postularse a una vacante inexistente: NotFound y cero filas, cero subidas.
func TestApply_VacanteInexistente_NoDejaRastro(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Apply(context.Background(), applicantID, applications.ApplyInput{
		JobID:    "9999",
		Resume:   strings.NewReader("pdf"),
		Filename: "cv.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
	assert.Empty(t, f.apps.apps, "no debe crearse ninguna postulación")
	assert.Zero(t, f.store.uploads, "no debe subirse ningún CV")
}

// Solo un applicant puede postularse: un employer recibe Forbidden.
func TestApply_EmployerNoPuedePostularse(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Apply(context.Background(), employerID, applications.ApplyInput{
		JobID:    f.jobID,
		Resume:   strings.NewReader("pdf"),
		Filename: "cv.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, f.apps.apps)
}

// Un usuario sin perfil tampoco (capacidad leída del perfil, no del token).
func TestApply_SinPerfil_Forbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Apply(context.Background(), "user-fantasma", applications.ApplyInput{
		JobID:    f.jobID,
		Resume:   strings.NewReader("pdf"),
		Filename: "cv.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Una sola postulación por par (vacante, applicant). El duplicado se detecta
// antes de subir el CV: el bucket no debe quedar con objetos huérfanos.
func TestApply_Duplicada_AlreadyApplied(t *testing.T) {
	f := newFixture(t)
	f.apply(t, applicantID)

	_, err := f.uc.Apply(context.Background(), applicantID, applications.ApplyInput{
		JobID:    f.jobID,
		Resume:   strings.NewReader("otro pdf"),
		Filename: "cv-v2.pdf",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Len(t, f.apps.apps, 1, "debe quedar una única fila")
	assert.Equal(t, 1, f.store.uploads, "el intento duplicado no debe subir un segundo CV")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListByApplicant
// ──────────────────────────────────────────────────────────────────────────────

// Un filtro de status fuera de la enumeración se ignora (listado completo).
func TestListByApplicant_FiltroInvalidoSeIgnora(t *testing.T) {
	f := newFixture(t)
	f.apply(t, applicantID)

	out, err := f.uc.ListByApplicant(applicantID, "archived")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1, "filtro desconocido cae al listado sin filtrar")

	out, err = f.uc.ListByApplicant(applicantID, entity.StatusApproved)
	require.NoError(t, err)
	assert.Empty(t, out.Items, "aún no hay postulaciones aprobadas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListJobApplicants
// ──────────────────────────────────────────────────────────────────────────────

// La propiedad está plegada en el lookup: vacante ajena responde NotFound
// aunque exista, igual que una inexistente.
func TestListJobApplicants_VacanteAjena_NotFound(t *testing.T) {
	f := newFixture(t)
	f.apply(t, applicantID)

	_, err := f.uc.ListJobApplicants(otherEmployerID, f.jobID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"vacante de otro employer debe responder NotFound, no Forbidden")

	_, err = f.uc.ListJobApplicants(employerID, "9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Review — máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: acme_hr publica, jdoe se postula, acme_hr aprueba y
// jdoe ve la postulación bajo el filtro approved.
func TestReview_EscenarioCompletoAprobacion(t *testing.T) {
	f := newFixture(t)
	appID := f.apply(t, applicantID)

	pending, err := f.uc.ListJobApplicants(employerID, f.jobID)
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, entity.StatusPending, pending.Items[0].Status)

	reviewed, err := f.uc.Review(employerID, appID, entity.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, reviewed.Status)

	approved, err := f.uc.ListByApplicant(applicantID, entity.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved.Items, 1)
	assert.Equal(t, appID, approved.Items[0].ID)
}

// Un employer ajeno recibe Forbidden (distinto de NotFound) y el estado no cambia.
func TestReview_EmployerAjeno_ForbiddenSinCambio(t *testing.T) {
	f := newFixture(t)
	appID := f.apply(t, applicantID)

	_, err := f.uc.Review(otherEmployerID, appID, entity.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := f.apps.GetByID(appID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status, "el estado debe permanecer pending")
}

// Una decisión fuera de {approved, rejected} no toca el estado.
func TestReview_DecisionInvalida_SinCambio(t *testing.T) {
	f := newFixture(t)
	appID := f.apply(t, applicantID)

	_, err := f.uc.Review(employerID, appID, "maybe")
	assert.ErrorIs(t, err, domain.ErrInvalidDecision)

	stored, _ := f.apps.GetByID(appID)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

// No hay transición de salida desde approved/rejected.
func TestReview_YaDecidida_AlreadyReviewed(t *testing.T) {
	f := newFixture(t)
	appID := f.apply(t, applicantID)

	_, err := f.uc.Review(employerID, appID, entity.StatusRejected)
	require.NoError(t, err)

	_, err = f.uc.Review(employerID, appID, entity.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)

	stored, _ := f.apps.GetByID(appID)
	assert.Equal(t, entity.StatusRejected, stored.Status, "la primera decisión debe permanecer")
}

func TestReview_PostulacionInexistente_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Review(employerID, "9999", entity.StatusApproved)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetForEmployer
// ──────────────────────────────────────────────────────────────────────────────

func TestGetForEmployer_SoloElDueno(t *testing.T) {
	f := newFixture(t)
	appID := f.apply(t, applicantID)

	out, err := f.uc.GetForEmployer(employerID, appID)
	require.NoError(t, err)
	assert.Equal(t, appID, out.ID)

	_, err = f.uc.GetForEmployer(otherEmployerID, appID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
