package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/jobs"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// fakeJobRepo guarda vacantes en memoria en orden de inserción.
type fakeJobRepo struct {
	jobs []*entity.Job
}

func (r *fakeJobRepo) Create(j *entity.Job) error {
	cp := *j
	r.jobs = append(r.jobs, &cp)
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			cp := *j
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) ListAll() ([]*entity.Job, error) {
	out := make([]*entity.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *fakeJobRepo) ListByEmployer(employerID string) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.PostedBy == employerID {
			out = append(out, j)
		}
	}
	return out, nil
}

func postJob(t *testing.T, uc *jobs.JobUseCase, employerID, title, company, location string) dto.JobResponse {
	t.Helper()
	out, err := uc.Post(employerID, dto.PostJobRequest{
		Title:       title,
		CompanyName: company,
		Location:    location,
		Description: "descripción",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return *out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Post / ListByEmployer
// ──────────────────────────────────────────────────────────────────────────────

// Cada employer ve exactamente sus vacantes y ninguna ajena.
func TestListByEmployer_AislaPorDueno(t *testing.T) {
	uc := jobs.NewJobUseCase(&fakeJobRepo{})

	created := postJob(t, uc, "emp-1", "Backend Engineer", "Acme", "Remote")
	postJob(t, uc, "emp-2", "Frontend Engineer", "Globex", "Madrid")

	mine, err := uc.ListByEmployer("emp-1")
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, created.ID, mine.Items[0].ID)
	assert.Equal(t, "emp-1", mine.Items[0].PostedBy)

	others, err := uc.ListByEmployer("emp-2")
	require.NoError(t, err)
	require.Len(t, others.Items, 1)
	assert.NotEqual(t, created.ID, others.Items[0].ID,
		"la vacante de emp-1 no debe aparecer en el listado de emp-2")
}

func TestGetByID_Inexistente_DevuelveNil(t *testing.T) {
	uc := jobs.NewJobUseCase(&fakeJobRepo{})

	out, err := uc.GetByID("9999")
	require.NoError(t, err)
	assert.Nil(t, out, "una vacante inexistente se reporta como nil (el handler responde 404)")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Search
// ──────────────────────────────────────────────────────────────────────────────

func buildBoard(t *testing.T) *jobs.JobUseCase {
	t.Helper()
	uc := jobs.NewJobUseCase(&fakeJobRepo{})
	postJob(t, uc, "emp-1", "Backend Engineer", "Acme", "Remote")
	postJob(t, uc, "emp-1", "Data Analyst", "Globex", "Bogotá")
	postJob(t, uc, "emp-2", "QA Tester", "Initech", "Medellín")
	return uc
}

// Query vacía: el tablón completo, sin filtrar.
func TestSearch_QueryVacia_ListaTodo(t *testing.T) {
	uc := buildBoard(t)

	out, err := uc.Search("")
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.Equal(t, 3, out.Total)
}

// La búsqueda es insensible a mayúsculas y matchea substring en cualquiera
// de los tres campos (OR).
func TestSearch_SubstringInsensibleEnTresCampos(t *testing.T) {
	uc := buildBoard(t)

	cases := []struct {
		query string
		want  string
	}{
		{"backend", "Backend Engineer"}, // título, minúsculas
		{"GLOBEX", "Data Analyst"},      // empresa, mayúsculas
		{"remo", "Backend Engineer"},    // ubicación, substring parcial
	}
	for _, tc := range cases {
		out, err := uc.Search(tc.query)
		require.NoError(t, err)
		require.Len(t, out.Items, 1, "query %q debe dar un único resultado", tc.query)
		assert.Equal(t, tc.want, out.Items[0].Title)
	}
}

// También es insensible a tildes: "bogota" encuentra "Bogotá" y viceversa.
func TestSearch_InsensibleATildes(t *testing.T) {
	uc := buildBoard(t)

	out, err := uc.Search("bogota")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Data Analyst", out.Items[0].Title)

	out, err = uc.Search("MEDELLÍN")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "QA Tester", out.Items[0].Title)
}

func TestSearch_SinCoincidencias_ListaVacia(t *testing.T) {
	uc := buildBoard(t)

	out, err := uc.Search("blockchain")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Total)
}
