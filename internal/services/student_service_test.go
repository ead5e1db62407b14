package services

import (
	"context"
	"testing"
	"time"

	"github.com/Rokuginn/polytechnic-library/internal/apperrors"
	"github.com/Rokuginn/polytechnic-library/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStudentRepo is an in-memory StudentRepository
type mockStudentRepo struct {
	students map[int]*models.Student
	nextID   int
}

func newMockStudentRepo(students ...*models.Student) *mockStudentRepo {
	m := &mockStudentRepo{students: map[int]*models.Student{}, nextID: 1}
	for _, s := range students {
		m.students[s.ID] = s
		if s.ID >= m.nextID {
			m.nextID = s.ID + 1
		}
	}
	return m
}

func (m *mockStudentRepo) GetAll(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	for _, s := range m.students {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	student := *s
	return &student, nil
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = m.nextID
	m.nextID++
	stored := *student
	stored.CreatedAt = time.Now()
	m.students[student.ID] = &stored
	return nil
}

func (m *mockStudentRepo) Update(ctx context.Context, id int, name, address string) error {
	if s, ok := m.students[id]; ok {
		s.Name = name
		s.Address = address
	}
	return nil
}

func (m *mockStudentRepo) Delete(ctx context.Context, id int) error {
	if _, ok := m.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(m.students, id)
	return nil
}

func TestStudentService_Create(t *testing.T) {
	t.Run("success trims fields", func(t *testing.T) {
		svc := NewStudentService(newMockStudentRepo())

		student, err := svc.Create(context.Background(), &models.StudentRequest{
			Name:    "  Tan Ah Kow  ",
			Address: "123 Dover Road",
		})

		require.NoError(t, err)
		assert.Equal(t, "Tan Ah Kow", student.Name)
		assert.NotZero(t, student.ID)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := NewStudentService(newMockStudentRepo())

		_, err := svc.Create(context.Background(), &models.StudentRequest{Name: "Tan Ah Kow"})

		assert.ErrorIs(t, err, apperrors.ErrMissingStudentFields)
	})
}

func TestStudentService_Update(t *testing.T) {
	t.Run("success returns updated record", func(t *testing.T) {
		repo := newMockStudentRepo(&models.Student{ID: 1, Name: "Tan Ah Kow", Address: "123 Dover Road"})
		svc := NewStudentService(repo)

		student, err := svc.Update(context.Background(), 1, &models.StudentRequest{
			Name:    "Tan Ah Kow",
			Address: "456 Clementi Ave",
		})

		require.NoError(t, err)
		assert.Equal(t, "456 Clementi Ave", student.Address)
		assert.Equal(t, "456 Clementi Ave", repo.students[1].Address)
	})

	t.Run("unknown student", func(t *testing.T) {
		svc := NewStudentService(newMockStudentRepo())

		_, err := svc.Update(context.Background(), 99, &models.StudentRequest{
			Name:    "Tan Ah Kow",
			Address: "456 Clementi Ave",
		})

		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	})
}

func TestStudentService_Delete(t *testing.T) {
	repo := newMockStudentRepo(&models.Student{ID: 1, Name: "Tan Ah Kow", Address: "123 Dover Road"})
	svc := NewStudentService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), apperrors.ErrStudentNotFound)
}
