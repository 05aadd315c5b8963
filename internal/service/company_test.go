package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logidocs/internal/model"
	"logidocs/internal/repository"
	repoMocks "logidocs/internal/repository/mocks"
)

func TestCompanyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("name required", func(t *testing.T) {
		_, err := NewCompanyService(new(repoMocks.MockCompanyRepository)).Create(ctx, CompanyInput{Name: strPtr("  ")})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

		_, err := NewCompanyService(repo).Create(ctx, CompanyInput{Name: strPtr("Acme")})

		assert.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "Acme")
	})

	t.Run("optional fields stay nil", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(c *model.GlobalCompany) bool {
			return c.Name == "Acme" && c.Address == nil && c.Contact != nil && *c.Contact == "ops@acme.test"
		})).Return(&model.GlobalCompany{ID: "c-1", Name: "Acme"}, nil)

		c, err := NewCompanyService(repo).Create(ctx, CompanyInput{Name: strPtr("Acme "), Contact: strPtr(" ops@acme.test")})

		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
		repo.AssertExpectations(t)
	})
}

func TestCompanyService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockCompanyRepository)
	repo.On("List", ctx, repository.CompanyFilter{
		SortBy:    "name",
		SortOrder: repository.SortAsc,
		PageQuery: repository.PageQuery{Limit: 5},
	}).Return(&repository.PageResult[model.GlobalCompany]{Items: []model.GlobalCompany{{ID: "c-1"}}, Total: 6}, nil)

	res, err := NewCompanyService(repo).List(ctx, CompanyListQuery{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Companies, 1)
}

func TestCompanyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a field", func(t *testing.T) {
		_, err := NewCompanyService(new(repoMocks.MockCompanyRepository)).Update(ctx, "c-1", CompanyInput{})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("renamed to an existing name", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("Update", ctx, "c-1", mock.Anything).Return(nil, repository.ErrDuplicate)

		_, err := NewCompanyService(repo).Update(ctx, "c-1", CompanyInput{Name: strPtr("Beta")})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("Update", ctx, "c-1", mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := NewCompanyService(repo).Update(ctx, "c-1", CompanyInput{Address: strPtr("Izmir")})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCompanyService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refused while referenced", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("FindByID", ctx, "c-1").Return(&model.GlobalCompany{ID: "c-1", Name: "Acme"}, nil)
		repo.On("CountParticipants", ctx, "c-1").Return(2, nil)

		_, err := NewCompanyService(repo).Delete(ctx, "c-1")

		assert.ErrorIs(t, err, ErrConflict)
		assert.Contains(t, err.Error(), "2 participant")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("referenced between count and delete", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("FindByID", ctx, "c-1").Return(&model.GlobalCompany{ID: "c-1", Name: "Acme"}, nil)
		repo.On("CountParticipants", ctx, "c-1").Return(0, nil)
		repo.On("Delete", ctx, "c-1").Return(repository.ErrReferenced)

		_, err := NewCompanyService(repo).Delete(ctx, "c-1")

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("deletes", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("FindByID", ctx, "c-1").Return(&model.GlobalCompany{ID: "c-1", Name: "Acme"}, nil)
		repo.On("CountParticipants", ctx, "c-1").Return(0, nil)
		repo.On("Delete", ctx, "c-1").Return(nil)

		res, err := NewCompanyService(repo).Delete(ctx, "c-1")

		require.NoError(t, err)
		assert.Contains(t, res.Message, "Acme")
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(repoMocks.MockCompanyRepository)
		repo.On("FindByID", ctx, "c-1").Return(nil, sql.ErrNoRows)

		_, err := NewCompanyService(repo).Delete(ctx, "c-1")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}
