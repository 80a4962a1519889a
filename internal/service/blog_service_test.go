// internal/service/blog_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"birthday-blog/internal/domain"
	"birthday-blog/internal/util"
)

// MockBlogRepository is a mock implementation of repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Create(ctx context.Context, title, content string) (*domain.BlogPost, error) {
	args := m.Called(ctx, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) Update(ctx context.Context, id, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestListNeverReturnsNilSlice(t *testing.T) {
	blogs := new(MockBlogRepository)
	blogs.On("List", mock.Anything).Return(nil, nil)

	svc := NewBlogService()
	posts, err := svc.List(context.Background(), blogs)

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestCreateRequiresTitleAndContent(t *testing.T) {
	blogs := new(MockBlogRepository)

	svc := NewBlogService()
	_, err := svc.Create(context.Background(), blogs, "", "some content")

	var validationErr *util.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"title"}, validationErr.Fields)
	blogs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateDelegatesToRepository(t *testing.T) {
	post := domain.NewBlogPost("hello", "world")
	post.ID = "abc123"

	blogs := new(MockBlogRepository)
	blogs.On("Create", mock.Anything, "hello", "world").Return(post, nil)

	svc := NewBlogService()
	created, err := svc.Create(context.Background(), blogs, "hello", "world")

	require.NoError(t, err)
	assert.Equal(t, post, created)
}

func TestUpdateRequiresIdentifier(t *testing.T) {
	blogs := new(MockBlogRepository)

	svc := NewBlogService()
	err := svc.Update(context.Background(), blogs, "", "title", "content")

	var validationErr *util.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "id")
	blogs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePassesThroughNotFound(t *testing.T) {
	blogs := new(MockBlogRepository)
	blogs.On("Update", mock.Anything, "missing", "t", "c").Return(util.ErrNotFound)

	svc := NewBlogService()
	err := svc.Update(context.Background(), blogs, "missing", "t", "c")

	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestDeleteRequiresIdentifier(t *testing.T) {
	blogs := new(MockBlogRepository)

	svc := NewBlogService()
	err := svc.Delete(context.Background(), blogs, "  ")

	var validationErr *util.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"id"}, validationErr.Fields)
}

func TestDeletePassesThroughStorageFailure(t *testing.T) {
	boom := errors.New("broken pipe")
	blogs := new(MockBlogRepository)
	blogs.On("Delete", mock.Anything, "some-id").Return(boom)

	svc := NewBlogService()
	err := svc.Delete(context.Background(), blogs, "some-id")

	assert.ErrorIs(t, err, boom)
}
