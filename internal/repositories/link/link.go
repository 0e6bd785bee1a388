package link

import (
	"context"
	"errors"

	"github.com/orgball2608/mindlink/internal/domain"
	apperrors "github.com/orgball2608/mindlink/pkg/errors"
)

var (
	ErrNotFound      = apperrors.NotFound("Link not found")
	ErrAlreadyExists = errors.New("link already exists")
)

//go:generate go run go.uber.org/mock/mockgen -source=link.go -destination=mocks/mock.go
type Repository interface {
	// Create stores a new link and returns it with id and timestamps set
	Create(ctx context.Context, link domain.Link) (*domain.Link, error)

	// GetByID returns the link owned by userID
	GetByID(ctx context.Context, userID, id string) (*domain.Link, error)

	// ListByUser returns every link of userID, newest first
	ListByUser(ctx context.Context, userID string) ([]*domain.Link, error)

	// Update applies the non-nil fields of update
	Update(ctx context.Context, userID, id string, update domain.LinkUpdate) error

	// Delete removes the link owned by userID
	Delete(ctx context.Context, userID, id string) error
}
