package users

import (
	"context"

	"github.com/userhub-io/userhub/pkg/listquery"
)

// Repository is the data-access contract for user documents.
//
// The lookup-by-id methods return (nil, nil) when no document matches a
// structurally valid id; a structurally invalid id yields an INVALID_ID error
// before any store access.
type Repository interface {
	List(context context.Context, q listquery.Params) ([]*User, error)
	Create(context context.Context, username string) (*User, error)
	GetByID(context context.Context, id string) (*User, error)
	UpdateByID(context context.Context, id, username string) (*User, error)
	DeleteByID(context context.Context, id string) (*User, error)
}
