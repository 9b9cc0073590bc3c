// Package storage keeps uploaded posters and photos and hands back the public
// URL the API stores on the entity.
package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

// Containers group assets per resource.
const (
	ContainerMovies = "movies"
	ContainerActors = "actors"
)

var (
	ErrFileTooLarge     = errors.New("file exceeds the upload size limit")
	ErrInvalidContainer = errors.New("invalid container")
)

type FileStore interface {
	// Save stores the upload and returns its public URL.
	Save(ctx context.Context, container string, file *multipart.FileHeader) (string, error)
	// Delete is idempotent: an empty or unknown URL is not an error.
	Delete(ctx context.Context, url, container string) error
}
