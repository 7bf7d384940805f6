// Package storage adapts an S3-compatible object store for media uploads.
package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ingria/ingria-backend/internal/filex"
)

// ObjectStore persists raw media bytes and returns a durable, publicly
// resolvable locator for them.
type ObjectStore interface {
	// Put uploads data under key with the declared content type and returns
	// the public URL of the object. Failures wrap common.ErrStorage and are
	// fatal to the enclosing request.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ObjectKey builds a globally unique storage key from a user-supplied name
// hint: a random UUID prefix plus the sanitized name.
func ObjectKey(nameHint string) string {
	return fmt.Sprintf("%s-%s", uuid.New(), filex.SanitizeName(nameHint))
}
