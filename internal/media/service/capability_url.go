// Package service provides the capability-URL issuer for direct
// client-to-storage transfers.
package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gocloud.dev/blob"

	apperrors "github.com/allisson/vidshare/internal/errors"
)

// Default validity windows for capability URLs.
const (
	DefaultUploadWindow   = 20 * time.Minute
	DefaultPlaybackWindow = 60 * time.Minute
)

// CapabilityURLIssuer mints time-boxed signed URLs scoped to a single object
// and a single permission, so clients transfer bytes directly against the
// blob store without ever holding the storage account's credential.
//
// Neither operation checks that the target object exists: upload URLs grant
// write access to a name created upstream before any metadata record, and a
// playback URL for a missing object simply fails at the store.
type CapabilityURLIssuer interface {
	// IssueUploadURL returns a write-scoped URL for one object, valid for
	// the upload window from now.
	IssueUploadURL(ctx context.Context, blobName string) (string, error)

	// IssuePlaybackURL returns a read-scoped URL for one object, valid for
	// the playback window from now.
	IssuePlaybackURL(ctx context.Context, blobName string) (string, error)
}

// blobCapabilityIssuer implements CapabilityURLIssuer on a gocloud bucket.
// The bucket's driver holds the shared key and computes the query-string
// signature bound to the object name, method and expiry.
type blobCapabilityIssuer struct {
	bucket         *blob.Bucket
	uploadWindow   time.Duration
	playbackWindow time.Duration
}

// NewCapabilityURLIssuer creates an issuer over an opened bucket.
// Non-positive windows fall back to the defaults.
func NewCapabilityURLIssuer(bucket *blob.Bucket, uploadWindow, playbackWindow time.Duration) CapabilityURLIssuer {
	if uploadWindow <= 0 {
		uploadWindow = DefaultUploadWindow
	}
	if playbackWindow <= 0 {
		playbackWindow = DefaultPlaybackWindow
	}
	return &blobCapabilityIssuer{
		bucket:         bucket,
		uploadWindow:   uploadWindow,
		playbackWindow: playbackWindow,
	}
}

// IssueUploadURL signs a write-only URL for the object.
func (i *blobCapabilityIssuer) IssueUploadURL(ctx context.Context, blobName string) (string, error) {
	if blobName == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "blob name is required")
	}

	url, err := i.bucket.SignedURL(ctx, blobName, &blob.SignedURLOptions{
		Expiry: i.uploadWindow,
		Method: http.MethodPut,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDependency, "failed to sign upload url: "+err.Error())
	}
	return url, nil
}

// IssuePlaybackURL signs a read-only URL for the object.
func (i *blobCapabilityIssuer) IssuePlaybackURL(ctx context.Context, blobName string) (string, error) {
	if blobName == "" {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "blob name is required")
	}

	url, err := i.bucket.SignedURL(ctx, blobName, &blob.SignedURLOptions{
		Expiry: i.playbackWindow,
		Method: http.MethodGet,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrDependency, "failed to sign playback url: "+err.Error())
	}
	return url, nil
}

// NewBlobName mints a random object name preserving the original file's
// extension, decoupling public URLs from user-supplied names.
func NewBlobName(original string) string {
	ext := "mp4"
	if idx := strings.LastIndex(original, "."); idx >= 0 && idx < len(original)-1 {
		ext = original[idx+1:]
	}
	return uuid.NewString() + "." + ext
}
