package storage

import (
	"fmt"

	"github.com/fharvey/fileaccess-ms-go/internal/usecase/file"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return file.ErrObjectNotFound
	case "NoSuchBucket":
		return file.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return file.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", file.ErrInternal, err)
	}
}
