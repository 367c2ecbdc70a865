// Package minio provides a MinIO/S3-compatible implementation of core.FS.
//
// Objects map to files by key. Directories are represented by zero-byte
// marker objects whose key ends in "/", so an empty directory created with
// Mkdir survives and reports IsDir from Stat. A key prefix with objects below
// it but no marker is also treated as a directory.
//
// Limitations compared to a local filesystem:
//   - No symbolic links; MinioFS does not implement core.SymlinkFS.
//   - O_RDWR and O_APPEND are rejected with core.ErrUnsupported.
//   - O_EXCL is checked with a Stat before the upload and is not atomic.
//   - Writes are buffered and uploaded when the file is closed.
//   - Rename copies then deletes and is not atomic.
//   - Remove on a missing key succeeds.
//
// Usage:
//
//	fs, err := minio.NewMinIO(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    Bucket:    "data",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	})
package minio
