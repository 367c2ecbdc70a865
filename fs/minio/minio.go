package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	platformerrors "github.com/jmgilman/go/fsinspect/errors"
	"github.com/jmgilman/go/fsinspect/fs/core"
	"github.com/jmgilman/go/fsinspect/fs/minio/internal/errs"
	"github.com/jmgilman/go/fsinspect/fs/minio/internal/pathutil"
	"github.com/jmgilman/go/fsinspect/fs/minio/internal/types"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

// MinioFS implements core.FS for MinIO/S3-compatible storage.
//
//nolint:revive // MinioFS matches the LocalFS/MemoryFS naming pattern
type MinioFS struct {
	client            *minio.Client
	bucket            string
	prefix            string
	renameConcurrency int
}

// NewMinIO creates a MinIO-backed filesystem.
// It does not contact the server; connection problems surface on first use.
func NewMinIO(cfg Config) (*MinioFS, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidConfig, "failed to create minio client")
		}
	}

	concurrency := cfg.MaxRenameConcurrency
	if concurrency == 0 {
		concurrency = DefaultRenameConcurrency
	}

	return &MinioFS{
		client:            client,
		bucket:            cfg.Bucket,
		prefix:            pathutil.NormalizePrefix(cfg.Prefix),
		renameConcurrency: concurrency,
	}, nil
}

// Type returns FSTypeRemote.
func (m *MinioFS) Type() core.FSType {
	return core.FSTypeRemote
}

// Bucket returns the bucket this filesystem is bound to.
func (m *MinioFS) Bucket() string {
	return m.bucket
}

func (m *MinioFS) key(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

// ctx is the context for every request. core.FS methods carry no context.
func (m *MinioFS) ctx() context.Context {
	return context.Background()
}

// stat resolves key to an object or a directory.
func (m *MinioFS) stat(ctx context.Context, key string) (*types.FileInfo, error) {
	base := path.Base("/" + key)
	if key == m.prefix {
		return types.NewDir(base, time.Time{}), nil
	}

	obj, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return types.NewFile(base, obj.Size, obj.LastModified), nil
	}
	if err = errs.Translate(err); !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	found, modTime, err := m.hasChildren(ctx, pathutil.DirKey(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fs.ErrNotExist
	}
	return types.NewDir(base, modTime), nil
}

// hasChildren reports whether any object, including a directory marker,
// lives under prefix.
func (m *MinioFS) hasChildren(ctx context.Context, prefix string) (bool, time.Time, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
		MaxKeys:   1,
	}) {
		if obj.Err != nil {
			return false, time.Time{}, errs.Translate(obj.Err)
		}
		return true, obj.LastModified, nil
	}
	return false, time.Time{}, nil
}

// ReadFS

// Open opens the named object for reading.
func (m *MinioFS) Open(name string) (fs.File, error) {
	return m.openRead(name)
}

func (m *MinioFS) openRead(name string) (*File, error) {
	ctx := m.ctx()
	key := m.key(name)

	info, err := m.stat(ctx, key)
	if err != nil {
		return nil, errs.PathError("open", name, err)
	}
	if info.IsDir() {
		return nil, errs.PathErrorf("open", name, "is a directory")
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("open", name, errs.Translate(err))
	}
	return &File{fs: m, key: key, name: name, obj: obj, info: info}, nil
}

// Stat returns file information for the named object or directory.
func (m *MinioFS) Stat(name string) (fs.FileInfo, error) {
	info, err := m.stat(m.ctx(), m.key(name))
	if err != nil {
		return nil, errs.PathError("stat", name, err)
	}
	return info, nil
}

// ReadDir lists the immediate children of a directory, sorted by name.
func (m *MinioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	ctx := m.ctx()
	key := m.key(name)

	info, err := m.stat(ctx, key)
	if err != nil {
		return nil, errs.PathError("readdir", name, err)
	}
	if !info.IsDir() {
		return nil, errs.PathErrorf("readdir", name, "not a directory")
	}

	entries, err := m.list(ctx, key)
	if err != nil {
		return nil, errs.PathError("readdir", name, err)
	}
	return entries, nil
}

// list returns the children of the directory at key.
func (m *MinioFS) list(ctx context.Context, key string) ([]fs.DirEntry, error) {
	prefix := pathutil.DirKey(key)

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if obj.Err != nil {
			return nil, errs.Translate(obj.Err)
		}
		if obj.Key == prefix {
			continue
		}

		rel := strings.TrimPrefix(obj.Key, prefix)
		isDir := strings.HasSuffix(rel, "/")
		rel = strings.TrimSuffix(rel, "/")
		if rel == "" || seen[rel] {
			continue
		}
		seen[rel] = true

		if isDir {
			entries = append(entries, types.NewDirEntry(types.NewDir(rel, obj.LastModified)))
		} else {
			entries = append(entries, types.NewDirEntry(types.NewFile(rel, obj.Size, obj.LastModified)))
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile reads the named object and returns its contents.
func (m *MinioFS) ReadFile(name string) ([]byte, error) {
	f, err := m.openRead(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Exists reports whether the named object or directory exists.
func (m *MinioFS) Exists(name string) (bool, error) {
	_, err := m.stat(m.ctx(), m.key(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errs.PathError("stat", name, err)
}

// WriteFS

// Create creates or truncates the named object for writing.
func (m *MinioFS) Create(name string) (core.File, error) {
	return m.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0)
}

// OpenFile opens the named object with the specified flags.
// Supported flags: O_RDONLY, O_WRONLY, O_CREATE, O_TRUNC, O_EXCL.
// O_RDWR and O_APPEND return core.ErrUnsupported. Permissions are ignored.
func (m *MinioFS) OpenFile(name string, flag int, _ fs.FileMode) (core.File, error) {
	if flag&os.O_RDWR != 0 {
		return nil, errs.PathErrorf("open", name, "%w: O_RDWR not supported by object storage", core.ErrUnsupported)
	}
	if flag&os.O_APPEND != 0 {
		return nil, errs.PathErrorf("open", name, "%w: O_APPEND not supported by object storage", core.ErrUnsupported)
	}
	if flag&(os.O_WRONLY|os.O_CREATE) == 0 {
		return m.openRead(name)
	}

	key := m.key(name)
	info, err := m.stat(m.ctx(), key)
	switch {
	case err == nil && info.IsDir():
		return nil, errs.PathErrorf("open", name, "is a directory")
	case err == nil && flag&os.O_CREATE != 0 && flag&os.O_EXCL != 0:
		return nil, errs.PathError("open", name, fs.ErrExist)
	case errors.Is(err, fs.ErrNotExist) && flag&os.O_CREATE == 0:
		return nil, errs.PathError("open", name, fs.ErrNotExist)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, errs.PathError("open", name, err)
	}

	return &File{fs: m, key: key, name: name, buf: new(bytes.Buffer)}, nil
}

// WriteFile uploads data as the named object.
func (m *MinioFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := m.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Mkdir creates a directory marker. The parent must already be a directory.
func (m *MinioFS) Mkdir(name string, _ fs.FileMode) error {
	ctx := m.ctx()
	key := m.key(name)

	if _, err := m.stat(ctx, key); err == nil {
		return errs.PathError("mkdir", name, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errs.PathError("mkdir", name, err)
	}

	parent, err := m.stat(ctx, pathutil.Parent(key))
	if err != nil {
		return errs.PathError("mkdir", name, err)
	}
	if !parent.IsDir() {
		return errs.PathErrorf("mkdir", name, "parent is not a directory")
	}

	return errs.PathError("mkdir", name, m.putMarker(ctx, key))
}

// MkdirAll creates markers for path and every missing parent.
// It fails if any component is an existing object.
func (m *MinioFS) MkdirAll(p string, _ fs.FileMode) error {
	ctx := m.ctx()
	key := m.key(p)
	if key == m.prefix {
		return nil
	}

	rel := strings.TrimPrefix(strings.TrimPrefix(key, m.prefix), "/")
	current := m.prefix
	for _, part := range strings.Split(rel, "/") {
		current = pathutil.JoinPath(current, part)

		info, err := m.stat(ctx, current)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return errs.PathErrorf("mkdir", p, "%s is not a directory", strings.TrimPrefix(current, m.prefix+"/"))
		case !errors.Is(err, fs.ErrNotExist):
			return errs.PathError("mkdir", p, err)
		}

		if err := m.putMarker(ctx, current); err != nil {
			return errs.PathError("mkdir", p, err)
		}
	}
	return nil
}

func (m *MinioFS) putMarker(ctx context.Context, key string) error {
	_, err := m.client.PutObject(ctx, m.bucket, pathutil.DirKey(key), bytes.NewReader(nil), 0, minio.PutObjectOptions{
		ContentType: "application/x-directory",
	})
	return errs.Translate(err)
}

// ManageFS

// Remove removes an object or an empty directory. A missing key is not an
// error.
func (m *MinioFS) Remove(name string) error {
	ctx := m.ctx()
	key := m.key(name)

	info, err := m.stat(ctx, key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errs.PathError("remove", name, err)
	}

	if info.IsDir() {
		if key == m.prefix {
			return errs.PathErrorf("remove", name, "cannot remove root")
		}
		children, err := m.list(ctx, key)
		if err != nil {
			return errs.PathError("remove", name, err)
		}
		if len(children) > 0 {
			return errs.PathErrorf("remove", name, "directory not empty")
		}
		key = pathutil.DirKey(key)
	}

	err = m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
	return errs.PathError("remove", name, errs.Translate(err))
}

// RemoveAll removes the object at path and everything below it.
func (m *MinioFS) RemoveAll(p string) error {
	ctx := m.ctx()
	key := m.key(p)
	prefix := pathutil.DirKey(key)

	objectsCh := make(chan minio.ObjectInfo, 100)

	var listErr error
	go func() {
		defer close(objectsCh)
		if key != "" {
			objectsCh <- minio.ObjectInfo{Key: key}
		}
		for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
			Prefix:    prefix,
			Recursive: true,
		}) {
			if obj.Err != nil {
				listErr = obj.Err
				return
			}
			objectsCh <- obj
		}
	}()

	var removeErr error
	for res := range m.client.RemoveObjects(ctx, m.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		if res.Err != nil && removeErr == nil {
			removeErr = res.Err
		}
	}

	if listErr != nil {
		return errs.PathError("removeall", p, errs.Translate(listErr))
	}
	if removeErr != nil {
		return errs.PathError("removeall", p, errs.Translate(removeErr))
	}
	return nil
}

// Rename moves oldpath to newpath as a copy followed by a delete.
//
// The operation is not atomic. If the copy phase fails some objects may
// already exist at newpath; if the delete phase fails objects exist at
// both paths. Directory copies run on a bounded worker pool.
func (m *MinioFS) Rename(oldpath, newpath string) error {
	ctx := m.ctx()
	oldKey, newKey := m.key(oldpath), m.key(newpath)

	info, err := m.stat(ctx, oldKey)
	if err != nil {
		return errs.PathError("rename", oldpath, err)
	}

	if !info.IsDir() {
		if err := m.copyObject(ctx, oldKey, newKey); err != nil {
			return errs.PathError("rename", oldpath, err)
		}
		err := m.client.RemoveObject(ctx, m.bucket, oldKey, minio.RemoveObjectOptions{})
		return errs.PathError("rename", oldpath, errs.Translate(err))
	}

	if oldKey == m.prefix {
		return errs.PathErrorf("rename", oldpath, "cannot rename root")
	}
	if err := m.putMarker(ctx, newKey); err != nil {
		return errs.PathError("rename", newpath, err)
	}

	copied, err := m.parallelCopy(ctx, pathutil.DirKey(oldKey), pathutil.DirKey(newKey))
	if err != nil {
		return errs.PathError("rename", oldpath, err)
	}

	toDelete := make(chan minio.ObjectInfo, len(copied))
	for _, key := range copied {
		toDelete <- minio.ObjectInfo{Key: key}
	}
	close(toDelete)

	for res := range m.client.RemoveObjects(ctx, m.bucket, toDelete, minio.RemoveObjectsOptions{}) {
		if res.Err != nil {
			return errs.PathError("rename", oldpath, errs.Translate(res.Err))
		}
	}
	return nil
}

func (m *MinioFS) copyObject(ctx context.Context, from, to string) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: to},
		minio.CopySrcOptions{Bucket: m.bucket, Object: from},
	)
	return errs.Translate(err)
}

// parallelCopy copies every object under oldPrefix to newPrefix using a
// bounded worker pool. It returns the source keys that were copied.
func (m *MinioFS) parallelCopy(ctx context.Context, oldPrefix, newPrefix string) ([]string, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.renameConcurrency)

	var mu sync.Mutex
	var copied []string

	for obj := range m.client.ListObjects(egCtx, m.bucket, minio.ListObjectsOptions{
		Prefix:    oldPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			_ = eg.Wait()
			return copied, errs.Translate(obj.Err)
		}

		key := obj.Key
		eg.Go(func() error {
			if err := m.copyObject(egCtx, key, newPrefix+strings.TrimPrefix(key, oldPrefix)); err != nil {
				return err
			}
			mu.Lock()
			copied = append(copied, key)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return copied, err
	}
	return copied, nil
}

// WalkFS

// Walk walks the tree rooted at root in lexical order, calling walkFn for
// each object and directory including root.
func (m *MinioFS) Walk(root string, walkFn fs.WalkDirFunc) error {
	ctx := m.ctx()
	key := m.key(root)

	info, err := m.stat(ctx, key)
	if err != nil {
		err = walkFn(root, nil, errs.PathError("stat", root, err))
	} else {
		err = m.walk(ctx, root, key, types.NewDirEntry(info), walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (m *MinioFS) walk(ctx context.Context, name, key string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(name, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := m.list(ctx, key)
	if err != nil {
		if err = walkFn(name, d, errs.PathError("readdir", name, err)); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		childName := path.Join(name, entry.Name())
		childKey := pathutil.JoinPath(key, entry.Name())
		if err := m.walk(ctx, childName, childKey, entry, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Compile-time interface check.
var _ core.FS = (*MinioFS)(nil)
