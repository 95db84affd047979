package cloudreve

import (
	"context"
	"fmt"
	gopath "path"

	"github.com/driveclient/go-cloudreve/apierror"
	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// ListOptions tunes a directory listing. Ordering and paging only apply
// on v4; the v3 API returns whole directories.
type ListOptions struct {
	Page           int
	PageSize       int
	OrderBy        string
	OrderDirection string
	NextPageToken  string
}

// UploadOptions tunes an upload session. PolicyID is looked up from the
// target directory when empty.
type UploadOptions struct {
	PolicyID     string
	MimeType     string
	LastModified int64
}

// splitPath splits an absolute path into its parent directory and base
// name.
func splitPath(p string) (dir, name string) {
	p = gopath.Clean("/" + p)
	return gopath.Dir(p), gopath.Base(p)
}

// findV3Object resolves a path to its v3 object by listing the parent
// directory. The v3 API addresses objects by ID, not path.
func (c *Client) findV3Object(ctx context.Context, p string) (*apiv3.Object, error) {
	dir, name := splitPath(p)
	list, err := c.v3.ListDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}
	for i := range list.Objects {
		if list.Objects[i].Name == name {
			return &list.Objects[i], nil
		}
	}
	return nil, &apierror.APIError{Code: 404, Message: fmt.Sprintf("%s not found", p)}
}

// ListFiles lists one page of the directory at path.
func (c *Client) ListFiles(ctx context.Context, path string, opts *ListOptions) (*FileList, error) {
	if c.IsV4() {
		var v4Opts *apiv4.ListOptions
		if opts != nil {
			v4Opts = &apiv4.ListOptions{
				Page:           opts.Page,
				PageSize:       opts.PageSize,
				OrderBy:        opts.OrderBy,
				OrderDirection: opts.OrderDirection,
				NextPageToken:  opts.NextPageToken,
			}
		}
		resp, err := c.v4.ListFiles(ctx, path, v4Opts)
		if err != nil {
			return nil, err
		}

		list := &FileList{
			Items:         make([]FileItem, 0, len(resp.Files)),
			NextPageToken: resp.Pagination.NextPageToken,
		}
		if resp.Pagination.NextToken != "" {
			list.NextPageToken = resp.Pagination.NextToken
		}
		parent := fileItemFromV4(resp.Parent)
		list.Parent = &parent
		if resp.StoragePolicy != nil {
			list.PolicyID = resp.StoragePolicy.ID
		}
		for _, f := range resp.Files {
			list.Items = append(list.Items, fileItemFromV4(f))
		}
		return list, nil
	}

	resp, err := c.v3.ListDirectory(ctx, path)
	if err != nil {
		return nil, err
	}
	list := &FileList{
		Items:    make([]FileItem, 0, len(resp.Objects)),
		PolicyID: resp.Policy.ID,
	}
	for _, o := range resp.Objects {
		list.Items = append(list.Items, fileItemFromV3(o))
	}
	return list, nil
}

// CreateDirectory creates a folder at path.
func (c *Client) CreateDirectory(ctx context.Context, path string) error {
	if c.IsV4() {
		_, err := c.v4.CreateDirectory(ctx, path)
		return err
	}
	return c.v3.CreateDirectory(ctx, &apiv3.CreateDirectoryRequest{Path: path})
}

// FileInfo fetches metadata for the file or folder at path. On v3 the
// lookup goes through the parent listing because objects are addressed
// by ID.
func (c *Client) FileInfo(ctx context.Context, path string) (*FileItem, error) {
	if c.IsV4() {
		f, err := c.v4.FileInfo(ctx, path)
		if err != nil {
			return nil, err
		}
		item := fileItemFromV4(*f)
		return &item, nil
	}

	obj, err := c.findV3Object(ctx, path)
	if err != nil {
		return nil, err
	}
	item := fileItemFromV3(*obj)
	return &item, nil
}

// Rename gives the file or folder at path a new name, leaving it in
// place.
func (c *Client) Rename(ctx context.Context, path, newName string) error {
	if c.IsV4() {
		return c.v4.Rename(ctx, path, newName)
	}

	obj, err := c.findV3Object(ctx, path)
	if err != nil {
		return err
	}
	req := &apiv3.RenameRequest{Action: "rename", NewName: newName}
	if obj.IsDir() {
		req.Src.Dirs = []string{obj.ID}
	} else {
		req.Src.Items = []string{obj.ID}
	}
	return c.v3.Rename(ctx, req)
}

// Move moves the files at paths into the destination folder. On v3 all
// paths must share one parent directory.
func (c *Client) Move(ctx context.Context, paths []string, dst string) error {
	if c.IsV4() {
		return c.v4.Move(ctx, paths, dst)
	}

	srcDir, src, err := c.collectV3Objects(ctx, paths)
	if err != nil {
		return err
	}
	return c.v3.Move(ctx, &apiv3.MoveRequest{Action: "move", SrcDir: srcDir, Src: src, Dst: dst})
}

// Copy copies the files at paths into the destination folder. On v3 all
// paths must share one parent directory.
func (c *Client) Copy(ctx context.Context, paths []string, dst string) error {
	if c.IsV4() {
		return c.v4.Copy(ctx, paths, dst)
	}

	srcDir, src, err := c.collectV3Objects(ctx, paths)
	if err != nil {
		return err
	}
	return c.v3.Copy(ctx, &apiv3.CopyRequest{SrcDir: srcDir, Src: src, Dst: dst})
}

// Delete removes the files at paths.
func (c *Client) Delete(ctx context.Context, paths []string) error {
	if c.IsV4() {
		return c.v4.Delete(ctx, &apiv4.DeleteRequest{URIs: apiv4.PathsToURIs(paths)})
	}

	_, src, err := c.collectV3Objects(ctx, paths)
	if err != nil {
		return err
	}
	return c.v3.Delete(ctx, &apiv3.DeleteRequest{Items: src.Items, Dirs: src.Dirs})
}

// collectV3Objects resolves paths to v3 IDs split into dirs and items.
// All paths must live in the same parent directory, which the v3 batch
// endpoints require.
func (c *Client) collectV3Objects(ctx context.Context, paths []string) (string, apiv3.SourceItems, error) {
	var src apiv3.SourceItems
	if len(paths) == 0 {
		return "", src, fmt.Errorf("no paths given")
	}

	srcDir, _ := splitPath(paths[0])
	list, err := c.v3.ListDirectory(ctx, srcDir)
	if err != nil {
		return "", src, err
	}

	byName := make(map[string]*apiv3.Object, len(list.Objects))
	for i := range list.Objects {
		byName[list.Objects[i].Name] = &list.Objects[i]
	}

	for _, p := range paths {
		dir, name := splitPath(p)
		if dir != srcDir {
			return "", src, fmt.Errorf("v3 batch operations require a single source directory, got %s and %s", srcDir, dir)
		}
		obj, ok := byName[name]
		if !ok {
			return "", src, &apierror.APIError{Code: 404, Message: fmt.Sprintf("%s not found", p)}
		}
		if obj.IsDir() {
			src.Dirs = append(src.Dirs, obj.ID)
		} else {
			src.Items = append(src.Items, obj.ID)
		}
	}
	return srcDir, src, nil
}

// CreateUploadSession opens a chunked upload towards path. The caller
// drives the chunk loop with UploadChunk.
func (c *Client) CreateUploadSession(ctx context.Context, path string, size int64, opts *UploadOptions) (*UploadTicket, error) {
	var o UploadOptions
	if opts != nil {
		o = *opts
	}

	if o.PolicyID == "" {
		dir, _ := splitPath(path)
		list, err := c.ListFiles(ctx, dir, nil)
		if err != nil {
			return nil, err
		}
		o.PolicyID = list.PolicyID
	}

	if c.IsV4() {
		session, err := c.v4.CreateUploadSession(ctx, &apiv4.CreateUploadSessionRequest{
			URI:          apiv4.PathToURI(path),
			Size:         size,
			PolicyID:     o.PolicyID,
			MimeType:     o.MimeType,
			LastModified: o.LastModified,
		})
		if err != nil {
			return nil, err
		}
		return &UploadTicket{
			SessionID: session.SessionID,
			ChunkSize: session.ChunkSize,
			Expires:   session.Expires,
		}, nil
	}

	dir, name := splitPath(path)
	session, err := c.v3.CreateUploadSession(ctx, &apiv3.UploadRequest{
		Path:         dir,
		Name:         name,
		Size:         size,
		PolicyID:     o.PolicyID,
		MimeType:     o.MimeType,
		LastModified: o.LastModified,
	})
	if err != nil {
		return nil, err
	}
	return &UploadTicket{
		SessionID: session.SessionID,
		ChunkSize: session.ChunkSize,
		Expires:   session.Expires,
	}, nil
}

// UploadChunk sends one raw chunk for an open upload session. Each call
// is a single HTTP exchange; nothing is retried.
func (c *Client) UploadChunk(ctx context.Context, sessionID string, index int, data []byte) error {
	if c.IsV4() {
		return c.v4.UploadChunk(ctx, sessionID, index, data)
	}
	return c.v3.UploadChunk(ctx, sessionID, index, data)
}

// DownloadURL resolves a temporary download link for the file at path.
func (c *Client) DownloadURL(ctx context.Context, path string) (string, error) {
	if c.IsV4() {
		urls, err := c.v4.DownloadURLs(ctx, &apiv4.DownloadURLRequest{
			URIs:     []string{apiv4.PathToURI(path)},
			Download: true,
		})
		if err != nil {
			return "", err
		}
		if len(urls.URLs) == 0 {
			return "", &apierror.DecodeError{Err: fmt.Errorf("no download URL returned for %s", path)}
		}
		return urls.URLs[0].URL, nil
	}

	obj, err := c.findV3Object(ctx, path)
	if err != nil {
		return "", err
	}
	dl, err := c.v3.DownloadURL(ctx, obj.ID)
	if err != nil {
		return "", err
	}
	return dl.URL, nil
}
