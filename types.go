package cloudreve

import (
	"github.com/driveclient/go-cloudreve/apiv3"
	"github.com/driveclient/go-cloudreve/apiv4"
)

// Session is the unified result of a login: who signed in and, on v4,
// the token pair. On v3 the credential is a cookie held inside the
// binding and Token stays empty.
type Session struct {
	UserID        string
	Email         string
	Nickname      string
	Token         string
	RefreshToken  string
	AccessExpires string
}

// FileItem is a unified file or folder projection. It is a snapshot of
// server state, never locally mutated.
type FileItem struct {
	ID        string
	Name      string
	Path      string
	Size      int64
	IsDir     bool
	CreatedAt string
	UpdatedAt string
}

// FileList is one page of a directory listing.
type FileList struct {
	Items []FileItem
	// Parent is the listed directory itself, when the server reports it.
	Parent *FileItem
	// NextPageToken continues a cursor-paged v4 listing; empty on v3 and
	// on the last page.
	NextPageToken string
	// PolicyID identifies the storage policy governing uploads into the
	// listed directory, when the server reports it.
	PolicyID string
}

// UploadTicket identifies an open chunked-upload session.
type UploadTicket struct {
	SessionID string
	ChunkSize int64
	Expires   int64
}

// ShareItem is a unified share-link projection.
type ShareItem struct {
	ID        string
	Name      string
	URL       string
	IsPrivate bool
	Expired   bool
	CreatedAt string
}

// Quota reports the account's storage quota.
type Quota struct {
	Used  int64
	Total int64
}

// DAVAccount is a unified WebDAV credential projection.
type DAVAccount struct {
	ID        string
	Name      string
	Root      string
	Password  string
	CreatedAt string
}

// RemoteTask is a unified server-side download task projection.
type RemoteTask struct {
	ID        string
	Status    string
	CreatedAt string
}

func fileItemFromV3(o apiv3.Object) FileItem {
	return FileItem{
		ID:        o.ID,
		Name:      o.Name,
		Path:      o.Path,
		Size:      o.Size,
		IsDir:     o.IsDir(),
		CreatedAt: o.CreateDate,
		UpdatedAt: o.Date,
	}
}

func fileItemFromV4(f apiv4.File) FileItem {
	return FileItem{
		ID:        f.ID,
		Name:      f.Name,
		Path:      f.Path,
		Size:      f.Size,
		IsDir:     f.IsDir(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func shareItemFromV4(s apiv4.ShareLink) ShareItem {
	return ShareItem{
		ID:        s.ID,
		Name:      s.Name,
		URL:       s.URL,
		IsPrivate: s.IsPrivate || s.PasswordProtected,
		Expired:   s.Expired,
		CreatedAt: s.CreatedAt,
	}
}
