package apiv4

import (
	"encoding/json"
	"fmt"
)

// Response is the generic envelope wrapping every v4 API payload.
type Response[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// FileType discriminates files from folders. The wire encoding is an
// integer: 0 for files, 1 for folders.
type FileType int

// File type values
const (
	FileTypeFile   FileType = 0
	FileTypeFolder FileType = 1
)

// String implements fmt.Stringer.
func (t FileType) String() string {
	switch t {
	case FileTypeFile:
		return "file"
	case FileTypeFolder:
		return "folder"
	default:
		return fmt.Sprintf("FileType(%d)", int(t))
	}
}

// UnmarshalJSON enforces the closed set of wire values.
func (t *FileType) UnmarshalJSON(b []byte) error {
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v {
	case 0, 1:
		*t = FileType(v)
		return nil
	default:
		return fmt.Errorf("invalid file type %d", v)
	}
}

// User holds account information as returned by the v4 API.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Status    string `json:"status,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at"`
	Anonymous bool   `json:"anonymous,omitempty"`
	Group     *Group `json:"group,omitempty"`
	Language  string `json:"language,omitempty"`
}

// Group describes the permission group a user belongs to.
type Group struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Permission          string `json:"permission,omitempty"`
	DirectLinkBatchSize int64  `json:"direct_link_batch_size,omitempty"`
	TrashRetention      int64  `json:"trash_retention,omitempty"`
}

// Token is the credential pair returned by login and refresh.
type Token struct {
	AccessToken    string `json:"access_token"`
	RefreshToken   string `json:"refresh_token"`
	AccessExpires  string `json:"access_expires"`
	RefreshExpires string `json:"refresh_expires"`
}

// LoginData bundles the authenticated user with their token pair.
type LoginData struct {
	User  User  `json:"user"`
	Token Token `json:"token"`
}

// LoginPreparation announces which sign-in methods the server offers for
// an email address.
type LoginPreparation struct {
	WebAuthnEnabled bool `json:"webauthn_enabled"`
	SSOEnabled      bool `json:"sso_enabled"`
	PasswordEnabled bool `json:"password_enabled"`
	QQEnabled       bool `json:"qq_enabled"`
}

// File is a file or folder projection of server-side state.
type File struct {
	Type          FileType        `json:"type"`
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Permission    string          `json:"permission,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	Size          int64           `json:"size"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	Path          string          `json:"path"`
	Capability    string          `json:"capability,omitempty"`
	Owned         bool            `json:"owned"`
	PrimaryEntity string          `json:"primary_entity,omitempty"`
}

// IsDir reports whether the file is a folder.
func (f File) IsDir() bool {
	return f.Type == FileTypeFolder
}

// Pagination carries cursor or page based paging state.
type Pagination struct {
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
	TotalItems    int64  `json:"total_items,omitempty"`
	NextToken     string `json:"next_token,omitempty"`
	IsCursor      bool   `json:"is_cursor"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

// NavigatorProps announces listing capabilities for a directory.
type NavigatorProps struct {
	Capability            string   `json:"capability"`
	MaxPageSize           int      `json:"max_page_size"`
	OrderByOptions        []string `json:"order_by_options"`
	OrderDirectionOptions []string `json:"order_direction_options"`
}

// ListResponse is the payload of a directory listing.
type ListResponse struct {
	Files         []File         `json:"files"`
	Parent        File           `json:"parent"`
	Pagination    Pagination     `json:"pagination"`
	Props         NavigatorProps `json:"props"`
	ContextHint   string         `json:"context_hint,omitempty"`
	MixedType     bool           `json:"mixed_type,omitempty"`
	StoragePolicy *StoragePolicy `json:"storage_policy,omitempty"`
}

// StoragePolicy describes where uploads land and their limits.
type StoragePolicy struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	MaxSize          int64    `json:"max_size"`
	AllowedSuffix    []string `json:"allowed_suffix,omitempty"`
	DeniedSuffix     []string `json:"denied_suffix,omitempty"`
	Relay            bool     `json:"relay,omitempty"`
	Weight           int64    `json:"weight,omitempty"`
	ChunkConcurrency int      `json:"chunk_concurrency,omitempty"`
}

// UploadSession is the server-side bookkeeping for a chunked upload.
type UploadSession struct {
	SessionID     string         `json:"session_id"`
	UploadID      string         `json:"upload_id,omitempty"`
	ChunkSize     int64          `json:"chunk_size"`
	Expires       int64          `json:"expires"`
	UploadURLs    []string       `json:"upload_urls,omitempty"`
	Credential    string         `json:"credential,omitempty"`
	CompleteURL   string         `json:"complete_url,omitempty"`
	StoragePolicy *StoragePolicy `json:"storage_policy,omitempty"`
	MimeType      string         `json:"mime_type,omitempty"`
}

// TotalChunks reports how many chunk calls a file of the given size
// needs under this session's chunk size.
func (s *UploadSession) TotalChunks(fileSize int64) int {
	if s.ChunkSize <= 0 {
		return 1
	}
	n := fileSize / s.ChunkSize
	if fileSize%s.ChunkSize != 0 || n == 0 {
		n++
	}
	return int(n)
}

// DownloadURLItem is a single resolved download link.
type DownloadURLItem struct {
	URL                    string `json:"url"`
	StreamSaverDisplayName string `json:"stream_saver_display_name,omitempty"`
}

// DownloadURLs is the payload of a download-link request.
type DownloadURLs struct {
	URLs    []DownloadURLItem `json:"urls"`
	Expires string            `json:"expires"`
}

// PermissionSetting mirrors the v4 permission matrix attached to shares
// and files.
type PermissionSetting struct {
	UserExplicit  json.RawMessage `json:"user_explicit,omitempty"`
	GroupExplicit json.RawMessage `json:"group_explicit,omitempty"`
	SameGroup     string          `json:"same_group,omitempty"`
	Other         string          `json:"other,omitempty"`
	Anonymous     string          `json:"anonymous,omitempty"`
	Everyone      string          `json:"everyone,omitempty"`
}

// ShareLink is a share projection of server-side state.
type ShareLink struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Visited           int64  `json:"visited"`
	Downloaded        int64  `json:"downloaded,omitempty"`
	Unlocked          bool   `json:"unlocked"`
	SourceType        int    `json:"source_type"`
	Owner             *User  `json:"owner,omitempty"`
	CreatedAt         string `json:"created_at"`
	Expired           bool   `json:"expired"`
	URL               string `json:"url"`
	IsPrivate         bool   `json:"is_private,omitempty"`
	Password          string `json:"password,omitempty"`
	SourceURI         string `json:"source_uri,omitempty"`
	PasswordProtected bool   `json:"password_protected,omitempty"`
	Expires           string `json:"expires,omitempty"`
	ExpiredAt         string `json:"expired_at,omitempty"`
}

// shareList is the payload of a share listing.
type shareList struct {
	Shares     []ShareLink `json:"shares"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// DAVAccount is a v4 WebDAV access credential.
type DAVAccount struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Name      string `json:"name"`
	URI       string `json:"uri"`
	Password  string `json:"password"`
	Options   string `json:"options,omitempty"`
}

// DAVAccountList is the payload of a WebDAV account listing.
type DAVAccountList struct {
	Accounts   []DAVAccount `json:"accounts"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// Quota reports the account's storage quota.
type Quota struct {
	Used  int64 `json:"used"`
	Total int64 `json:"total"`
}

// Task is a background workflow task (remote download, archive, ...).
type Task struct {
	ID        string          `json:"id"`
	Status    string          `json:"status"`
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at,omitempty"`
	Summary   json.RawMessage `json:"summary,omitempty"`
}

// TaskList is the payload of a workflow task listing.
type TaskList struct {
	Tasks      []Task      `json:"tasks"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// TaskProgress reports progress counters for a single workflow task.
type TaskProgress struct {
	Total      int64 `json:"total"`
	Current    int64 `json:"current"`
	Identified int64 `json:"identified,omitempty"`
}

// SiteConfig is the public site configuration.
type SiteConfig struct {
	InstanceID   string `json:"instance_id,omitempty"`
	Title        string `json:"title,omitempty"`
	LoginCaptcha bool   `json:"login_captcha,omitempty"`
	RegCaptcha   bool   `json:"reg_captcha,omitempty"`
	Themes       string `json:"themes,omitempty"`
	DefaultTheme string `json:"default_theme,omitempty"`
	Authn        bool   `json:"authn,omitempty"`
	User         *User  `json:"user,omitempty"`
}

// UserSettings carries account preference fields.
type UserSettings struct {
	Theme    string `json:"theme,omitempty"`
	Language string `json:"language,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}
