package apiv3

// Response is the generic envelope wrapping every v3 API payload.
type Response[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

// User holds account information as returned by the v3 API.
type User struct {
	ID             string    `json:"id"`
	UserName       string    `json:"user_name"`
	Nickname       string    `json:"nickname"`
	Status         int       `json:"status"`
	Avatar         string    `json:"avatar"`
	CreatedAt      string    `json:"created_at"`
	PreferredTheme string    `json:"preferred_theme"`
	Anonymous      bool      `json:"anonymous"`
	Group          UserGroup `json:"group"`
	Tags           []string  `json:"tags"`
}

// UserGroup describes the permission group a user belongs to.
type UserGroup struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	AllowShare           bool   `json:"allowShare"`
	AllowRemoteDownload  bool   `json:"allowRemoteDownload"`
	AllowArchiveDownload bool   `json:"allowArchiveDownload"`
	ShareDownload        bool   `json:"shareDownload"`
	Compress             bool   `json:"compress"`
	WebDAV               bool   `json:"webdav"`
	SourceBatch          int    `json:"sourceBatch"`
	AdvanceDelete        bool   `json:"advanceDelete"`
}

// Object is a file or folder entry in a directory listing.
type Object struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Path          string `json:"path"`
	Thumb         bool   `json:"thumb"`
	Size          int64  `json:"size"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	CreateDate    string `json:"create_date"`
	SourceEnabled bool   `json:"source_enabled"`
}

// IsDir reports whether the object is a folder.
func (o Object) IsDir() bool {
	return o.Type == "dir"
}

// Policy describes the storage policy attached to a directory.
type Policy struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	MaxSize  int64    `json:"max_size"`
	FileType []string `json:"file_type"`
}

// Property holds extended metadata for a single object.
type Property struct {
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	Policy         string `json:"policy"`
	Size           int64  `json:"size"`
	ChildFolderNum int    `json:"child_folder_num"`
	ChildFileNum   int    `json:"child_file_num"`
	Path           string `json:"path"`
	QueryDate      string `json:"query_date"`
}

// DirectoryList is the payload of a directory listing.
type DirectoryList struct {
	Parent  string   `json:"parent"`
	Objects []Object `json:"objects"`
	Policy  Policy   `json:"policy"`
}

// UploadSession is the server-side bookkeeping for a chunked upload.
type UploadSession struct {
	SessionID string `json:"sessionID"`
	ChunkSize int64  `json:"chunkSize"`
	Expires   int64  `json:"expires"`
}

// UploadRequest asks the server to open an upload session.
type UploadRequest struct {
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	Name         string `json:"name"`
	PolicyID     string `json:"policy_id"`
	LastModified int64  `json:"last_modified"`
	MimeType     string `json:"mime_type"`
}

// DownloadURL is the payload of a download-link request.
type DownloadURL struct {
	URL string `json:"url"`
}

// FileSource is a direct-source link for a file.
type FileSource struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Parent int64  `json:"parent"`
}

// StorageInfo reports the account's storage quota.
type StorageInfo struct {
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
	Total int64 `json:"total"`
}

// Share is the payload returned when creating a share link.
type Share struct {
	Key string `json:"key"`
}

// ShareRequest creates a share link for a single object.
type ShareRequest struct {
	ID        string `json:"id"`
	IsDir     bool   `json:"is_dir"`
	Password  string `json:"password"`
	Downloads int    `json:"downloads"`
	Expire    int    `json:"expire"`
	Preview   bool   `json:"preview"`
}

// SiteConfig is the public site configuration.
type SiteConfig struct {
	Title           string `json:"title"`
	LoginCaptcha    bool   `json:"login_captcha"`
	RegCaptcha      bool   `json:"reg_captcha"`
	ForgetCaptcha   bool   `json:"forget_captcha"`
	EmailActive     bool   `json:"email_active"`
	Themes          string `json:"themes"`
	DefaultTheme    string `json:"default_theme"`
	HomeViewMethod  string `json:"home_view_method"`
	Authn           bool   `json:"authn"`
	User            *User  `json:"user"`
	CaptchaType     string `json:"captcha_type"`
	RegisterEnabled bool   `json:"register_enabled"`
}

// LoginRequest carries v3 login credentials. The field casing mirrors the
// wire schema exactly.
type LoginRequest struct {
	UserName    string `json:"userName"`
	Password    string `json:"Password"`
	CaptchaCode string `json:"captchaCode"`
}

// OTPLoginRequest finishes a two-factor login.
type OTPLoginRequest struct {
	Code string `json:"code"`
}

// CreateDirectoryRequest creates a folder at the given path.
type CreateDirectoryRequest struct {
	Path string `json:"path"`
}

// CreateFileRequest creates an empty file at the given path.
type CreateFileRequest struct {
	Path string `json:"path"`
}

// SourceRequest resolves direct-source links for a batch of objects.
type SourceRequest struct {
	Items []string `json:"items"`
}

// SourceItems splits operation targets into folders and files, as the v3
// object endpoints require.
type SourceItems struct {
	Dirs  []string `json:"dirs"`
	Items []string `json:"items"`
}

// RenameRequest renames a single object.
type RenameRequest struct {
	Action  string      `json:"action"`
	Src     SourceItems `json:"src"`
	NewName string      `json:"new_name"`
}

// MoveRequest moves objects into a destination directory.
type MoveRequest struct {
	Action string      `json:"action"`
	SrcDir string      `json:"src_dir"`
	Src    SourceItems `json:"src"`
	Dst    string      `json:"dst"`
}

// CopyRequest copies objects into a destination directory.
type CopyRequest struct {
	SrcDir string      `json:"src_dir"`
	Src    SourceItems `json:"src"`
	Dst    string      `json:"dst"`
}

// DeleteRequest deletes a batch of objects.
type DeleteRequest struct {
	Items  []string `json:"items"`
	Dirs   []string `json:"dirs"`
	Force  bool     `json:"force"`
	Unlink bool     `json:"unlink"`
}

// RemoteTask is an offline (aria2) download task.
type RemoteTask struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	CreatedAt string  `json:"created_at"`
}

// RemoteDownloadRequest submits URLs for offline download.
type RemoteDownloadRequest struct {
	Dst string   `json:"dst"`
	URL []string `json:"url"`
}

// WebDAVAccount is a v3 WebDAV access credential.
type WebDAVAccount struct {
	ID        int    `json:"ID"`
	Name      string `json:"Name"`
	Root      string `json:"Root"`
	Password  string `json:"Password"`
	CreatedAt string `json:"CreatedAt"`
}
