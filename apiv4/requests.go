package apiv4

// LoginRequest is the body of a password sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorLoginRequest finishes a sign-in that requires an OTP code.
type TwoFactorLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Code     string `json:"code"`
	Ticket   string `json:"ticket,omitempty"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ListOptions tunes a directory listing. The zero value requests the
// server defaults.
type ListOptions struct {
	Page           int
	PageSize       int
	OrderBy        string
	OrderDirection string
	NextPageToken  string
}

// CreateFileRequest creates an empty file or folder at the given URI.
type CreateFileRequest struct {
	URI           string `json:"uri"`
	Type          string `json:"type"`
	ErrOnConflict bool   `json:"err_on_conflict,omitempty"`
}

// MoveCopyRequest moves (or, with Copy set, copies) files into the
// destination folder.
type MoveCopyRequest struct {
	URIs []string `json:"uris"`
	Dst  string   `json:"dst"`
	Copy bool     `json:"copy,omitempty"`
}

// RenameRequest gives a file a new name in place.
type RenameRequest struct {
	URI     string `json:"uri"`
	NewName string `json:"new_name"`
}

// DeleteRequest removes files, optionally bypassing the trash bin.
type DeleteRequest struct {
	URIs           []string `json:"uris"`
	UnlinkOnly     bool     `json:"unlink,omitempty"`
	SkipSoftDelete bool     `json:"skip_soft_delete,omitempty"`
}

// CreateUploadSessionRequest opens a chunked upload towards the target
// URI.
type CreateUploadSessionRequest struct {
	URI          string            `json:"uri"`
	Size         int64             `json:"size"`
	PolicyID     string            `json:"policy_id"`
	LastModified int64             `json:"last_modified,omitempty"`
	MimeType     string            `json:"mime_type,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	EntityType   string            `json:"entity_type,omitempty"`
}

// DownloadURLRequest resolves temporary download links for the given
// URIs.
type DownloadURLRequest struct {
	URIs              []string `json:"uris"`
	Download          bool     `json:"download,omitempty"`
	Redirect          bool     `json:"redirect,omitempty"`
	Entity            string   `json:"entity,omitempty"`
	UsePrimarySiteURL bool     `json:"use_primary_site_url,omitempty"`
	SkipError         bool     `json:"skip_error,omitempty"`
	Archive           bool     `json:"archive,omitempty"`
	NoCache           bool     `json:"no_cache,omitempty"`
}

// UpdateMetadataRequest patches a file's custom metadata entries.
type UpdateMetadataRequest struct {
	Metadata      map[string]string `json:"metadata,omitempty"`
	ClearMetadata bool              `json:"clear_metadata,omitempty"`
}

// UpdateContentRequest replaces the content of a text file.
type UpdateContentRequest struct {
	URI     string `json:"uri"`
	Content string `json:"content"`
}

// UpdateProfileRequest changes the signed-in user's profile fields.
// Empty fields are left untouched.
type UpdateProfileRequest struct {
	Nickname string `json:"nickname,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateShareRequest publishes a share link for the file at URI.
type CreateShareRequest struct {
	URI         string             `json:"uri"`
	Permissions *PermissionSetting `json:"permissions,omitempty"`
	IsPrivate   bool               `json:"is_private,omitempty"`
	Password    string             `json:"password,omitempty"`
	ShareView   bool               `json:"share_view,omitempty"`
	Expire      int                `json:"expire,omitempty"`
	ShowReadme  bool               `json:"show_readme,omitempty"`
}

// EditShareRequest updates an existing share link.
type EditShareRequest struct {
	URI         string             `json:"uri"`
	Permissions *PermissionSetting `json:"permissions,omitempty"`
	ShareView   bool               `json:"share_view,omitempty"`
	Expire      int                `json:"expire,omitempty"`
	ShowReadme  bool               `json:"show_readme,omitempty"`
}

// ShareInfoOptions tunes a share lookup.
type ShareInfoOptions struct {
	Password      string
	CountViews    bool
	OwnerExtended bool
}

// CreateRemoteDownloadRequest submits a URL for server-side download
// into Dst.
type CreateRemoteDownloadRequest struct {
	URL    string `json:"src_url"`
	Dst    string `json:"dst"`
	NodeID int64  `json:"preferred_node_id,omitempty"`
}

// CreateDAVAccountRequest creates a WebDAV credential rooted at URI.
type CreateDAVAccountRequest struct {
	URI             string `json:"uri"`
	Name            string `json:"name"`
	Readonly        bool   `json:"readonly,omitempty"`
	Proxy           bool   `json:"proxy,omitempty"`
	DisableSysFiles bool   `json:"disable_sys_files,omitempty"`
}

// UpdateDAVAccountRequest replaces the mutable fields of a WebDAV
// credential.
type UpdateDAVAccountRequest struct {
	URI             string `json:"uri"`
	Name            string `json:"name"`
	Readonly        bool   `json:"readonly,omitempty"`
	Proxy           bool   `json:"proxy,omitempty"`
	DisableSysFiles bool   `json:"disable_sys_files,omitempty"`
}
