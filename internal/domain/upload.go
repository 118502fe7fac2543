package domain

// UploadKind tells which feature an uploaded object belongs to.
type UploadKind string

const (
	UploadAvatar    UploadKind = "avatars"
	UploadPostImage UploadKind = "posts"
)

// UploadTicket describes a presigned direct upload. The client PUTs the file to
// UploadURL and then stores PublicURL in the profile or post.
type UploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
	PublicURL string `json:"publicUrl"`
}
