package model

import (
	"fmt"
	"io"
	"path"
	"time"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	// PostCollection is the document collection holding post records.
	PostCollection = "tweets"
	// MaxBodyLength is the post body limit in UTF-16 code units.
	MaxBodyLength = 180
)

// Post is a feed entry.
type Post struct {
	ID                string
	Body              string
	AuthorID          string
	AuthorDisplayName string
	CreatedAt         time.Time
	AttachmentRef     string
}

// HasAttachment reports whether an attachment upload completed for the post.
func (p Post) HasAttachment() bool {
	return p.AttachmentRef != ""
}

// AttachmentKey returns the blob path of the post's attachment.
func (p Post) AttachmentKey() string {
	return AttachmentKey(p.AuthorID, p.ID)
}

// AttachmentKey derives the blob path for a post from its author and ID.
func AttachmentKey(authorID, postID string) string {
	return path.Join(PostCollection, authorID, postID)
}

// Attachment is an image submitted with a new post.
type Attachment struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// BodyLength returns the length of body in UTF-16 code units.
func BodyLength(body string) int {
	return len(utf16.Encode([]rune(body)))
}

// ValidateBody checks that body is valid UTF-8 within the length bounds.
func ValidateBody(body string) error {
	if !utf8.ValidString(body) {
		return fmt.Errorf("post body is not valid UTF-8")
	}
	n := BodyLength(body)
	if n == 0 {
		return fmt.Errorf("post body is required")
	}
	if n > MaxBodyLength {
		return fmt.Errorf("post body too long (%d > %d)", n, MaxBodyLength)
	}
	return nil
}
