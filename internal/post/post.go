package post

import (
	"fmt"
	"time"
)

type Type int

const (
	Image Type = iota
	Video
	Audio
)

func (t Type) String() string {
	switch t {
	case Image:
		return "image"
	case Video:
		return "video"
	case Audio:
		return "audio"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

const (
	MaxSourceLength = 256
	MaxTagLength    = 128
)

type (
	// Post is a single uploaded media item. A post is only safe to serve
	// (and to include in listings) once Processed is true, as before
	// that point the blob for the post may not exist yet.
	Post struct {
		ID            int       `db:"id"`
		Width         int       `db:"width"`
		Height        int       `db:"height"`
		FileSizeBytes int64     `db:"file_size_bytes"`
		Source        *string   `db:"source"`
		UploaderID    int       `db:"uploader_id"`
		UploadDate    time.Time `db:"upload_date"`
		Type          Type      `db:"post_type"`
		Processed     bool      `db:"processed"`
	}

	// NewPost contains the fields provided by the caller when
	// creating a provisional post.
	NewPost struct {
		UploaderID int
		Type       Type
		Width      int
		Height     int
		Source     *string
	}

	TagRelation struct {
		ID     int    `db:"id"`
		PostID int    `db:"post_id"`
		Tag    string `db:"tag"`
	}
)

func (p *Post) String() string {
	return fmt.Sprintf("Post{ID=%d Type=%s Processed=%v}", p.ID, p.Type, p.Processed)
}
