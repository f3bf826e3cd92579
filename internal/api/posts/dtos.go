package posts

import (
	"time"

	"github.com/hbomb79/Booru/internal/api/util"
	"github.com/hbomb79/Booru/internal/content"
	"github.com/hbomb79/Booru/internal/listing"
	"github.com/hbomb79/Booru/internal/post"
	"github.com/hbomb79/Booru/internal/upload"
)

type (
	PostDto struct {
		ID            int       `json:"id"`
		Type          string    `json:"type"`
		Width         int       `json:"width"`
		Height        int       `json:"height"`
		FileSizeBytes int64     `json:"file_size_bytes"`
		Source        *string   `json:"source,omitempty"`
		UploaderID    int       `json:"uploader_id"`
		UploadDate    time.Time `json:"upload_date"`
		MediaPath     string    `json:"media_path"`
		Tags          []string  `json:"tags,omitempty"`
	}

	PageDto struct {
		Posts     []PostDto `json:"posts"`
		Total     int       `json:"total"`
		Index     uint64    `json:"index"`
		Count     int       `json:"count"`
		NextIndex uint64    `json:"next_index"`
	}

	UploadReceiptDto struct {
		PostID     int    `json:"post_id"`
		Type       string `json:"type"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		Processing bool   `json:"processing"`
	}

	ProcessingDto struct {
		PostID     int  `json:"post_id"`
		Processing bool `json:"processing"`
	}

	TagRequest struct {
		Tag string `json:"tag" validate:"required"`
	}
)

func NewPostDto(model *post.Post) PostDto {
	return PostDto{
		ID:            model.ID,
		Type:          model.Type.String(),
		Width:         model.Width,
		Height:        model.Height,
		FileSizeBytes: model.FileSizeBytes,
		Source:        model.Source,
		UploaderID:    model.UploaderID,
		UploadDate:    model.UploadDate,
		MediaPath:     "/media/" + content.Key(model.ID, model.Type),
	}
}

func NewPageDto(page *listing.Page) PageDto {
	return PageDto{
		Posts:     util.ApplyConversion(page.Items, NewPostDto),
		Total:     page.Total,
		Index:     page.Index,
		Count:     page.Count,
		NextIndex: page.NextIndex,
	}
}

func newReceiptDto(receipt *upload.Receipt) UploadReceiptDto {
	return UploadReceiptDto{
		PostID:     receipt.PostID,
		Type:       receipt.Type.String(),
		Width:      receipt.Width,
		Height:     receipt.Height,
		Processing: receipt.Processing,
	}
}
