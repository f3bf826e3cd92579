package ffmpeg

import (
	"errors"
	"fmt"

	"github.com/floostack/transcoder/ffmpeg"
)

var ErrNoVideoStream = errors.New("no video stream found")

// VideoInfo is the subset of the ffprobe metadata the upload path relies on.
type VideoInfo struct {
	Width    int
	Height   int
	Duration string
	Format   string
}

// ProbeVideo reads the container metadata of the file at the path provided
// using ffprobe, returning the dimensions of the first video stream.
func ProbeVideo(config Config, path string) (*VideoInfo, error) {
	metadata, err := ffmpeg.
		New(&ffmpeg.Config{FfmpegBinPath: config.FfmpegBinPath, FfprobeBinPath: config.FfprobeBinPath}).
		Input(path).
		GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("failed to extract file metadata information using ffprobe: %w", parseFfmpegError(err))
	}

	for _, stream := range metadata.GetStreams() {
		if stream.GetCodecType() != "video" {
			continue
		}

		return &VideoInfo{
			Width:    stream.GetWidth(),
			Height:   stream.GetHeight(),
			Duration: metadata.GetFormat().GetDuration(),
			Format:   metadata.GetFormat().GetFormatName(),
		}, nil
	}

	return nil, ErrNoVideoStream
}
