package ffmpeg

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/hbomb79/Booru/pkg/logger"
)

// Runner adapts the ffprobe/ffmpeg helpers to in-memory payloads. ffmpeg
// cannot seek within a pipe (which WebM muxing and most demuxers need), so
// payloads are staged to scratch files which are removed before returning.
type Runner struct {
	config Config
}

func NewRunner(config Config) *Runner {
	return &Runner{config: config}
}

// ProbeVideo returns the dimensions of the first video stream in the payload.
func (runner *Runner) ProbeVideo(payload []byte) (*VideoInfo, error) {
	input, err := runner.stage(payload)
	if err != nil {
		return nil, err
	}
	defer runner.remove(input)

	return ProbeVideo(runner.config, input)
}

// TranscodeWebm converts the payload to WebM, copying the result to the
// writer provided once ffmpeg completes successfully. The output is staged
// rather than piped because the WebM muxer seeks back to write the cues and
// duration, which a pipe cannot support.
func (runner *Runner) TranscodeWebm(ctx context.Context, payload []byte, dst io.Writer) error {
	input, err := runner.stage(payload)
	if err != nil {
		return err
	}
	defer runner.remove(input)

	output := input + ".webm"
	defer runner.remove(output)

	progressHandler := func(prog *Progress) {
		log.Emit(logger.VERBOSE, "Transcode of %s: %.2f%% (speed %s)\n", filepath.Base(input), prog.Progress, prog.Speed)
	}
	if err := Transcode(ctx, runner.config, input, output, WebmOptions(), progressHandler); err != nil {
		return err
	}

	file, err := os.Open(output)
	if err != nil {
		return fmt.Errorf("failed to open transcoded output: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return fmt.Errorf("failed to copy transcoded output: %w", err)
	}

	return nil
}

func (runner *Runner) stage(payload []byte) (string, error) {
	file, err := os.CreateTemp(runner.config.ScratchDir, "booru-*.src")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(payload); err != nil {
		runner.remove(file.Name())
		return "", fmt.Errorf("failed to write scratch file: %w", err)
	}

	log.Emit(logger.VERBOSE, "Staged %s payload to %s\n", humanize.Bytes(uint64(len(payload))), file.Name())
	return file.Name(), nil
}

func (runner *Runner) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Emit(logger.WARNING, "Failed to remove scratch file %s: %v\n", path, err)
	}
}
