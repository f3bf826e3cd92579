package ffmpeg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/floostack/transcoder"
	"github.com/floostack/transcoder/ffmpeg"
	"github.com/hbomb79/Booru/pkg/logger"
)

var (
	log = logger.Get("FFmpeg")

	ErrTranscodeFailed = errors.New("ffmpeg transcode failed")
)

type (
	Config struct {
		FfmpegBinPath  string `yaml:"ffmpeg_binary" env:"FFMPEG_BINARY_PATH" env-default:"/usr/bin/ffmpeg"`
		FfprobeBinPath string `yaml:"ffprobe_binary" env:"FFPROBE_BINARY_PATH" env-default:"/usr/bin/ffprobe"`
		ScratchDir     string `yaml:"scratch_dir" env:"FFMPEG_SCRATCH_DIR"`
	}

	Progress struct {
		FramesProcessed string
		CurrentTime     string
		CurrentBitrate  string
		Progress        float64
		Speed           string
	}
)

// WebmOptions are the ffmpeg options used to convert any accepted video in
// to the served format: VP9 video and Vorbis audio inside of a WebM container,
// with the metadata of the source stripped.
func WebmOptions() transcoder.Options {
	videoCodec := "libvpx-vp9"
	audioCodec := "libvorbis"
	audioBitrate := "192k"
	outputFormat := "webm"
	movFlags := "+faststart"
	mapMetadata := "-1"
	overwrite := true

	return &ffmpeg.Options{
		VideoCodec:   &videoCodec,
		AudioCodec:   &audioCodec,
		AudioBitrate: &audioBitrate,
		OutputFormat: &outputFormat,
		MovFlags:     &movFlags,
		MapMetadata:  &mapMetadata,
		Overwrite:    &overwrite,
	}
}

// Transcode runs ffmpeg against the input, writing the result to the output path. This
// method blocks until ffmpeg exits; cancelling the context kills the ffmpeg process. An
// error is returned if ffmpeg could not be started, exits unsuccessfully, or produces no output.
func Transcode(ctx context.Context, config Config, inputPath string, outputPath string, options transcoder.Options, updateHandler func(*Progress)) error {
	trans := ffmpeg.
		New(&ffmpeg.Config{
			ProgressEnabled: true,
			FfmpegBinPath:   config.FfmpegBinPath,
			FfprobeBinPath:  config.FfprobeBinPath,
		}).
		Input(inputPath).
		Output(outputPath).
		WithContext(&ctx)

	progressChannel, err := trans.Start(options)
	if err != nil {
		return parseFfmpegError(err)
	}

	for prog := range progressChannel {
		if updateHandler != nil {
			updateHandler(&Progress{
				FramesProcessed: prog.GetFramesProcessed(),
				CurrentTime:     prog.GetCurrentTime(),
				CurrentBitrate:  prog.GetCurrentBitrate(),
				Progress:        prog.GetProgress(),
				Speed:           prog.GetSpeed(),
			})
		}
	}
	log.Emit(logger.DEBUG, "FFmpeg command for %s has closed progress channel\n", inputPath)

	// The progress channel closes once the command has been waited on, so
	// the process state is populated by this point.
	if cmd := trans.GetRunningCmdInstance(); cmd != nil && cmd.ProcessState != nil && !cmd.ProcessState.Success() {
		return fmt.Errorf("%w: %s", ErrTranscodeFailed, cmd.ProcessState)
	}

	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrTranscodeFailed, ctx.Err())
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("%w: output not produced: %w", ErrTranscodeFailed, err)
	} else if info.Size() == 0 {
		return fmt.Errorf("%w: output is empty", ErrTranscodeFailed)
	}

	return nil
}

func parseFfmpegError(err error) error {
	// Try and pick out some relevant information from the HUGE
	// output log from ffmpeg. The error we get contains lots of information
	// about how the binary was compiled... this is useless info, we just
	// want the 'message' JSON that is encoded inside.
	messageMatcher := regexp.MustCompile(`(?s)message: ({.*})`)
	groups := messageMatcher.FindStringSubmatch(err.Error())
	if len(groups) == 0 {
		return err
	}

	var out map[string]any
	if jsonErr := json.Unmarshal([]byte(groups[1]), &out); jsonErr != nil {
		return errors.New(groups[1])
	}

	ffmpegException, ok := out["error"].(map[string]any)
	if !ok {
		return errors.New(groups[1])
	}

	if message, ok := ffmpegException["string"].(string); ok {
		return errors.New(message)
	}

	return errors.New(groups[1])
}
