package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/texfmt/texture"
)

// probeResult is the subset of ffprobe's JSON output we need.
type probeResult struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		PixFmt    string `json:"pix_fmt"`
	} `json:"streams"`
}

// rawPixFmts maps a channel count to the ffmpeg rawvideo pixel format with
// the matching 8-bit layout.
var rawPixFmts = map[int]string{
	1: "gray",
	2: "ya8",
	3: "rgb24",
	4: "rgba",
}

// channelsForPixFmt guesses how many channels a decoder pixel format carries.
func channelsForPixFmt(pixFmt string) int {
	switch {
	case strings.HasPrefix(pixFmt, "gray"):
		return 1
	case strings.HasPrefix(pixFmt, "ya"):
		return 2
	case strings.Contains(pixFmt, "a"):
		// rgba, bgra, argb, yuva420p, gbrap, ...
		return 4
	default:
		return 3
	}
}

// ffmpeg-go always runs ffprobe from PATH; probePath redirects it while
// probeMu is held.
var (
	probeMu   sync.Mutex
	probePath string
)

func init() {
	ffmpeg.GlobalCommandOptions = append(ffmpeg.GlobalCommandOptions, useProbePath)
}

// useProbePath points ffprobe commands at probePath when one is set.
func useProbePath(cmd *exec.Cmd) {
	if len(cmd.Args) == 0 || cmd.Args[0] != "ffprobe" || probePath == "" {
		return
	}
	cmd.Path = probePath
	cmd.Args[0] = probePath
	cmd.Err = nil
}

// ffprobePath returns the ffprobe executable to use: opt.FFprobePath, or the
// ffprobe next to opt.FFmpegPath. Empty means ffprobe from PATH.
func ffprobePath(opt Options) string {
	if opt.FFprobePath != "" {
		return opt.FFprobePath
	}
	if opt.FFmpegPath == "" || !strings.ContainsRune(opt.FFmpegPath, filepath.Separator) {
		return ""
	}
	return filepath.Join(filepath.Dir(opt.FFmpegPath), "ffprobe"+filepath.Ext(opt.FFmpegPath))
}

// probe returns width, height and pixel format of the first video stream.
func probe(ctx context.Context, path string, opt Options) (int, int, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, "", err
	}
	var timeout time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		if timeout = time.Until(deadline); timeout <= 0 {
			return 0, 0, "", context.DeadlineExceeded
		}
	}

	probeMu.Lock()
	probePath = ffprobePath(opt)
	out, err := ffmpeg.ProbeWithTimeout(path, timeout, ffmpeg.KwArgs{"select_streams": "v:0"})
	probePath = ""
	probeMu.Unlock()
	if err != nil {
		return 0, 0, "", fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return parseProbe(out)
}

func parseProbe(out string) (int, int, string, error) {
	var res probeResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		return 0, 0, "", fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	for _, stream := range res.Streams {
		if stream.CodecType == "video" && stream.Width > 0 && stream.Height > 0 {
			return stream.Width, stream.Height, stream.PixFmt, nil
		}
	}
	return 0, 0, "", fmt.Errorf("no video stream found")
}

// Decode uses ffmpeg to decode the first frame of any image or video file ffmpeg
// understands into 8-bit pixel data. The channel count follows the file unless
// opt.Channels forces one; counts outside 1..4 fail with texture.ErrUnsupported.
func Decode(ctx context.Context, path string, opt Options) (*Pixels, error) {
	width, height, pixFmt, err := probe(ctx, path, opt)
	if err != nil {
		return nil, err
	}

	numChannels := opt.Channels
	if numChannels == 0 {
		numChannels = channelsForPixFmt(pixFmt)
	}
	outPixFmt, ok := rawPixFmts[numChannels]
	if !ok {
		// Let the registry report the unsupported count.
		_, err = texture.DefaultPixelFormat(numChannels)
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Infof("Decoding %s (%dx%d %s) as %s", path, width, height, pixFmt, outPixFmt)

	var stdout, stderr bytes.Buffer
	stream := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"format":  "rawvideo",
			"pix_fmt": outPixFmt,
			"vframes": 1,
		}).
		WithOutput(&stdout).
		WithErrorOutput(&stderr)
	if opt.FFmpegPath != "" {
		stream = stream.SetFfmpegPath(opt.FFmpegPath)
	}

	cmd := stream.Compile()
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		cmd.Process.Kill()
		<-done
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, fmt.Errorf("ffmpeg failed to decode %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}

	return newPixels(texture.Type2D, numChannels, texture.UByte, width, height, 1, stdout.Bytes(), opt)
}
