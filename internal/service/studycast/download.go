package studycast

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/oshokin/studycast/internal/audio"
	"github.com/oshokin/studycast/internal/constants"
	"github.com/oshokin/studycast/internal/logger"
	"github.com/oshokin/studycast/internal/store"
	"github.com/oshokin/studycast/internal/utils"
)

const (
	// File options for overwriting an existing file.
	overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY
)

// Download saves the audio of a podcast into directory, tags it and returns the file path.
// An existing file is kept unless downloads are set to replace.
func (s *ServiceImpl) Download(ctx context.Context, podcastID, directory string) (string, error) {
	podcast, err := s.store.GetPodcast(ctx, podcastID)
	if err != nil {
		return "", err
	}

	if !podcast.HasAudio() {
		s.notifier.Notify(ctx, notifyAudioNotReady)

		return "", fmt.Errorf("%w: %s", ErrAudioNotReady, podcast.Topic)
	}

	if err = os.MkdirAll(directory, constants.DefaultFolderPermissions); err != nil {
		return "", fmt.Errorf("failed to create output path: %w", err)
	}

	extension := audio.ExtensionFromName(podcast.Audio(), "")
	filename := utils.SetFileExtension(utils.SanitizeFilename(downloadName(podcast)), extension, false)
	trackPath := filepath.Join(directory, filename)

	exists, err := utils.IsFileExist(trackPath)
	if err != nil {
		return "", err
	}

	if exists && !s.opts.ReplaceDownloads {
		logger.Infof(ctx, "File '%s' already exists, skipping download", trackPath)

		return trackPath, nil
	}

	fetchResult, err := s.downloader.DownloadFromURL(ctx, podcast.Audio())
	if err != nil {
		return "", fmt.Errorf("failed to fetch audio: %w", err)
	}

	defer fetchResult.Body.Close() //nolint:errcheck // Error on close is not critical here.

	tempPath := trackPath + constants.ExtensionPart

	written, err := s.writePart(ctx, tempPath, fetchResult.Body, fetchResult.TotalBytes)
	if err != nil {
		return "", err
	}

	err = s.tagProcessor.WriteTags(ctx, &WriteTagsRequest{
		Path:      tempPath,
		Extension: extension,
		Tags:      podcastTags(podcast, s.catalog.SavedDescriptor(podcast).SubjectAccent),
	})
	if err != nil {
		// Untagged audio is still worth keeping.
		logger.Warnf(ctx, "Failed to write tags to '%s': %v", trackPath, err)
	}

	if err = os.Rename(tempPath, trackPath); err != nil {
		_ = os.Remove(tempPath)

		return "", fmt.Errorf("failed to move downloaded file: %w", err)
	}

	logger.Infof(ctx, "Saved '%s' (%s)", trackPath, humanize.Bytes(uint64(written))) //nolint:gosec // written is never negative.

	return trackPath, nil
}

// writePart copies body into a .part file that is removed unless the copy completes.
func (s *ServiceImpl) writePart(ctx context.Context, tempPath string, body io.Reader, totalBytes int64) (int64, error) {
	f, err := os.OpenFile(filepath.Clean(tempPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var succeeded bool

	defer func() {
		closeErr := f.Close()

		if !succeeded {
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempPath, removeErr, closeErr)
			}
		}
	}()

	var writer io.Writer = f

	if s.opts.ShowProgress {
		writer = io.MultiWriter(f, progressbar.DefaultBytes(totalBytes, "Downloading"))
	}

	written, err := io.Copy(writer, readerWithContext(ctx, body))
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if totalBytes >= 0 && written != totalBytes {
		return 0, fmt.Errorf("%w: wrote %d bytes, expected %d bytes", ErrIncompleteDownload, written, totalBytes)
	}

	succeeded = true

	return written, nil
}

func downloadName(podcast *store.Podcast) string {
	return fmt.Sprintf("%s - %s (%s, %s %s)", podcast.Subject, podcast.Topic, podcast.Mode, podcast.ExamBoard, podcast.Level)
}

func podcastTags(podcast *store.Podcast, accent string) PodcastTags {
	tags := PodcastTags{
		Title:      podcast.Topic,
		Subject:    podcast.Subject,
		Topic:      podcast.Topic,
		Mode:       podcast.Mode,
		ExamBoard:  podcast.ExamBoard,
		Level:      podcast.Level,
		Transcript: podcast.Content,
		Accent:     accent,
	}

	if !podcast.CreatedAt.IsZero() {
		tags.Year = strconv.Itoa(podcast.CreatedAt.Year())
	}

	return tags
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context //nolint:containedctx // Checked on every read.
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx: ctx, r: r}
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}
