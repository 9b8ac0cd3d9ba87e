package studycast

//go:generate $MOCKGEN -source=tag_processor.go -destination=mocks/tag_processor_mock.go

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"

	"github.com/oshokin/studycast/internal/constants"
	"github.com/oshokin/studycast/internal/logger"
)

const (
	tagArtist = "StudyCast"
	tagGenre  = "Podcast"

	// coverSwatchSize is the edge of the square cover in pixels.
	coverSwatchSize = 64
	// coverMIMEType is the MIME type of the generated cover.
	coverMIMEType = "image/png"
)

// TagProcessor writes metadata tags to downloaded podcasts.
type TagProcessor interface {
	WriteTags(ctx context.Context, req *WriteTagsRequest) error
}

// WriteTagsRequest contains parameters for writing metadata to audio files.
type WriteTagsRequest struct {
	// Path is the file to tag.
	Path string
	// Extension selects the tag format, for example ".mp3".
	Extension string
	// Tags are the values to write.
	Tags PodcastTags
}

// PodcastTags are the metadata values of one podcast.
type PodcastTags struct {
	// Title is the track title.
	Title string
	// Subject becomes the album.
	Subject string
	// Topic is the covered topic.
	Topic string
	// Mode is the studio mode.
	Mode string
	// ExamBoard is the exam board.
	ExamBoard string
	// Level is the tier.
	Level string
	// Year is the creation year.
	Year string
	// Transcript is stored as lyrics.
	Transcript string
	// Accent is the subject hex color; a swatch of it becomes the front cover.
	Accent string
}

// TagProcessorImpl provides the default implementation of TagProcessor.
type TagProcessorImpl struct{}

// extractFLACCommentResult contains the result of extracting FLAC comment metadata.
type extractFLACCommentResult struct {
	// Comment is the FLAC Vorbis comment metadata block.
	Comment *flacvorbis.MetaDataBlockVorbisComment
	// Index is the index of the comment block in the FLAC file metadata (-1 if not found).
	Index int
}

var (
	// ErrEmptyTrackPath indicates that the file path is empty.
	ErrEmptyTrackPath = errors.New("track path cannot be empty")
	// ErrInvalidAccent indicates an accent that is not a #RRGGBB color.
	ErrInvalidAccent = errors.New("accent must be a #RRGGBB color")
)

// NewTagProcessor creates a new TagProcessor instance.
func NewTagProcessor() TagProcessor {
	return new(TagProcessorImpl)
}

// WriteTags writes metadata in the format of the file extension. WAV files are left untagged.
func (tp *TagProcessorImpl) WriteTags(ctx context.Context, req *WriteTagsRequest) error {
	if req.Path == "" {
		return ErrEmptyTrackPath
	}

	cover := tp.coverFor(ctx, req.Tags.Accent)

	switch strings.ToLower(req.Extension) {
	case constants.ExtensionFLAC:
		return tp.writeFLACTags(ctx, req, cover)
	case constants.ExtensionMP3:
		return tp.writeMP3Tags(req, cover)
	default:
		logger.Debugf(ctx, "No tag format for '%s', leaving it untagged", req.Path)

		return nil
	}
}

// coverFor renders the accent swatch, or returns nil when there is no usable accent.
func (tp *TagProcessorImpl) coverFor(ctx context.Context, accent string) []byte {
	if strings.TrimSpace(accent) == "" {
		return nil
	}

	cover, err := coverSwatch(accent)
	if err != nil {
		logger.Warnf(ctx, "Skipping cover: %v", err)

		return nil
	}

	return cover
}

func (tp *TagProcessorImpl) writeFLACTags(ctx context.Context, req *WriteTagsRequest, cover []byte) error {
	f, err := flac.ParseFile(filepath.Clean(req.Path))
	if err != nil {
		return err
	}

	commentResult := tp.extractFLACComment(f)

	tag := commentResult.Comment
	if tag == nil {
		tag = flacvorbis.New()
	}

	if err = tp.addFLACTags(tag, req.Tags); err != nil {
		return err
	}

	tagMeta := tag.Marshal()
	if commentResult.Index >= 0 {
		f.Meta[commentResult.Index] = &tagMeta
	} else {
		f.Meta = append(f.Meta, &tagMeta)
	}

	tp.embedFLACCover(ctx, f, cover)

	return f.Save(req.Path)
}

// embedFLACCover replaces any front cover of f with the given PNG.
func (tp *TagProcessorImpl) embedFLACCover(ctx context.Context, f *flac.File, cover []byte) {
	if cover == nil {
		return
	}

	picture, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "", cover, coverMIMEType)
	if err != nil {
		logger.Errorf(ctx, "Failed to embed cover to FLAC: %v", err)

		return
	}

	kept := f.Meta[:0]

	for _, meta := range f.Meta {
		if meta.Type == flac.Picture {
			existing, parseErr := flacpicture.ParseFromMetaDataBlock(*meta)
			if parseErr == nil && existing.PictureType == flacpicture.PictureTypeFrontCover {
				continue
			}
		}

		kept = append(kept, meta)
	}

	pictureMeta := picture.Marshal()
	f.Meta = append(kept, &pictureMeta)
}

func (tp *TagProcessorImpl) extractFLACComment(f *flac.File) *extractFLACCommentResult {
	for idx, meta := range f.Meta {
		if meta.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err == nil {
			return &extractFLACCommentResult{Comment: comment, Index: idx}
		}
	}

	return &extractFLACCommentResult{Comment: nil, Index: -1}
}

func (tp *TagProcessorImpl) addFLACTags(tag *flacvorbis.MetaDataBlockVorbisComment, tags PodcastTags) error {
	flacTags := []struct {
		key   string
		value string
	}{
		{key: flacvorbis.FIELD_TITLE, value: tags.Title},
		{key: flacvorbis.FIELD_ALBUM, value: tags.Subject},
		{key: flacvorbis.FIELD_ARTIST, value: tagArtist},
		{key: flacvorbis.FIELD_GENRE, value: tagGenre},
		{key: flacvorbis.FIELD_DATE, value: tags.Year},
		{key: "TOPIC", value: tags.Topic},
		{key: "MODE", value: tags.Mode},
		{key: "EXAM_BOARD", value: tags.ExamBoard},
		{key: "LEVEL", value: tags.Level},
		{key: "LYRICS", value: strings.TrimSpace(tags.Transcript)},
	}

	for _, t := range flacTags {
		if t.value == "" {
			continue
		}

		if err := tag.Add(t.key, t.value); err != nil {
			return err
		}
	}

	return nil
}

func (tp *TagProcessorImpl) writeMP3Tags(req *WriteTagsRequest, cover []byte) error {
	//nolint:exhaustruct // ParseFrames intentionally omitted when Parse=false (parsing disabled).
	tag, err := id3v2.Open(req.Path, id3v2.Options{Parse: false})
	if err != nil {
		return err
	}

	defer tag.Close()

	tags := req.Tags

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(tags.Title)
	tag.SetAlbum(tags.Subject)
	tag.SetArtist(tagArtist)
	tag.SetGenre(tagGenre)
	tag.SetYear(tags.Year)

	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    id3v2.EnglishISO6392Code,
		Description: "Exam",
		Text:        strings.Join([]string{tags.Mode, tags.ExamBoard, tags.Level}, " / "),
	})

	if transcript := strings.TrimSpace(tags.Transcript); transcript != "" {
		//nolint:exhaustruct // ContentDescriptor not available in source data.
		tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: id3v2.EnglishISO6392Code,
			Lyrics:   transcript,
		})
	}

	if cover != nil {
		//nolint:exhaustruct // Description field intentionally empty for cover images.
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    coverMIMEType,
			PictureType: id3v2.PTFrontCover,
			Picture:     cover,
		})
	}

	return tag.Save()
}

// coverSwatch renders a square PNG filled with a #RRGGBB color.
func coverSwatch(accent string) ([]byte, error) {
	fill, err := parseAccent(accent)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, coverSwatchSize, coverSwatchSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}

	return buf.Bytes(), nil
}

func parseAccent(accent string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(accent), "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidAccent, accent)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidAccent, accent)
	}

	//nolint:gosec // Each channel is masked to a byte.
	return color.RGBA{R: uint8(rgb >> 16 & 0xFF), G: uint8(rgb >> 8 & 0xFF), B: uint8(rgb & 0xFF), A: 0xFF}, nil
}
