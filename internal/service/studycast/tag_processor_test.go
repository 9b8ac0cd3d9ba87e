package studycast

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/oshokin/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTagProcessor_MP3 tests that MP3 tags can be read back.
func TestTagProcessor_MP3(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lesson.mp3")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xFB, 0x90, 0x00}, 0o600))

	err := NewTagProcessor().WriteTags(context.Background(), &WriteTagsRequest{
		Path:      path,
		Extension: ".MP3",
		Tags: PodcastTags{
			Title:      "Atomic Structure",
			Subject:    "Chemistry",
			Mode:       "FocusCast",
			ExamBoard:  "AQA",
			Level:      "Foundation",
			Year:       "2026",
			Transcript: "Atoms are tiny.",
			Accent:     "#10B981",
		},
	})
	require.NoError(t, err)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)

	defer tag.Close()

	assert.Equal(t, "Atomic Structure", tag.Title())
	assert.Equal(t, "Chemistry", tag.Album())
	assert.Equal(t, "StudyCast", tag.Artist())
	assert.Equal(t, "2026", tag.Year())

	pictures := tag.GetFrames(tag.CommonID("Attached picture"))
	require.Len(t, pictures, 1)

	picture, ok := pictures[0].(id3v2.PictureFrame)
	require.True(t, ok)
	assert.Equal(t, "image/png", picture.MimeType)
	assertSwatch(t, picture.Picture, 0x10, 0xB9, 0x81)
}

// writeBareFLAC writes a FLAC stream holding only an empty STREAMINFO block.
func writeBareFLAC(t *testing.T) string {
	t.Helper()

	data := append([]byte("fLaC"), 0x80, 0x00, 0x00, 0x22)
	data = append(data, make([]byte, 0x22)...)

	path := filepath.Join(t.TempDir(), "lesson.flac")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func assertSwatch(t *testing.T, data []byte, r, g, b uint32) {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, coverSwatchSize, img.Bounds().Dx())

	gotR, gotG, gotB, gotA := img.At(coverSwatchSize/2, coverSwatchSize/2).RGBA()
	assert.Equal(t, []uint32{r, g, b, 0xFF}, []uint32{gotR >> 8, gotG >> 8, gotB >> 8, gotA >> 8})
}

// TestTagProcessor_FLAC tests the Vorbis comments and the accent cover of a FLAC download.
func TestTagProcessor_FLAC(t *testing.T) {
	t.Parallel()

	path := writeBareFLAC(t)
	processor := NewTagProcessor()
	req := &WriteTagsRequest{
		Path:      path,
		Extension: ".flac",
		Tags: PodcastTags{
			Title:     "Bonding",
			Subject:   "Chemistry",
			Topic:     "Bonding",
			Mode:      "SleepCast",
			ExamBoard: "WJEC",
			Accent:    "#10B981",
		},
	}

	require.NoError(t, processor.WriteTags(context.Background(), req))

	// Tagging twice keeps a single front cover.
	req.Tags.Accent = "#EC4899"
	require.NoError(t, processor.WriteTags(context.Background(), req))

	f, err := flac.ParseFile(path)
	require.NoError(t, err)

	var (
		comment  *flacvorbis.MetaDataBlockVorbisComment
		pictures []*flacpicture.MetadataBlockPicture
	)

	for _, meta := range f.Meta {
		switch meta.Type {
		case flac.VorbisComment:
			comment, err = flacvorbis.ParseFromMetaDataBlock(*meta)
			require.NoError(t, err)
		case flac.Picture:
			picture, parseErr := flacpicture.ParseFromMetaDataBlock(*meta)
			require.NoError(t, parseErr)

			pictures = append(pictures, picture)
		default:
		}
	}

	require.NotNil(t, comment)

	board, err := comment.Get("EXAM_BOARD")
	require.NoError(t, err)
	assert.Contains(t, board, "WJEC")

	require.Len(t, pictures, 1)
	assert.Equal(t, flacpicture.PictureTypeFrontCover, pictures[0].PictureType)
	assert.Equal(t, "image/png", pictures[0].MIME)
	assert.Equal(t, uint32(coverSwatchSize), pictures[0].Width)
	assertSwatch(t, pictures[0].ImageData, 0xEC, 0x48, 0x99)
}

// TestTagProcessor_InvalidAccent tests that a malformed accent only drops the cover.
func TestTagProcessor_InvalidAccent(t *testing.T) {
	t.Parallel()

	path := writeBareFLAC(t)

	require.NoError(t, NewTagProcessor().WriteTags(context.Background(), &WriteTagsRequest{
		Path:      path,
		Extension: ".flac",
		Tags:      PodcastTags{Title: "Bonding", Accent: "teal"},
	}))

	f, err := flac.ParseFile(path)
	require.NoError(t, err)

	for _, meta := range f.Meta {
		assert.NotEqual(t, flac.Picture, meta.Type)
	}

	_, err = coverSwatch("#12345G")
	require.ErrorIs(t, err, ErrInvalidAccent)
}

// TestTagProcessor_Untagged tests formats without tags and the empty path.
func TestTagProcessor_Untagged(t *testing.T) {
	t.Parallel()

	processor := NewTagProcessor()

	require.NoError(t, processor.WriteTags(context.Background(), &WriteTagsRequest{
		Path:      filepath.Join(t.TempDir(), "lesson.wav"),
		Extension: ".wav",
	}))

	require.ErrorIs(t, processor.WriteTags(context.Background(), &WriteTagsRequest{Extension: ".mp3"}), ErrEmptyTrackPath)
}
