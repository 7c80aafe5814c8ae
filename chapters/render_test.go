package chapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chapterizer/models"
)

func TestBuild(t *testing.T) {
	boundaries := frames(200, 400)

	chs := Build(boundaries)
	require.Len(t, chs, 2)

	assert.Equal(t, models.Chapter{Index: 1, StartSeconds: 0, EndSeconds: 200, Title: "Chapter 1"}, chs[0])
	assert.Equal(t, models.Chapter{Index: 2, StartSeconds: 200, EndSeconds: 400, Title: "Chapter 2"}, chs[1])
	require.NoError(t, ValidateChapters(chs))
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, Build(nil))
}

func TestRender_DocumentedExample(t *testing.T) {
	doc := Render(Build(frames(200, 400)))

	expected := ";FFMETADATA1\n" +
		"[CHAPTER]\nTIMEBASE=1/1\nSTART=0\nEND=200\ntitle=Chapter 1\n" +
		"[CHAPTER]\nTIMEBASE=1/1\nSTART=200\nEND=400\ntitle=Chapter 2\n"
	assert.Equal(t, expected, doc)
}

func TestRender_HeaderOnlyForZeroChapters(t *testing.T) {
	assert.Equal(t, ";FFMETADATA1\n", Render(nil))

	// A lone keyframe never becomes a boundary, so it also renders header-only.
	boundaries := SelectBoundaries(frames(500), DefaultMinGap)
	assert.Equal(t, ";FFMETADATA1\n", Render(Build(boundaries)))
}

func TestParse_RoundTrip(t *testing.T) {
	original := Build(frames(200, 400, 1000))
	doc := Render(original)

	parsed, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestParse_HeaderOnly(t *testing.T) {
	parsed, err := Parse(strings.NewReader(";FFMETADATA1\n"))
	require.NoError(t, err)
	assert.Empty(t, parsed)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "Empty document", doc: ""},
		{name: "Wrong header", doc: "FFMETADATA1\n"},
		{name: "Bad start value", doc: ";FFMETADATA1\n[CHAPTER]\nTIMEBASE=1/1\nSTART=abc\nEND=10\ntitle=x\n"},
		{name: "Unsupported time base", doc: ";FFMETADATA1\n[CHAPTER]\nTIMEBASE=1/1000\nSTART=0\nEND=10\ntitle=x\n"},
		{name: "Inverted range", doc: ";FFMETADATA1\n[CHAPTER]\nTIMEBASE=1/1\nSTART=20\nEND=10\ntitle=x\n"},
		{name: "Missing title", doc: ";FFMETADATA1\n[CHAPTER]\nTIMEBASE=1/1\nSTART=0\nEND=10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestValidateChapters(t *testing.T) {
	tests := []struct {
		name          string
		chapters      []models.Chapter
		wantError     bool
		errorContains string
	}{
		{name: "Empty table", chapters: nil, wantError: false},
		{
			name: "Valid contiguous table",
			chapters: []models.Chapter{
				{Index: 1, StartSeconds: 0, EndSeconds: 200, Title: "Chapter 1"},
				{Index: 2, StartSeconds: 200, EndSeconds: 400, Title: "Chapter 2"},
			},
			wantError: false,
		},
		{
			name: "First chapter not at zero",
			chapters: []models.Chapter{
				{Index: 1, StartSeconds: 10, EndSeconds: 200, Title: "Chapter 1"},
			},
			wantError:     true,
			errorContains: "must start at 0",
		},
		{
			name: "Gap between chapters",
			chapters: []models.Chapter{
				{Index: 1, StartSeconds: 0, EndSeconds: 200, Title: "Chapter 1"},
				{Index: 2, StartSeconds: 250, EndSeconds: 400, Title: "Chapter 2"},
			},
			wantError:     true,
			errorContains: "not contiguous",
		},
		{
			name: "Out of order indices",
			chapters: []models.Chapter{
				{Index: 2, StartSeconds: 0, EndSeconds: 200, Title: "Chapter 1"},
			},
			wantError:     true,
			errorContains: "incorrect index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChapters(tt.chapters)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
