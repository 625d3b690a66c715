package attachment

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Stage(t *testing.T) {
	t.Run("accepts a file under the limit", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		err := r.Stage("logo.png", 5, strings.NewReader("12345"))

		require.NoError(t, err)
		require.NotNil(t, r.Staged())
		assert.Equal(t, "logo.png", r.Staged().Name)
		assert.Equal(t, int64(5), r.Staged().Size)
	})

	t.Run("rejects an unsupported extension before the size check", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		err := r.Stage("logo.gif", MaxLogoBytes*2, strings.NewReader("x"))

		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.Nil(t, r.Staged())
	})

	t.Run("rejects an oversized file and clears the pending one", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		require.NoError(t, r.Stage("first.jpg", 3, strings.NewReader("abc")))
		require.NotNil(t, r.Staged())

		err := r.Stage("big.png", MaxLogoBytes+1, strings.NewReader("x"))

		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.Nil(t, r.Staged())
	})

	t.Run("rejects when the actual body exceeds the declared size", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		body := strings.NewReader(strings.Repeat("a", MaxLogoBytes+10))
		err := r.Stage("sneaky.png", 5, body)

		assert.ErrorIs(t, err, ErrFileTooLarge)
		assert.Nil(t, r.Staged())
	})

	t.Run("a new selection supersedes the previous staged file", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		require.NoError(t, r.Stage("first.jpg", 3, strings.NewReader("abc")))
		firstPath := r.Staged().path

		require.NoError(t, r.Stage("second.png", 4, strings.NewReader("defg")))

		assert.Equal(t, "second.png", r.Staged().Name)
		_, statErr := os.Stat(firstPath)
		assert.True(t, os.IsNotExist(statErr), "superseded temp file must be removed")
	})
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("staged file wins over an existing url", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		require.NoError(t, r.Stage("logo.png", 3, strings.NewReader("abc")))

		ref := r.Resolve("https://x/img.png")

		assert.Equal(t, RefUpload, ref.Kind)
		require.NotNil(t, ref.File)
		assert.Equal(t, "logo.png", ref.File.Name)
	})

	t.Run("existing url is retained when nothing is staged", func(t *testing.T) {
		r := NewResolver()

		ref := r.Resolve("https://x/img.png")

		assert.Equal(t, RefRetain, ref.Kind)
		assert.Equal(t, "https://x/img.png", ref.URL)
	})

	t.Run("no image at all", func(t *testing.T) {
		r := NewResolver()

		ref := r.Resolve("")

		assert.Equal(t, RefNone, ref.Kind)
	})

	t.Run("oversized rejection leaves the existing url untouched", func(t *testing.T) {
		r := NewResolver()
		defer func() { _ = r.Close() }()

		err := r.Stage("big.png", MaxLogoBytes+1, strings.NewReader("x"))
		require.ErrorIs(t, err, ErrFileTooLarge)

		ref := r.Resolve("https://x/img.png")

		assert.Equal(t, RefRetain, ref.Kind)
		assert.Equal(t, "https://x/img.png", ref.URL)
	})
}

func TestResolver_Close(t *testing.T) {
	r := NewResolver()
	require.NoError(t, r.Stage("logo.png", 3, strings.NewReader("abc")))
	path := r.Staged().path

	require.NoError(t, r.Close())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "temp file must not leak past the resolver's lifetime")

	// Second close is a no-op.
	assert.NoError(t, r.Close())
}

func TestStagedFile_Open(t *testing.T) {
	r := NewResolver()
	defer func() { _ = r.Close() }()

	require.NoError(t, r.Stage("logo.jpeg", 3, strings.NewReader("abc")))

	rc, err := r.Staged().Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	buf := make([]byte, 3)
	_, err = rc.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(buf))
}
