package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestTranscodeScalesWideImages(t *testing.T) {
	out, err := Transcode(bytes.NewReader(pngOf(t, 1600, 900)), MaxWidth)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 450, cfg.Height)
}

func TestTranscodeKeepsSmallImages(t *testing.T) {
	out, err := Transcode(bytes.NewReader(pngOf(t, 320, 200)), MaxWidth)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
}

func TestTranscodeRejectsNonImages(t *testing.T) {
	_, err := Transcode(strings.NewReader("not an image"), MaxWidth)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// withDeclaredSize rewrites the IHDR chunk of a png so it declares w x h
// pixels while the file itself stays tiny.
func withDeclaredSize(t *testing.T, raw []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), raw...)
	require.Equal(t, "IHDR", string(out[12:16]))

	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestTranscodeRejectsHugeDimensions(t *testing.T) {
	bomb := withDeclaredSize(t, pngOf(t, 1, 1), 40000, 40000)
	require.Less(t, len(bomb), 1024)

	cfg, err := png.DecodeConfig(bytes.NewReader(bomb))
	require.NoError(t, err)
	require.Equal(t, 40000, cfg.Width)

	_, err = Transcode(bytes.NewReader(bomb), MaxWidth)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestTranscodeAcceptsPixelBudget(t *testing.T) {
	_, err := Transcode(bytes.NewReader(pngOf(t, 2000, 1500)), MaxWidth)
	assert.NoError(t, err)
}

type fakeS3 struct {
	puts    map[string][]byte
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, _ := io.ReadAll(in.Body)
	f.puts[*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestUploaderStoresWebp(t *testing.T) {
	api := &fakeS3{puts: map[string][]byte{}}
	store := &S3Store{api: api, bucket: "imgs", baseURL: "https://cdn.example.com"}
	u := NewUploader(store)

	key, url, err := u.Upload(context.Background(), "shop-1", bytes.NewReader(pngOf(t, 100, 100)))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "services/shop-1/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
	assert.Equal(t, "https://cdn.example.com/"+key, url)
	assert.NotEmpty(t, api.puts[key])

	require.NoError(t, u.Remove(context.Background(), key))
	require.NoError(t, u.Remove(context.Background(), ""))
	assert.Equal(t, []string{key}, api.deletes)
}

func TestUploaderSurfacesStoreErrors(t *testing.T) {
	api := &fakeS3{puts: map[string][]byte{}, err: errors.New("access denied")}
	u := NewUploader(&S3Store{api: api, bucket: "imgs"})

	_, _, err := u.Upload(context.Background(), "shop-1", bytes.NewReader(pngOf(t, 10, 10)))
	assert.ErrorContains(t, err, "access denied")
}

func TestPublicBase(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", publicBase(S3Config{PublicURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://minio:9000/imgs", publicBase(S3Config{Endpoint: "http://minio:9000", Bucket: "imgs"}))
	assert.Equal(t, "https://imgs.s3.us-east-1.amazonaws.com", publicBase(S3Config{Bucket: "imgs", Region: "us-east-1"}))
}
