package imageopt

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gen2brain/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/storefront-ai/internal/apperror"
)

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: uint8((x + y) % 256), A: 255})
		}
	}
	return img
}

// noise does not compress well as PNG, so re-encoding it always saves bytes.
func noise(w, h int) *image.NRGBA {
	rng := rand.New(rand.NewPCG(1, 2))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func TestOptimizeDownscalesToBounds(t *testing.T) {
	o := New(DefaultOptions, nil)
	data := pngBytes(t, gradient(1600, 1200))

	res, err := o.Optimize(context.Background(), data, Options{})
	require.NoError(t, err)

	assert.Equal(t, "webp", res.Format)
	assert.Equal(t, [2]int{1600, 1200}, res.OriginalSize)
	assert.Equal(t, [2]int{800, 600}, res.OptimizedSize)
	assert.Equal(t, 85, res.Quality)

	cfg, err := webp.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.LessOrEqual(t, cfg.Width, 800)
	assert.LessOrEqual(t, cfg.Height, 800)
}

func TestOptimizeRespectsCustomBounds(t *testing.T) {
	o := New(DefaultOptions, nil)
	data := jpegBytes(t, gradient(300, 900))

	res, err := o.Optimize(context.Background(), data, Options{Format: FormatJPEG, MaxWidth: 200, MaxHeight: 200, Quality: 70})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.OptimizedSize[0], 200)
	assert.LessOrEqual(t, res.OptimizedSize[1], 200)
	assert.Equal(t, 200, res.OptimizedSize[1], "the tall side should hit the bound")

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, res.OptimizedSize, [2]int{cfg.Width, cfg.Height})
}

func TestOptimizeKeepsSmallImages(t *testing.T) {
	o := New(DefaultOptions, nil)
	res, err := o.Optimize(context.Background(), pngBytes(t, gradient(120, 40)), Options{Format: FormatPNG})
	require.NoError(t, err)
	assert.Equal(t, "png", res.Format)
	assert.Equal(t, [2]int{120, 40}, res.OptimizedSize)
}

func TestOptimizeCompressionRatioIsRecomputable(t *testing.T) {
	o := New(DefaultOptions, nil)
	data := pngBytes(t, noise(1000, 1000))
	res, err := o.Optimize(context.Background(), data, Options{Format: FormatJPEG, Quality: 60})
	require.NoError(t, err)

	assert.Equal(t, round2(float64(len(data))/1024), res.OriginalWeightKB)
	assert.Equal(t, round2(float64(len(res.Data))/1024), res.OptimizedWeightKB)
	recomputed := (1 - res.OptimizedWeightKB/res.OriginalWeightKB) * 100
	assert.InDelta(t, recomputed, res.CompressionRatio, 0.05)
	assert.Greater(t, res.BytesSaved(len(data)), 0)
}

func TestOptimizeFlattensAlphaForJPEG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16)) // fully transparent
	o := New(DefaultOptions, nil)
	res, err := o.Optimize(context.Background(), pngBytes(t, img), Options{Format: FormatJPEG, Quality: 100})
	require.NoError(t, err)

	out, err := jpeg.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	r, g, b, _ := out.At(8, 8).RGBA()
	assert.Greater(t, r>>8, uint32(245))
	assert.Greater(t, g>>8, uint32(245))
	assert.Greater(t, b>>8, uint32(245))
}

func TestOptimizeRejectsBadInput(t *testing.T) {
	o := New(DefaultOptions, nil)
	ctx := context.Background()
	data := pngBytes(t, gradient(10, 10))

	_, err := o.Optimize(ctx, []byte("definitely not an image"), Options{})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = o.Optimize(ctx, data, Options{Format: "GIF"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	_, err = o.Optimize(ctx, data, Options{Quality: 150})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

// jpegMarkers lists the frame markers (SOFn) found in a JPEG stream.
func jpegMarkers(data []byte) map[byte]bool {
	found := map[byte]bool{}
	for i := 2; i+3 < len(data); {
		if data[i] != 0xff {
			break
		}
		marker := data[i+1]
		if marker == 0xda { // start of scan, frame header is behind us
			break
		}
		if marker >= 0xc0 && marker <= 0xc3 {
			found[marker] = true
		}
		i += 2 + int(binary.BigEndian.Uint16(data[i+2:]))
	}
	return found
}

func TestOptimizeWritesProgressiveJPEG(t *testing.T) {
	o := New(DefaultOptions, nil)
	res, err := o.Optimize(context.Background(), pngBytes(t, gradient(1200, 900)), Options{Format: FormatJPEG})
	require.NoError(t, err)
	assert.Equal(t, [2]int{800, 600}, res.OptimizedSize)

	markers := jpegMarkers(res.Data)
	assert.True(t, markers[0xc2], "expected a progressive (SOF2) frame")
	assert.False(t, markers[0xc0], "baseline (SOF0) frame not expected")

	_, err = jpeg.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
}

// withPNGSize rewrites the IHDR dimensions of a PNG, keeping its checksum valid.
func withPNGSize(t *testing.T, data []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), data...)
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestOptimizeRejectsOversizedCanvas(t *testing.T) {
	o := New(DefaultOptions, nil)
	data := withPNGSize(t, pngBytes(t, gradient(4, 4)), 20000, 20000)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 20000, cfg.Width)

	_, err = o.Optimize(context.Background(), data, Options{})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Contains(t, err.Error(), "image too large")
}

// withOrientation inserts an EXIF APP1 segment carrying the given
// orientation tag right after the JPEG SOI marker.
func withOrientation(data []byte, orientation uint16) []byte {
	var tiff bytes.Buffer
	tiff.WriteString("MM")
	_ = binary.Write(&tiff, binary.BigEndian, uint16(0x2a))
	_ = binary.Write(&tiff, binary.BigEndian, uint32(8))
	_ = binary.Write(&tiff, binary.BigEndian, uint16(1))      // one IFD entry
	_ = binary.Write(&tiff, binary.BigEndian, uint16(0x0112)) // Orientation
	_ = binary.Write(&tiff, binary.BigEndian, uint16(3))      // SHORT
	_ = binary.Write(&tiff, binary.BigEndian, uint32(1))
	_ = binary.Write(&tiff, binary.BigEndian, orientation)
	_ = binary.Write(&tiff, binary.BigEndian, uint16(0))
	_ = binary.Write(&tiff, binary.BigEndian, uint32(0)) // no next IFD

	var app1 bytes.Buffer
	app1.Write([]byte{0xff, 0xe1})
	_ = binary.Write(&app1, binary.BigEndian, uint16(2+6+tiff.Len()))
	app1.WriteString("Exif\x00\x00")
	app1.Write(tiff.Bytes())

	out := append([]byte(nil), data[:2]...)
	out = append(out, app1.Bytes()...)
	return append(out, data[2:]...)
}

func TestOptimizeAppliesEXIFOrientation(t *testing.T) {
	o := New(DefaultOptions, nil)
	data := withOrientation(jpegBytes(t, gradient(300, 100)), 6)

	res, err := o.Optimize(context.Background(), data, Options{Format: FormatPNG})
	require.NoError(t, err)
	assert.Equal(t, [2]int{100, 300}, res.OriginalSize)
	assert.Equal(t, [2]int{100, 300}, res.OptimizedSize)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 300, cfg.Height)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("jpeg")
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatWEBP, f)

	_, err = ParseFormat("tiff")
	assert.Error(t, err)
}

type memStore struct {
	keys []string
	err  error
}

func (m *memStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func TestOptimizeStoresResult(t *testing.T) {
	store := &memStore{}
	o := New(DefaultOptions, store)
	res, err := o.Optimize(context.Background(), pngBytes(t, gradient(20, 20)), Options{Format: FormatPNG})
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "optimized/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".png"))
	assert.Equal(t, "https://cdn.example.com/"+store.keys[0], res.URL)

	store.err = errors.New("bucket unavailable")
	_, err = o.Optimize(context.Background(), pngBytes(t, gradient(20, 20)), Options{})
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestS3StorePut(t *testing.T) {
	var gotPath, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			gotPath = r.URL.Path
			gotType = r.Header.Get("Content-Type")
		}
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  aws.AnonymousCredentials{},
	})
	store := NewS3Store(client, "images", "us-east-1", srv.URL)

	url, err := store.Put(context.Background(), "optimized/a.webp", []byte("data"), "image/webp")
	require.NoError(t, err)
	assert.Equal(t, "/images/optimized/a.webp", gotPath)
	assert.Equal(t, "image/webp", gotType)
	assert.Equal(t, srv.URL+"/images/optimized/a.webp", url)
}

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apperror.FiberHandler})
	NewHandler(New(DefaultOptions, nil)).RegisterPublicRoutes(app)
	return app
}

func multipartRequest(t *testing.T, img []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if img != nil {
		fw, err := mw.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = fw.Write(img)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/optimize-image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandlerOptimize(t *testing.T) {
	app := newTestApp()

	req := multipartRequest(t, pngBytes(t, gradient(1000, 500)), map[string]string{"format": "jpeg", "quality": "80"})
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "jpeg", body["format"])
	assert.Equal(t, float64(80), body["quality"])
	assert.Equal(t, []any{float64(800), float64(400)}, body["optimized_size"])
	_, hasData := body["data"]
	assert.False(t, hasData, "raw bytes must not be returned")
}

func TestHandlerValidation(t *testing.T) {
	app := newTestApp()

	res, err := app.Test(multipartRequest(t, nil, map[string]string{"format": "png"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	raw, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(raw), "No image file provided")

	res, err = app.Test(multipartRequest(t, pngBytes(t, gradient(10, 10)), map[string]string{"quality": "0"}), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)

	res, err = app.Test(multipartRequest(t, []byte("not an image"), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestHandlerFormats(t *testing.T) {
	app := newTestApp()
	res, err := app.Test(httptest.NewRequest("GET", "/api/optimize-image/formats", nil))
	require.NoError(t, err)
	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"formats":["JPEG","PNG","WEBP"]}`, string(raw))
}
