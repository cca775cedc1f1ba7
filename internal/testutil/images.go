package testutil

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"
)

// MemoryImageStore guarda objetos em memória no lugar do S3.
type MemoryImageStore struct {
	mu      sync.Mutex
	Objects map[string][]byte

	FailPut    bool
	FailDelete bool
}

func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{Objects: map[string][]byte{}}
}

func (s *MemoryImageStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	if s.FailPut {
		return "", errors.New("put failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Objects[key] = data
	return "https://cdn.example.com/" + key, nil
}

func (s *MemoryImageStore) Delete(_ context.Context, key string) error {
	if s.FailDelete {
		return errors.New("delete failed")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.Objects, key)
	return nil
}

// PNG gera uma imagem w x h com gradiente.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
