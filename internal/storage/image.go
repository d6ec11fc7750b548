package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// 註冊啟動時可能需要解碼的圖片格式
	_ "image/gif"
	_ "image/jpeg"
)

// ImageStore 持有圖片服務的固定資產
// 啟動時解碼一次並重新編碼為 PNG，之後每個請求都回傳同一份快取的位元組
type ImageStore struct {
	encoded []byte
	bounds  image.Rectangle
}

// NewImageStore 讀取並解碼 path 指定的圖片資產
// 讀取或解碼失敗時回傳錯誤，呼叫端應視為致命錯誤
func NewImageStore(path string) (*ImageStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image asset %s: %v", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image asset %s: %v", path, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image asset as png: %v", err)
	}

	return &ImageStore{encoded: buf.Bytes(), bounds: img.Bounds()}, nil
}

// PNG 回傳快取的 PNG 位元組
func (s *ImageStore) PNG() []byte {
	return s.encoded
}

// Bounds 回傳原始圖片的範圍
func (s *ImageStore) Bounds() image.Rectangle {
	return s.bounds
}
