package main

import (
	"fmt"
	"image"
	"log"
	"net/http"
	"os"

	// 回應應該是 PNG，但解碼器照樣多註冊一個以防伺服器換格式
	_ "image/jpeg"
	_ "image/png"

	"shoplist_web/internal/config"
	"shoplist_web/internal/ui"
)

func main() {
	// 載入應用程式配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 單次阻塞式請求，沒有重試，錯誤處理只到回報 HTTP 狀態碼為止
	resp, err := http.Get(cfg.ImageClient.URL)
	if err != nil {
		log.Fatalf("Failed to fetch image: %v", err)
	}
	defer resp.Body.Close()

	fmt.Println(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}

	// 解碼整個響應體並顯示在終端機上
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		log.Fatalf("Failed to decode image: %v", err)
	}

	bounds := img.Bounds()
	fmt.Printf("%dx%d\n", bounds.Dx(), bounds.Dy())
	fmt.Print(ui.RenderHalfBlocks(img, 80))
}
