package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// halfBlock 上半格字元，前景色畫上方的像素、背景色畫下方的像素
// 一個字元格因此可以塞進縱向相鄰的兩個像素
const halfBlock = "▀"

// RenderHalfBlocks 將解碼後的圖片轉成終端機可顯示的半格字元圖
// maxWidth 限制輸出的字元寬度，圖片太寬時跳過像素等比例縮小
func RenderHalfBlocks(img image.Image, maxWidth int) string {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	step := 1
	if maxWidth > 0 && bounds.Dx() > maxWidth {
		step = (bounds.Dx() + maxWidth - 1) / maxWidth
	}

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 * step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(img.At(x, y))))
			// 最後一行可能沒有下方像素，只畫前景
			if y+step < bounds.Max.Y {
				style = style.Background(lipgloss.Color(hexColor(img.At(x, y+step))))
			}
			b.WriteString(style.Render(halfBlock))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// hexColor 將像素轉為 lipgloss 接受的 #rrggbb 格式
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
