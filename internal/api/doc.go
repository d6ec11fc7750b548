// Package api 處理 HTTP 請求路由和處理。
//
// 這個包為三個服務（具型別項目、無型別項目、圖片）各提供一個路由註冊函式，
// 處理器（handlers）負責將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應。
package api
