package models

// Item 表示購物清單上的一個項目
// 項目沒有持久化的識別碼，它的身份就是它在序列中的索引
type Item struct {
	Name        string  `json:"name"`        // 項目名稱，必填
	Description *string `json:"description"` // 描述，可省略，序列化時輸出 null
	Price       float64 `json:"price"`       // 價格，必填
	Quantity    int     `json:"quantity"`    // 數量，省略時預設為 1
}
