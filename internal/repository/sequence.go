package repository

import (
	"fmt"
	"sync"
)

// ItemSequence 是單一行程內所有請求共享的有序序列
// 只能附加、不能修改或刪除，因此索引在行程存活期間不會位移
type ItemSequence[T any] interface {
	Append(item T) []T
	All() []T
	First(n int) []T
	Get(index int) (T, error)
	Len() int
}

// OutOfRangeError 表示索引不在 [0, Length) 的範圍內
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range %d", e.Index, e.Length)
}

// memorySequence 用互斥鎖保護底層切片
// 並行的附加與讀取不會壞掉序列，也不會遺失任何附加
type memorySequence[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewMemorySequence 創建一個空的記憶體序列
func NewMemorySequence[T any]() ItemSequence[T] {
	return &memorySequence[T]{items: make([]T, 0)}
}

// Append 將項目附加到序列尾端，回傳附加後完整序列的副本
func (s *memorySequence[T]) Append(item T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return s.snapshot(len(s.items))
}

// All 回傳完整序列的副本，空序列回傳空切片而不是 nil
func (s *memorySequence[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(len(s.items))
}

// First 回傳前 n 個項目的副本，n 超過序列長度時回傳整個序列
func (s *memorySequence[T]) First(n int) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n > len(s.items) {
		n = len(s.items)
	}
	if n < 0 {
		n = 0
	}
	return s.snapshot(n)
}

// Get 回傳指定索引的項目，索引超出範圍時回傳 OutOfRangeError
func (s *memorySequence[T]) Get(index int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, &OutOfRangeError{Index: index, Length: len(s.items)}
	}
	return s.items[index], nil
}

// Len 回傳序列目前的長度
func (s *memorySequence[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// snapshot 複製前 n 個項目，必須在持有鎖的情況下呼叫
func (s *memorySequence[T]) snapshot(n int) []T {
	out := make([]T, n)
	copy(out, s.items[:n])
	return out
}
