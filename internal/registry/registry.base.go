// Package registry giữ các singleton dùng chung của ứng dụng theo tên.
// Trong hệ thống này nó được dùng làm sổ đăng ký collection MongoDB:
// cmd/server đăng ký các collection (shops, products, reviews, offers)
// lúc khởi động, các domain service tra cứu chúng khi khởi tạo.
package registry

import (
	"fmt"
	"sync"

	"local_commerce/internal/common"
)

// Registry lưu item theo tên, an toàn cho truy cập đồng thời.
// Kiểu item do type parameter T quyết định; một Registry chỉ giữ một kiểu.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo registry rỗng cho kiểu T.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register gán item cho tên. Tên đã tồn tại sẽ bị ghi đè; isNew cho biết
// tên này trước đó chưa có. Tên rỗng trả về lỗi.
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get trả về item theo tên. exists là false khi tên chưa được đăng ký,
// khi đó item là zero value của T.
func (r *Registry[T]) Get(name string) (item T, exists bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists = r.items[name]
	return item, exists
}
