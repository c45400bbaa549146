package catalog

import (
	"sort"
	"strings"
)

// Product 静态目录中的商品条目，作为下单与购物车的价格快照来源
type Product struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	InStock        bool              `json:"in_stock"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Tags           []string          `json:"tags"`
	Discount       int               `json:"discount,omitempty"`
}

// Category 分类聚合（含商品数量）
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Filter 商品列表筛选条件，零值表示不限制
type Filter struct {
	Category string  // 分类 ID，"all" 或空表示全部
	Brand    string  // 品牌名，"all" 或空表示全部
	Search   string  // 名称/描述的不区分大小写子串匹配
	MinPrice float64 // 价格下限
	MaxPrice float64 // 价格上限，0 表示不限
	Rating   float64 // 最低评分
	InStock  bool    // 仅有货
	Sort     string  // price-asc / price-desc / rating / newest
}

// Store 只读商品目录，启动时加载后不再变更
type Store struct {
	products []Product
	byID     map[uint]Product
}

// NewStore 基于给定商品构建目录索引
func NewStore(products []Product) *Store {
	byID := make(map[uint]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Store{products: products, byID: byID}
}

// Default 返回内置商品目录
func Default() *Store {
	return NewStore(defaultProducts)
}

// ByID 按 ID 查询商品，不存在时 ok 为 false
func (s *Store) ByID(id uint) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// All 返回全部商品的副本
func (s *Store) All() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// List 按筛选条件过滤并排序
func (s *Store) List(f Filter) []Product {
	out := make([]Product, 0, len(s.products))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, p := range s.products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && f.Brand != "all" && p.Brand != f.Brand {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.Rating > 0 && p.Rating < f.Rating {
			continue
		}
		if f.InStock && !p.InStock {
			continue
		}
		if search != "" && !matchSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort)
	return out
}

// Categories 返回分类聚合，首项固定为 all
func (s *Store) Categories() []Category {
	counts := make(map[string]int)
	order := make([]string, 0, 4)
	for _, p := range s.products {
		if _, ok := counts[p.Category]; !ok {
			order = append(order, p.Category)
		}
		counts[p.Category]++
	}
	out := make([]Category, 0, len(order)+1)
	out = append(out, Category{ID: "all", Name: "All Products", Count: len(s.products)})
	for _, id := range order {
		out = append(out, Category{ID: id, Name: titleCase(id), Count: counts[id]})
	}
	return out
}

// Brands 返回去重后的品牌列表，保持首次出现顺序
func (s *Store) Brands() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 8)
	for _, p := range s.products {
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	return out
}

func matchSearch(p Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), search) {
			return true
		}
	}
	return false
}

func sortProducts(items []Product, key string) {
	switch key {
	case "price-asc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case "price-desc":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case "rating":
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case "newest":
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
