package response

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Entry 带位置的元素
type Entry[T any] struct {
	Position int
	Value    T
}

// Positional 按集合位置编号的有序映射
// 位置恰好为 0..n-1 时编码为 JSON 数组，否则编码为以位置为键的 JSON 对象
type Positional[T any] []Entry[T]

// Add 追加元素，position 需递增
func (p *Positional[T]) Add(position int, value T) {
	*p = append(*p, Entry[T]{Position: position, Value: value})
}

// Values 按顺序返回所有元素
func (p Positional[T]) Values() []T {
	values := make([]T, 0, len(p))
	for _, e := range p {
		values = append(values, e.Value)
	}
	return values
}

// Get 按位置查找
func (p Positional[T]) Get(position int) (T, bool) {
	for _, e := range p {
		if e.Position == position {
			return e.Value, true
		}
	}
	var zero T
	return zero, false
}

// IsList 位置是否为连续的 0..n-1
func (p Positional[T]) IsList() bool {
	for i, e := range p {
		if e.Position != i {
			return false
		}
	}
	return true
}

// MarshalJSON 实现 json.Marshaler
func (p Positional[T]) MarshalJSON() ([]byte, error) {
	if p.IsList() {
		return json.Marshal(p.Values())
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.Itoa(e.Position)))
		buf.WriteByte(':')
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
