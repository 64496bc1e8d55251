package response

import "github.com/shopspring/decimal"

// AmountScale 订单行与商品价格列的小数位数 decimal(x,4)
const AmountScale = 4

// Amount 金额/数量，JSON 中按列精度输出字符串，如 "2.0000"
type Amount struct {
	decimal.Decimal
}

// NewAmount 包装 decimal
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(AmountScale) + `"`), nil
}
