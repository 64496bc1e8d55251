package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics 订单快照相关指标，nil 时所有方法为空操作
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New 创建并注册指标
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rlconnector",
			Name:      "order_info_requests_total",
			Help:      "Order info snapshots served, by result kind.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rlconnector",
			Name:      "order_info_duration_seconds",
			Help:      "Time spent assembling an order info snapshot.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

// ObserveOrderInfo 记录一次快照，kind 为空表示成功
func (m *Metrics) ObserveOrderInfo(kind string, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := kind
	if result == "" {
		result = "ok"
	}
	m.requests.WithLabelValues(result).Inc()
	m.duration.WithLabelValues(result).Observe(elapsed.Seconds())
}
