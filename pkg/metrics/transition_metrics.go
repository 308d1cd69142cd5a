package metrics

import "github.com/prometheus/client_golang/prometheus"

// TransitionMetrics 상태 전이 횟수 메트릭
type TransitionMetrics struct {
	transitions *prometheus.CounterVec
}

// NewTransitionMetrics 상태 전이 카운터를 생성하고 등록합니다
func NewTransitionMetrics(reg prometheus.Registerer) *TransitionMetrics {
	m := &TransitionMetrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "state_transitions_total",
				Help: "Total number of committed state transitions by entity",
			},
			[]string{"entity", "from", "to"},
		),
	}
	reg.MustRegister(m.transitions)
	return m
}

// Record 커밋된 상태 전이를 기록합니다. 생성은 from을 빈 문자열로 전달합니다
func (m *TransitionMetrics) Record(entity, from, to string) {
	m.transitions.WithLabelValues(entity, from, to).Inc()
}
