package metrics

import "github.com/prometheus/client_golang/prometheus"

// SiteMetrics exposes counters for the assessment, chat and booking flows.
type SiteMetrics struct {
	assessmentsCompleted *prometheus.CounterVec
	chatReplies          *prometheus.CounterVec
	chatConnections      prometheus.Gauge
	bookingRequests      *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		assessmentsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindcare",
			Subsystem: "assessment",
			Name:      "completed_total",
			Help:      "Completed self-assessments by severity tier",
		}, []string{"tier"}),
		chatReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindcare",
			Subsystem: "chat",
			Name:      "replies_total",
			Help:      "Scripted chat replies by input kind and matched category",
		}, []string{"kind", "category"}),
		chatConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mindcare",
			Subsystem: "chat",
			Name:      "websocket_connections",
			Help:      "Open chat widget WebSocket connections",
		}),
		bookingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mindcare",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Consultation request submissions by outcome",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.assessmentsCompleted, m.chatReplies, m.chatConnections, m.bookingRequests)
	return m
}

func (m *SiteMetrics) ObserveAssessment(tier string) {
	if m == nil {
		return
	}
	m.assessmentsCompleted.WithLabelValues(tier).Inc()
}

func (m *SiteMetrics) ObserveChatReply(kind, category string) {
	if m == nil {
		return
	}
	if category == "" {
		category = "none"
	}
	m.chatReplies.WithLabelValues(kind, category).Inc()
}

func (m *SiteMetrics) ChatConnectionOpened() {
	if m == nil {
		return
	}
	m.chatConnections.Inc()
}

func (m *SiteMetrics) ChatConnectionClosed() {
	if m == nil {
		return
	}
	m.chatConnections.Dec()
}

func (m *SiteMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingRequests.WithLabelValues(status).Inc()
}
