package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSiteMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewSiteMetrics(reg)
	m.ObserveAssessment("Mild")
	m.ObserveAssessment("Mild")
	m.ObserveChatReply("text", "")
	m.ObserveBooking("accepted")
	m.ChatConnectionOpened()
	m.ChatConnectionOpened()
	m.ChatConnectionClosed()

	if got := testutil.ToFloat64(m.assessmentsCompleted.WithLabelValues("Mild")); got != 2 {
		t.Fatalf("expected 2 mild assessments, got %v", got)
	}
	if got := testutil.ToFloat64(m.chatReplies.WithLabelValues("text", "none")); got != 1 {
		t.Fatalf("expected empty category to be recorded as none, got %v", got)
	}
	if got := testutil.ToFloat64(m.chatConnections); got != 1 {
		t.Fatalf("expected one open connection, got %v", got)
	}
}

func TestSiteMetricsNilSafe(t *testing.T) {
	var m *SiteMetrics
	m.ObserveAssessment("Severe")
	m.ObserveChatReply("option", "crisis")
	m.ObserveBooking("invalid")
	m.ChatConnectionOpened()
	m.ChatConnectionClosed()
}
