package staffomatic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const statusTransportError = "error"

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "staffomatic_client_requests_total",
	Help: "The number of requests sent to the staffomatic API",
}, []string{"method", "status"})
